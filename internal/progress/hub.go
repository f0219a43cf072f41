// Package progress fans out BatchExporter progress events to dashboards
// subscribed to one export run, adapted from the teacher's per-workspace
// WebSocket notification hub.
package progress

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrClientClosed is returned when attempting to send to a closed client,
// and also when the client's send buffer is full.
var ErrClientClosed = errors.New("client is closed")

// ClientInterface defines the interface that dashboard connections must implement.
type ClientInterface interface {
	ID() string
	RunID() string
	Send(data []byte) error
	Close() error
}

// Hub manages WebSocket connections organized by export run. It is safe
// for concurrent use.
type Hub struct {
	runs map[string]map[string]ClientInterface
	mu   sync.RWMutex
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{runs: make(map[string]map[string]ClientInterface)}
}

// Register adds a client to the hub under its export run.
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	runID := client.RunID()
	clientID := client.ID()

	if h.runs[runID] == nil {
		h.runs[runID] = make(map[string]ClientInterface)
	}
	h.runs[runID][clientID] = client

	log.Debug().Str("run_id", runID).Str("client_id", clientID).Msg("progress client registered")
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	runID := client.RunID()
	clientID := client.ID()

	if clients, ok := h.runs[runID]; ok {
		if _, exists := clients[clientID]; exists {
			delete(clients, clientID)
			if len(clients) == 0 {
				delete(h.runs, runID)
			}
			log.Debug().Str("run_id", runID).Str("client_id", clientID).Msg("progress client unregistered")
		}
	}
}

// Broadcast sends an event to all clients subscribed to a run.
func (h *Hub) Broadcast(runID string, event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().Err(err).Str("run_id", runID).Str("event_type", string(event.Type)).Msg("failed to serialize progress event")
		return
	}

	h.mu.RLock()
	clients, ok := h.runs[runID]
	if !ok || len(clients) == 0 {
		h.mu.RUnlock()
		return
	}
	clientsCopy := make([]ClientInterface, 0, len(clients))
	for _, c := range clients {
		clientsCopy = append(clientsCopy, c)
	}
	h.mu.RUnlock()

	for _, client := range clientsCopy {
		go func(c ClientInterface) {
			if err := c.Send(data); err != nil {
				log.Warn().Err(err).Str("run_id", runID).Str("client_id", c.ID()).Msg("failed to send progress event")
			}
		}(client)
	}
}

// ClientCount returns the number of clients subscribed to a run.
func (h *Hub) ClientCount(runID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.runs[runID])
}
