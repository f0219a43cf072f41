package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages.
type mockClient struct {
	id       string
	runID    string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id, runID string) *mockClient {
	return &mockClient{id: id, runID: runID, messages: make([][]byte, 0)}
}

func (m *mockClient) ID() string    { return m.id }
func (m *mockClient) RunID() string { return m.runID }

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	c1 := newMockClient("client-1", "run-a")
	c2 := newMockClient("client-2", "run-a")
	c3 := newMockClient("client-3", "run-b")

	hub.Register(c1)
	hub.Register(c2)
	hub.Register(c3)

	assert.Equal(t, 2, hub.ClientCount("run-a"))
	assert.Equal(t, 1, hub.ClientCount("run-b"))
	assert.Equal(t, 0, hub.ClientCount("run-nope"))

	hub.Unregister(c1)
	assert.Equal(t, 1, hub.ClientCount("run-a"))

	hub.Unregister(c2)
	hub.Unregister(c3)
	assert.Equal(t, 0, hub.ClientCount("run-a"))
	assert.Equal(t, 0, hub.ClientCount("run-b"))
}

func TestHub_Broadcast_RunIsolation(t *testing.T) {
	hub := NewHub()

	a1 := newMockClient("a1", "run-a")
	a2 := newMockClient("a2", "run-a")
	b1 := newMockClient("b1", "run-b")

	hub.Register(a1)
	hub.Register(a2)
	hub.Register(b1)

	hub.Broadcast("run-a", RowProcessed("run-a", 1, 10, 555))
	time.Sleep(10 * time.Millisecond)

	assert.Len(t, a1.GetMessages(), 1)
	assert.Len(t, a2.GetMessages(), 1)
	assert.Len(t, b1.GetMessages(), 0, "run-b client should not receive run-a events")
}

func TestHub_UnregisterNonexistent(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1", "run-a")

	require.NotPanics(t, func() {
		hub.Unregister(client)
	})
}

func TestHub_BroadcastToEmptyRun(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Broadcast("no-subscribers", Started("no-subscribers", 10))
	})
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub()
	var wg sync.WaitGroup
	clientCount := 50

	clients := make([]*mockClient, clientCount)
	for i := 0; i < clientCount; i++ {
		clients[i] = newMockClient("client-"+string(rune('A'+i)), "run-"+string(rune('a'+i%5)))
	}

	for i := 0; i < clientCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hub.Register(clients[idx])
		}(i)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 5; i++ {
		total += hub.ClientCount("run-" + string(rune('a'+i)))
	}
	assert.Equal(t, clientCount, total)

	for i := 0; i < clientCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hub.Unregister(clients[idx])
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, hub.ClientCount("run-"+string(rune('a'+i))))
	}
}
