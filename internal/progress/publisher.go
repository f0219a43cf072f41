package progress

// Publisher publishes progress events for one export run.
type Publisher interface {
	Publish(runID string, event Event)
}

var _ Publisher = (*Hub)(nil)

// Publish implements Publisher by broadcasting to the run's subscribers.
func (h *Hub) Publish(runID string, event Event) {
	h.Broadcast(runID, event)
}

// NoOpPublisher discards every event; used when progress streaming is
// disabled or in tests that don't exercise dashboards.
type NoOpPublisher struct{}

// Publish does nothing.
func (NoOpPublisher) Publish(runID string, event Event) {}
