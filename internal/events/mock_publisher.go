package events

import (
	"context"
	"sync"
)

// MockPublisher records published events in memory.
type MockPublisher struct {
	mu     sync.RWMutex
	events []BookingEvent
	Err    error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		events: make([]BookingEvent, 0),
	}
}

func (m *MockPublisher) Publish(_ context.Context, event BookingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.events = append(m.events, event)

	return nil
}

// GetPublishedEvents returns a copy of all recorded events.
func (m *MockPublisher) GetPublishedEvents() []BookingEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]BookingEvent, len(m.events))
	copy(events, m.events)
	return events
}

func (m *MockPublisher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events = make([]BookingEvent, 0)
}
