// internal/event/manager.go
package event

import (
	"sync"

	"github.com/ebb-editor/ebb/internal/logger"
)

// Handler is the subscriber signature. The return value reports whether
// the event was consumed; dispatch currently ignores it but subscribers
// should return false unless they mean to claim the event.
type Handler func(e Event) bool

// Manager routes events to subscribers. Dispatch is synchronous: the
// editing goroutine publishes and handlers run inline, which keeps the
// single-writer discipline intact.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates an empty event manager.
func NewManager() *Manager {
	return &Manager{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for an event type.
func (m *Manager) Subscribe(t Type, h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[t] = append(m.handlers[t], h)
}

// Dispatch delivers an event to every handler registered for its type.
func (m *Manager) Dispatch(t Type, data interface{}) {
	m.mu.RLock()
	handlers := m.handlers[t]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}
	// Copy so a handler subscribing during dispatch can't grow the
	// slice out from under the loop.
	snapshot := make([]Handler, len(handlers))
	copy(snapshot, handlers)

	logger.Debugf("event: dispatching %v to %d handler(s)", t, len(snapshot))
	for _, h := range snapshot {
		h(Event{Type: t, Data: data})
	}
}
