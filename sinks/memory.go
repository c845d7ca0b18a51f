package sinks

import (
	"sync"

	"github.com/mfbean/guilog/core"
	"github.com/mfbean/guilog/parser"
)

// MemorySink stores log events in memory for testing purposes.
type MemorySink struct {
	events []core.LogEvent
	mu     sync.RWMutex
}

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		events: make([]core.LogEvent, 0),
	}
}

// Emit stores the event in memory.
func (m *MemorySink) Emit(event *core.LogEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Make a copy to avoid data races
	eventCopy := *event
	if event.Args != nil {
		eventCopy.Args = make([]any, len(event.Args))
		copy(eventCopy.Args, event.Args)
	}
	if event.SystemError != nil {
		sysCopy := *event.SystemError
		eventCopy.SystemError = &sysCopy
	}

	m.events = append(m.events, eventCopy)
}

// Close does nothing for memory sink.
func (m *MemorySink) Close() error {
	return nil
}

// Events returns a copy of all stored events.
func (m *MemorySink) Events() []core.LogEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]core.LogEvent, len(m.events))
	copy(result, m.events)
	return result
}

// Messages returns the rendered message of every stored event.
func (m *MemorySink) Messages() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, 0, len(m.events))
	for i := range m.events {
		tmpl, err := parser.ParseCached(m.events[i].MessageTemplate)
		if err != nil {
			result = append(result, m.events[i].MessageTemplate)
			continue
		}
		message, _ := tmpl.Render(m.events[i].Args)
		result = append(result, message)
	}
	return result
}

// Clear removes all stored events.
func (m *MemorySink) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = m.events[:0]
}
