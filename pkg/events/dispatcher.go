// Package events provides a minimal handler-registration abstraction: a
// dispatcher that owns a fixed map from event name to handlers. Components
// register their handlers once during construction instead of scattering
// anonymous callbacks across a function body.
package events

import "sync"

// Event carries the payload of a dispatched event: which form field it
// concerns (when any) and the field's current value.
type Event struct {
	Name  string
	Field string
	Value string
}

// Handler reacts to a dispatched event.
type Handler func(Event)

// Dispatcher routes named events to their registered handlers. Dispatching
// an event nobody registered for is a no-op. Registration is expected to
// happen up front; both methods are safe for concurrent use.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]Handler)}
}

// On registers a handler for the named event. Nil handlers are ignored.
func (d *Dispatcher) On(name string, h Handler) {
	if h == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = append(d.handlers[name], h)
}

// Dispatch invokes every handler registered for the event's name, in
// registration order, on the calling goroutine.
func (d *Dispatcher) Dispatch(e Event) {
	d.mu.RLock()
	handlers := d.handlers[e.Name]
	d.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

// Events lists the names that have at least one handler.
func (d *Dispatcher) Events() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	return names
}
