package event

import (
	"sort"
	"sync"
)

// Dispatcher is an ordered, in-process event table. Handlers for the same
// event name are invoked in registration order. The zero value is ready to
// use.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]*Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string][]*Handler)}
}

// Subscribe appends h to the handler list for name. Duplicate registrations
// of distinct pointers are kept as distinct entries.
func (d *Dispatcher) Subscribe(name string, h *Handler) {
	if h == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handlers == nil {
		d.handlers = make(map[string][]*Handler)
	}
	d.handlers[name] = append(d.handlers[name], h)
}

// Unsubscribe removes the first registration of h for name, matched by
// pointer identity. Safe no-op when no matching registration exists.
func (d *Dispatcher) Unsubscribe(name string, h *Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	hs := d.handlers[name]
	for i, cur := range hs {
		if cur == h {
			d.handlers[name] = append(hs[:i:i], hs[i+1:]...)
			return
		}
	}
}

// Trigger invokes every handler registered for name, in registration order,
// stopping early if a handler marks the event handled. A nil e is replaced
// by an empty event; e.Name is filled in when unset.
func (d *Dispatcher) Trigger(name string, e *Event) {
	if e == nil {
		e = &Event{}
	}
	if e.Name == "" {
		e.Name = name
	}
	d.mu.RLock()
	// copy so handlers may subscribe/unsubscribe without racing the walk
	hs := append([]*Handler(nil), d.handlers[name]...)
	d.mu.RUnlock()
	for _, h := range hs {
		(*h)(e)
		if e.Handled {
			return
		}
	}
}

// HandlerCount returns the number of handlers registered for name.
func (d *Dispatcher) HandlerCount(name string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers[name])
}

// EventNames returns the sorted names that currently have at least one
// registered handler.
func (d *Dispatcher) EventNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []string
	for name, hs := range d.handlers {
		if len(hs) > 0 {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
