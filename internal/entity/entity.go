package entity

import (
	"sync"

	"hookd/internal/behavior"
	"hookd/internal/event"
)

// Lifecycle events fired by Entity around field saves.
const (
	EventBeforeSave = "beforeSave"
	EventAfterSave  = "afterSave"
)

// Entity is a named bag of fields with an event dispatcher and a table of
// attached behaviors. The embedded dispatcher makes it a behavior.Owner.
type Entity struct {
	*event.Dispatcher

	id string

	mu        sync.Mutex
	fields    map[string]any
	behaviors map[string]behavior.Behavior
	order     []string // attachment order of behavior names
}

func New(id string, fields map[string]any) *Entity {
	f := make(map[string]any, len(fields))
	for k, v := range fields {
		f[k] = v
	}
	return &Entity{
		Dispatcher: event.NewDispatcher(),
		id:         id,
		fields:     f,
		behaviors:  make(map[string]behavior.Behavior),
	}
}

func (e *Entity) ID() string { return e.id }

// Field returns the current value of a single field.
func (e *Entity) Field(name string) (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.fields[name]
	return v, ok
}

// Fields returns a copy of the current field values.
func (e *Entity) Fields() map[string]any {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]any, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}
	return out
}

// Save fires beforeSave with the incoming fields as the event payload,
// merges the (possibly handler-rewritten) payload into the entity, then
// fires afterSave. A beforeSave handler that marks the event handled vetoes
// the save. Returns whether the save happened and the payload as merged.
func (e *Entity) Save(fields map[string]any) (bool, map[string]any) {
	if fields == nil {
		fields = make(map[string]any)
	}
	ev := &event.Event{Name: EventBeforeSave, Sender: e, Data: fields}
	e.Trigger(EventBeforeSave, ev)
	if ev.Handled {
		return false, nil
	}
	e.mu.Lock()
	for k, v := range fields {
		e.fields[k] = v
	}
	saved := make(map[string]any, len(fields))
	for k, v := range fields {
		saved[k] = v
	}
	e.mu.Unlock()
	e.Trigger(EventAfterSave, &event.Event{Sender: e, Data: saved})
	return true, saved
}

// AttachBehavior attaches b under a unique name. Unlike the bare
// behavior.Attach, this is all-or-nothing: a resolution failure detaches
// whatever was partially registered before returning the error.
func (e *Entity) AttachBehavior(name string, b behavior.Behavior) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.behaviors[name]; ok {
		return behaviorConflictError{entity: e.id, name: name}
	}
	if err := behavior.Attach(b, e); err != nil {
		behavior.Detach(b)
		return err
	}
	e.behaviors[name] = b
	e.order = append(e.order, name)
	return nil
}

// DetachBehavior detaches the named behavior. The detach itself never
// fails; only an unknown name is an error.
func (e *Entity) DetachBehavior(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, ok := e.behaviors[name]
	if !ok {
		return behaviorNotFoundError{entity: e.id, name: name}
	}
	behavior.Detach(b)
	delete(e.behaviors, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i:i], e.order[i+1:]...)
			break
		}
	}
	return nil
}

// DetachAll detaches every attached behavior, in attachment order.
func (e *Entity) DetachAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, name := range e.order {
		behavior.Detach(e.behaviors[name])
		delete(e.behaviors, name)
	}
	e.order = nil
}

// Behaviors returns the attached behavior names in attachment order.
func (e *Entity) Behaviors() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}
