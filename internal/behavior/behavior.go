package behavior

import (
	"hookd/internal/event"
)

// Owner is the capability set a behavior requires from the object it
// extends. The dispatcher must keep same-event handlers in registration
// order and treat Unsubscribe of an unknown pair as a no-op.
type Owner interface {
	Subscribe(name string, h *event.Handler)
	Unsubscribe(name string, h *event.Handler)
}

// Binding pairs an event name with the descriptor of its handler. Bindings
// are declared as an ordered slice so registration order is deterministic.
type Binding struct {
	Event   string
	Handler Descriptor
}

// Behavior is an attachable unit: it declares event bindings and carries
// attachment bookkeeping. Concrete behaviors embed Base to satisfy the
// unexported method and override Events.
type Behavior interface {
	// Events declares the bindings to register on attach. It is consulted
	// once per Attach call; implementations must not rely on any caching
	// beyond that.
	Events() []Binding

	base() *Base
}

// registration records exactly what was subscribed, for symmetric teardown.
type registration struct {
	event   string
	handler *event.Handler
}

// Base provides the attachment state for behaviors. The zero value is a
// detached behavior. A Base must not be shared between behaviors.
type Base struct {
	owner      Owner
	registered []registration
}

func (b *Base) base() *Base { return b }

// Owner returns the object this behavior is attached to, or nil when
// detached. The reference is borrowed: the behavior never manages the
// owner's lifetime.
func (b *Base) Owner() Owner { return b.owner }

// Attached reports whether the behavior currently has an owner.
func (b *Base) Attached() bool { return b.owner != nil }

// Events declares no bindings by default.
func (b *Base) Events() []Binding { return nil }

// Attach binds b to o: records the owner, resolves each declared binding in
// order, and subscribes the resolved handler on o. Returns an
// already-attached error when b has a live owner (detach first), or an
// unresolved-handler error when a method-name descriptor cannot be resolved.
//
// Attach is not atomic: if resolving binding k fails, bindings 1..k-1 stay
// subscribed and b stays attached. Detach cleans up exactly what was
// registered.
func Attach(b Behavior, o Owner) error {
	st := b.base()
	if st.owner != nil {
		return alreadyAttachedError{}
	}
	st.owner = o
	for _, bind := range b.Events() {
		h, err := bind.Handler.resolve(b)
		if err != nil {
			return err
		}
		ph := &h
		o.Subscribe(bind.Event, ph)
		st.registered = append(st.registered, registration{event: bind.Event, handler: ph})
	}
	return nil
}

// Detach is the package-level counterpart of Attach.
func Detach(b Behavior) { b.base().Detach() }

// Detach unsubscribes every handler recorded by the last Attach, using the
// exact pointer that was subscribed, then clears the owner. Idempotent:
// calling it on a detached behavior is a no-op.
func (b *Base) Detach() {
	if b.owner == nil {
		return
	}
	for _, r := range b.registered {
		b.owner.Unsubscribe(r.event, r.handler)
	}
	b.registered = nil
	b.owner = nil
}
