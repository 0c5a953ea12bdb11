package event

// Event carries a named occurrence to handlers.
// Minimal and stable: name + sender and optional payload via key/values.
type Event struct {
	// Name of the event, filled in by the dispatcher when empty.
	Name string
	// Sender is the object the event fired on; may be nil.
	Sender any
	// Data is an optional payload. Handlers may mutate it; the mutation is
	// visible to later handlers and to the code that triggered the event.
	Data map[string]any
	// Handled stops propagation: handlers registered after the one that set
	// it are not invoked for this trigger.
	Handled bool
}

// Handler processes a single event. Handlers are registered and removed by
// pointer, so the same *Handler passed to Subscribe must be passed to
// Unsubscribe to remove that registration.
type Handler func(*Event)
