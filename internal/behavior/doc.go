// Package behavior implements runtime capability attachment: a Behavior
// declares named event bindings and can be attached to any Owner exposing
// Subscribe/Unsubscribe, with guaranteed symmetric teardown. It is
// structured into small files by concern:
//
//   - behavior.go: Owner, Binding, Behavior, Base state, Attach/Detach.
//   - descriptor.go: Descriptor variants (Method/Func) and resolution.
//   - errors.go: error types and helpers (IsAlreadyAttached, ...).
//   - factory.go: named factory registry for config-driven construction.
//   - timestamp.go, audit.go, counter.go: built-in behaviors.
//
// A behavior is single-threaded with respect to Attach/Detach: callers must
// serialize those calls per behavior instance. Handlers are registered and
// removed as *event.Handler so that teardown removes exactly the values that
// were registered, never structurally-equal lookalikes.
package behavior
