package behavior

import (
	"reflect"

	"hookd/internal/event"
)

// Descriptor is a declared, not-yet-resolved reference to handler code:
// either the name of a method on the behavior itself, or a ready callable.
// The zero Descriptor is invalid and fails resolution.
type Descriptor struct {
	method string
	fn     event.Handler
}

// Method declares a handler by the name of an exported method on the
// behavior. The method must have signature func(*event.Event); it is bound
// to the behavior instance at attach time.
func Method(name string) Descriptor { return Descriptor{method: name} }

// Func declares a handler as an already-bound callable, used as-is.
func Func(h event.Handler) Descriptor { return Descriptor{fn: h} }

// resolve turns the descriptor into a concrete handler bound to b.
func (d Descriptor) resolve(b Behavior) (event.Handler, error) {
	if d.fn != nil {
		return d.fn, nil
	}
	if d.method == "" {
		return nil, unresolvedHandlerError{reason: "empty descriptor"}
	}
	m := reflect.ValueOf(b).MethodByName(d.method)
	if !m.IsValid() {
		return nil, unresolvedHandlerError{method: d.method, reason: "no such method"}
	}
	fn, ok := m.Interface().(func(*event.Event))
	if !ok {
		return nil, unresolvedHandlerError{method: d.method, reason: "want signature func(*event.Event)"}
	}
	return fn, nil
}
