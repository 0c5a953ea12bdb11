package behavior

// alreadyAttachedError signals Attach on a behavior with a live owner.
type alreadyAttachedError struct{}

func (alreadyAttachedError) Error() string {
	return "behavior already attached to an owner"
}

// IsAlreadyAttached reports whether err indicates a double attach; the
// caller should Detach first.
func IsAlreadyAttached(err error) bool {
	_, ok := err.(alreadyAttachedError)
	return ok
}

// unresolvedHandlerError signals a descriptor that cannot be resolved to a
// callable (e.g., names a method that does not exist on the behavior).
type unresolvedHandlerError struct {
	method string
	reason string
}

func (e unresolvedHandlerError) Error() string {
	if e.method == "" {
		return "unresolved handler: " + e.reason
	}
	return "unresolved handler " + e.method + ": " + e.reason
}

// IsUnresolvedHandler reports whether err indicates a handler descriptor
// that could not be resolved during Attach.
func IsUnresolvedHandler(err error) bool {
	_, ok := err.(unresolvedHandlerError)
	return ok
}

// unknownFactoryError signals a behavior factory name with no registration.
type unknownFactoryError struct{ name string }

func (e unknownFactoryError) Error() string { return "unknown behavior factory: " + e.name }

// IsUnknownFactory reports whether err indicates a missing behavior factory.
func IsUnknownFactory(err error) bool {
	_, ok := err.(unknownFactoryError)
	return ok
}
