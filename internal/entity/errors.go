package entity

// entityNotFoundError signals a missing entity id for 404 mapping.
type entityNotFoundError struct{ id string }

func (e entityNotFoundError) Error() string { return "entity not found: " + e.id }

// IsEntityNotFound reports whether err indicates a missing entity id.
func IsEntityNotFound(err error) bool {
	_, ok := err.(entityNotFoundError)
	return ok
}

// entityConflictError signals a duplicate entity id for 409 mapping.
type entityConflictError struct{ id string }

func (e entityConflictError) Error() string { return "entity already exists: " + e.id }

// IsEntityConflict reports whether err indicates a duplicate entity id.
func IsEntityConflict(err error) bool {
	_, ok := err.(entityConflictError)
	return ok
}

// behaviorNotFoundError signals a detach of a name that is not attached.
type behaviorNotFoundError struct{ entity, name string }

func (e behaviorNotFoundError) Error() string {
	return "behavior " + e.name + " not attached to entity " + e.entity
}

// IsBehaviorNotFound reports whether err indicates a missing attachment.
func IsBehaviorNotFound(err error) bool {
	_, ok := err.(behaviorNotFoundError)
	return ok
}

// behaviorConflictError signals an attach under a name already in use.
type behaviorConflictError struct{ entity, name string }

func (e behaviorConflictError) Error() string {
	return "behavior " + e.name + " already attached to entity " + e.entity
}

// IsBehaviorConflict reports whether err indicates a duplicate attachment name.
func IsBehaviorConflict(err error) bool {
	_, ok := err.(behaviorConflictError)
	return ok
}

// registryFullError signals the entity cap was reached, for 429 mapping.
type registryFullError struct{ limit int }

func (e registryFullError) Error() string { return "entity registry is full" }

// IsRegistryFull reports whether err indicates the registry reached its cap.
func IsRegistryFull(err error) bool {
	_, ok := err.(registryFullError)
	return ok
}
