package types

// EntityStatus is a read-only projection of a managed entity.
type EntityStatus struct {
	// Stable identifier for the entity.
	// example: article-42
	ID string `json:"id" example:"article-42"`
	// Current field values.
	Fields map[string]any `json:"fields"`
	// Names of attached behaviors, in attachment order.
	// example: ["timestamp","audit"]
	Behaviors []string `json:"behaviors"`
	// Number of registered handlers per event name.
	Handlers map[string]int `json:"handlers,omitempty"`
}

// BehaviorSpec names a behavior factory plus its free-form configuration.
type BehaviorSpec struct {
	// Factory name (e.g., timestamp, audit, counter).
	// example: timestamp
	Name string `json:"name" yaml:"name" example:"timestamp"`
	// Factory-specific configuration.
	Config map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
}

// EntityDefinition describes an entity to create at startup, as read from a
// definitions file.
type EntityDefinition struct {
	// Stable identifier for the entity.
	ID string `json:"id" yaml:"id"`
	// Initial field values.
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`
	// Behaviors to attach after creation, in order.
	Behaviors []BehaviorSpec `json:"behaviors,omitempty" yaml:"behaviors,omitempty"`
}
