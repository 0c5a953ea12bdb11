package types

// CreateEntityRequest is the payload for POST /entities.
type CreateEntityRequest struct {
	// Required entity identifier, unique within the registry.
	// example: article-42
	ID string `json:"id" example:"article-42"`
	// Optional initial fields.
	Fields map[string]any `json:"fields,omitempty"`
}

// AttachRequest is the payload for POST /entities/{id}/behaviors.
type AttachRequest struct {
	// Behavior factory name.
	// example: timestamp
	Name string `json:"name" example:"timestamp"`
	// Factory-specific configuration.
	Config map[string]any `json:"config,omitempty"`
}

// SaveFieldsRequest is the payload for PUT /entities/{id}/fields.
type SaveFieldsRequest struct {
	// Field values to merge into the entity. beforeSave handlers may add or
	// rewrite values before the merge happens.
	Fields map[string]any `json:"fields"`
}

// SaveResponse reports the outcome of a field save.
type SaveResponse struct {
	// False when a beforeSave handler marked the event handled (save vetoed).
	// example: true
	Saved bool `json:"saved"`
	// Fields as persisted after handler rewrites.
	Fields map[string]any `json:"fields,omitempty"`
}

// TriggerResponse reports the outcome of POST /entities/{id}/events/{event}.
type TriggerResponse struct {
	// Event name that was triggered.
	// example: beforeSave
	Event string `json:"event" example:"beforeSave"`
	// Number of handlers registered for the event at trigger time.
	// example: 2
	Handlers int `json:"handlers" example:"2"`
	// Whether a handler marked the event handled.
	// example: false
	Handled bool `json:"handled" example:"false"`
	// Payload after handler mutations.
	Data map[string]any `json:"data,omitempty"`
}

// EntitiesResponse wraps the list returned by GET /entities.
type EntitiesResponse struct {
	Entities []EntityStatus `json:"entities"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: entity not found: article-42
	Error string `json:"error" example:"entity not found: article-42"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Managed entities.
	Entities []EntityStatus `json:"entities"`
	// Total attached behaviors across all entities.
	// example: 3
	BehaviorsTotal int `json:"behaviors_total" example:"3"`
	// Registered behavior factory names.
	// example: ["audit","counter","timestamp"]
	Factories []string `json:"factories"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
