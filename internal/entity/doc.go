// Package entity provides the stateful objects behaviors attach to, and the
// registry that manages them. It is structured into small files by concern:
//
//   - entity.go: Entity type, field saves, lifecycle events, attachment table.
//   - registry.go: Registry (create/get/list/delete, behavior wiring).
//   - config.go: RegistryConfig and package defaults.
//   - errors.go: error types and helpers (IsEntityNotFound, ...).
//   - service.go: DTO projections consumed by the HTTP layer.
//
// An Entity embeds an event.Dispatcher, so it satisfies behavior.Owner
// directly. External packages should treat Registry as the orchestration
// layer and use public methods only.
package entity
