package entity

import (
	"sort"
	"time"

	"hookd/internal/behavior"
	"hookd/internal/event"
	"hookd/pkg/types"
)

// DTO projections consumed by the HTTP layer.

func (e *Entity) status() types.EntityStatus {
	handlers := make(map[string]int)
	for _, name := range e.EventNames() {
		handlers[name] = e.HandlerCount(name)
	}
	return types.EntityStatus{
		ID:        e.ID(),
		Fields:    e.Fields(),
		Behaviors: e.Behaviors(),
		Handlers:  handlers,
	}
}

// ListEntities returns a snapshot of every entity in creation order.
func (r *Registry) ListEntities() []types.EntityStatus {
	list := r.List()
	out := make([]types.EntityStatus, 0, len(list))
	for _, e := range list {
		out = append(out, e.status())
	}
	return out
}

// GetEntity returns a snapshot of one entity.
func (r *Registry) GetEntity(id string) (types.EntityStatus, error) {
	e, err := r.Get(id)
	if err != nil {
		return types.EntityStatus{}, err
	}
	return e.status(), nil
}

// CreateEntity creates an entity from an API request.
func (r *Registry) CreateEntity(req types.CreateEntityRequest) (types.EntityStatus, error) {
	e, err := r.Create(req.ID, req.Fields)
	if err != nil {
		return types.EntityStatus{}, err
	}
	return e.status(), nil
}

// Trigger fires the named event on the entity with the given payload.
func (r *Registry) Trigger(entityID, eventName string, data map[string]any) (types.TriggerResponse, error) {
	e, err := r.Get(entityID)
	if err != nil {
		return types.TriggerResponse{}, err
	}
	handlers := e.HandlerCount(eventName)
	ev := &event.Event{Sender: e, Data: data}
	e.Dispatcher.Trigger(eventName, ev)
	return types.TriggerResponse{
		Event:    eventName,
		Handlers: handlers,
		Handled:  ev.Handled,
		Data:     ev.Data,
	}, nil
}

// SaveFields saves fields on the entity, firing its lifecycle events.
func (r *Registry) SaveFields(entityID string, fields map[string]any) (types.SaveResponse, error) {
	e, err := r.Get(entityID)
	if err != nil {
		return types.SaveResponse{}, err
	}
	saved, merged := e.Save(fields)
	return types.SaveResponse{Saved: saved, Fields: merged}, nil
}

// Status is the /status projection.
func (r *Registry) Status() types.StatusResponse {
	entities := r.ListEntities()
	total := 0
	for _, e := range entities {
		total += len(e.Behaviors)
	}
	factories := behavior.FactoryNames()
	sort.Strings(factories)
	r.mu.RLock()
	started := r.startedAt
	r.mu.RUnlock()
	now := time.Now()
	return types.StatusResponse{
		Entities:       entities,
		BehaviorsTotal: total,
		Factories:      factories,
		UptimeSeconds:  int64(now.Sub(started).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
}

// Ready reports whether the registry can serve requests.
func (r *Registry) Ready() bool { return r != nil }
