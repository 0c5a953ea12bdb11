package entity

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"hookd/internal/behavior"
)

// Registry owns the set of managed entities. All methods are safe for
// concurrent use; per-behavior attach/detach serialization happens under the
// entity's own lock.
type Registry struct {
	mu          sync.RWMutex
	entities    map[string]*Entity
	order       []string // creation order
	maxEntities int
	startedAt   time.Time
}

func newRegistry() *Registry {
	return &Registry{
		entities:    make(map[string]*Entity),
		maxEntities: defaultMaxEntities,
		startedAt:   time.Now(),
	}
}

// NewRegistry constructs a Registry with package defaults.
func NewRegistry() *Registry {
	return NewWithConfig(RegistryConfig{})
}

// Create adds a new entity. The id must be non-empty and unique.
func (r *Registry) Create(id string, fields map[string]any) (*Entity, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("entity id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entities[id]; ok {
		return nil, entityConflictError{id: id}
	}
	if len(r.entities) >= r.maxEntities {
		return nil, registryFullError{limit: r.maxEntities}
	}
	e := New(id, fields)
	r.entities[id] = e
	r.order = append(r.order, id)
	return e, nil
}

// Get returns the entity with the given id.
func (r *Registry) Get(id string) (*Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entities[id]
	if !ok {
		return nil, entityNotFoundError{id: id}
	}
	return e, nil
}

// List returns all entities in creation order.
func (r *Registry) List() []*Entity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Entity, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entities[id])
	}
	return out
}

// Delete detaches all behaviors from the entity and removes it.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	e, ok := r.entities[id]
	if !ok {
		r.mu.Unlock()
		return entityNotFoundError{id: id}
	}
	delete(r.entities, id)
	for i, cur := range r.order {
		if cur == id {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()
	// outside the registry lock: detach walks the entity's own lock
	e.DetachAll()
	return nil
}

// AttachBehavior builds a behavior from the named factory and attaches it to
// the entity under the same name.
func (r *Registry) AttachBehavior(entityID, name string, cfg map[string]any) error {
	e, err := r.Get(entityID)
	if err != nil {
		return err
	}
	b, err := behavior.New(name, cfg)
	if err != nil {
		return err
	}
	return e.AttachBehavior(name, b)
}

// DetachBehavior detaches the named behavior from the entity.
func (r *Registry) DetachBehavior(entityID, name string) error {
	e, err := r.Get(entityID)
	if err != nil {
		return err
	}
	return e.DetachBehavior(name)
}
