package entity

import (
	"testing"

	"hookd/internal/behavior"
)

func TestNewRegistryAndNewEntityCoexist(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("a", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	// the standalone entity constructor is independent of the registry
	e := New("b", map[string]any{"k": "v"})
	if e.ID() != "b" {
		t.Fatalf("unexpected id: %s", e.ID())
	}
	if _, err := r.Get("b"); err == nil {
		t.Fatalf("standalone entity must not appear in the registry")
	}
}

func TestRegistryCreateGetDelete(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("a", map[string]any{"x": 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	e, err := r.Get("a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v, _ := e.Field("x"); v != 1 {
		t.Fatalf("unexpected field: %v", v)
	}
	if err := r.Delete("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.Get("a"); err == nil || !IsEntityNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestRegistryCreateConflictAndValidation(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("a", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := r.Create("a", nil); err == nil || !IsEntityConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if _, err := r.Create("  ", nil); err == nil {
		t.Fatalf("expected error for blank id")
	}
}

func TestRegistryFull(t *testing.T) {
	r := NewWithConfig(RegistryConfig{MaxEntities: 1})
	if _, err := r.Create("a", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := r.Create("b", nil)
	if err == nil || !IsRegistryFull(err) {
		t.Fatalf("expected registry full, got %v", err)
	}
}

func TestRegistryListOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"c", "a", "b"} {
		if _, err := r.Create(id, nil); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	list := r.List()
	if len(list) != 3 || list[0].ID() != "c" || list[1].ID() != "a" || list[2].ID() != "b" {
		ids := make([]string, len(list))
		for i, e := range list {
			ids[i] = e.ID()
		}
		t.Fatalf("expected creation order [c a b], got %v", ids)
	}
}

func TestRegistryAttachDetachByFactory(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("doc", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.AttachBehavior("doc", "timestamp", nil); err != nil {
		t.Fatalf("attach: %v", err)
	}
	st, err := r.GetEntity("doc")
	if err != nil {
		t.Fatalf("get entity: %v", err)
	}
	if len(st.Behaviors) != 1 || st.Behaviors[0] != "timestamp" {
		t.Fatalf("unexpected behaviors: %v", st.Behaviors)
	}
	if st.Handlers[EventBeforeSave] != 1 {
		t.Fatalf("unexpected handler counts: %v", st.Handlers)
	}
	if err := r.DetachBehavior("doc", "timestamp"); err != nil {
		t.Fatalf("detach: %v", err)
	}
	if err := r.DetachBehavior("doc", "timestamp"); err == nil || !IsBehaviorNotFound(err) {
		t.Fatalf("expected behavior not found, got %v", err)
	}
}

func TestRegistryAttachUnknownFactory(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("doc", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := r.AttachBehavior("doc", "nope", nil)
	if err == nil || !behavior.IsUnknownFactory(err) {
		t.Fatalf("expected unknown factory, got %v", err)
	}
}

func TestRegistryTriggerAndStatus(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("doc", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.AttachBehavior("doc", "counter", map[string]any{"events": []any{"ping"}}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	resp, err := r.Trigger("doc", "ping", map[string]any{"n": 1})
	if err != nil {
		t.Fatalf("trigger: %v", err)
	}
	if resp.Handlers != 1 || resp.Handled {
		t.Fatalf("unexpected trigger response: %+v", resp)
	}
	if _, err := r.Trigger("missing", "ping", nil); err == nil || !IsEntityNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	st := r.Status()
	if len(st.Entities) != 1 || st.BehaviorsTotal != 1 {
		t.Fatalf("unexpected status: %+v", st)
	}
	if len(st.Factories) == 0 {
		t.Fatalf("expected factory names in status")
	}
}

func TestRegistrySaveFields(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Create("doc", nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	resp, err := r.SaveFields("doc", map[string]any{"k": "v"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !resp.Saved || resp.Fields["k"] != "v" {
		t.Fatalf("unexpected save response: %+v", resp)
	}
}
