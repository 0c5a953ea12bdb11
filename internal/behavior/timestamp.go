package behavior

import (
	"time"

	"hookd/internal/event"
)

// Timestamp stamps creation/update times into the payload of a save event.
// The created field is only written when absent from the owner's current
// fields, so re-saves keep the original value.
type Timestamp struct {
	Base
	// Event to bind to; defaults to "beforeSave".
	Event string
	// Field names; default to "created_at" / "updated_at".
	CreatedField string
	UpdatedField string
	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewTimestamp returns a Timestamp with default field names.
func NewTimestamp() *Timestamp {
	return &Timestamp{
		Event:        "beforeSave",
		CreatedField: "created_at",
		UpdatedField: "updated_at",
		Now:          time.Now,
	}
}

func (t *Timestamp) Events() []Binding {
	return []Binding{{Event: t.Event, Handler: Method("OnBeforeSave")}}
}

// OnBeforeSave writes timestamps into the event payload.
func (t *Timestamp) OnBeforeSave(e *event.Event) {
	if e.Data == nil {
		return
	}
	now := t.Now().UTC().Format(time.RFC3339)
	if _, ok := e.Data[t.CreatedField]; !ok {
		if f, ok := e.Sender.(interface{ Field(string) (any, bool) }); ok {
			if v, present := f.Field(t.CreatedField); present {
				e.Data[t.CreatedField] = v
			} else {
				e.Data[t.CreatedField] = now
			}
		} else {
			e.Data[t.CreatedField] = now
		}
	}
	e.Data[t.UpdatedField] = now
}

func init() {
	RegisterFactory("timestamp", func(cfg map[string]any) (Behavior, error) {
		t := NewTimestamp()
		t.Event = cfgString(cfg, "event", t.Event)
		t.CreatedField = cfgString(cfg, "created_field", t.CreatedField)
		t.UpdatedField = cfgString(cfg, "updated_field", t.UpdatedField)
		return t, nil
	})
}
