package behavior

import (
	"os"

	"github.com/rs/zerolog"

	"hookd/internal/event"
)

// Audit logs every watched event through a structured logger.
type Audit struct {
	Base
	// Watch lists the event names to log, in binding order.
	Watch []string
	// Log defaults to a stderr logger when zero.
	Log zerolog.Logger

	logSet bool
}

// NewAudit returns an Audit watching the given events.
func NewAudit(watch ...string) *Audit {
	return &Audit{Watch: watch}
}

// SetLogger installs the logger used for audit lines.
func (a *Audit) SetLogger(l zerolog.Logger) {
	a.Log = l
	a.logSet = true
}

func (a *Audit) Events() []Binding {
	out := make([]Binding, 0, len(a.Watch))
	for _, name := range a.Watch {
		out = append(out, Binding{Event: name, Handler: Func(a.record)})
	}
	return out
}

func (a *Audit) record(e *event.Event) {
	log := a.Log
	if !a.logSet {
		log = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	ev := log.Info().Str("event", e.Name)
	if id, ok := e.Sender.(interface{ ID() string }); ok {
		ev = ev.Str("entity", id.ID())
	}
	if len(e.Data) > 0 {
		ev = ev.Interface("data", e.Data)
	}
	ev.Msg("event fired")
}

func init() {
	RegisterFactory("audit", func(cfg map[string]any) (Behavior, error) {
		return NewAudit(cfgStrings(cfg, "events")...), nil
	})
}
