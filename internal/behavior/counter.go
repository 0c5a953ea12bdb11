package behavior

import (
	"github.com/prometheus/client_golang/prometheus"

	"hookd/internal/event"
)

var eventsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "hookd",
		Subsystem: "behavior",
		Name:      "events_total",
		Help:      "Total events observed by counter behaviors",
	},
	[]string{"entity", "event"},
)

func init() {
	prometheus.MustRegister(eventsTotal)
	RegisterFactory("counter", func(cfg map[string]any) (Behavior, error) {
		return NewCounter(cfgStrings(cfg, "events")...), nil
	})
}

// Counter increments a Prometheus counter for every watched event.
type Counter struct {
	Base
	Watch []string
}

// NewCounter returns a Counter watching the given events.
func NewCounter(watch ...string) *Counter {
	return &Counter{Watch: watch}
}

func (c *Counter) Events() []Binding {
	out := make([]Binding, 0, len(c.Watch))
	for _, name := range c.Watch {
		out = append(out, Binding{Event: name, Handler: Func(c.count)})
	}
	return out
}

func (c *Counter) count(e *event.Event) {
	entity := ""
	if id, ok := e.Sender.(interface{ ID() string }); ok {
		entity = id.ID()
	}
	eventsTotal.WithLabelValues(entity, e.Name).Inc()
}
