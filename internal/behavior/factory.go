package behavior

import "sync"

// Factory builds a behavior from a free-form configuration map, as found in
// definition files and attach requests.
type Factory func(cfg map[string]any) (Behavior, error)

var (
	factoryMu sync.RWMutex
	factories = map[string]Factory{}
)

// RegisterFactory installs a named factory. Later registrations with the
// same name replace earlier ones.
func RegisterFactory(name string, f Factory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factories[name] = f
}

// New builds a fresh, detached behavior from the named factory.
func New(name string, cfg map[string]any) (Behavior, error) {
	factoryMu.RLock()
	f := factories[name]
	factoryMu.RUnlock()
	if f == nil {
		return nil, unknownFactoryError{name: name}
	}
	return f(cfg)
}

// FactoryNames returns the registered factory names (unordered).
func FactoryNames() []string {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	return out
}

// helpers shared by factories for reading config maps

func cfgString(cfg map[string]any, key, def string) string {
	if v, ok := cfg[key].(string); ok && v != "" {
		return v
	}
	return def
}

func cfgStrings(cfg map[string]any, key string) []string {
	switch v := cfg[key].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
