package entity

// Defaults applied when corresponding RegistryConfig fields are unset.
const defaultMaxEntities = 256

// RegistryConfig encapsulates all tunables for Registry construction.
type RegistryConfig struct {
	// MaxEntities caps the number of managed entities (0 = default).
	MaxEntities int
}

// NewWithConfig constructs a Registry from RegistryConfig.
func NewWithConfig(cfg RegistryConfig) *Registry {
	r := newRegistry()
	if cfg.MaxEntities <= 0 {
		r.maxEntities = defaultMaxEntities
	} else {
		r.maxEntities = cfg.MaxEntities
	}
	return r
}
