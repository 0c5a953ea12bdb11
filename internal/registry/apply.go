package registry

import (
	"fmt"

	"hookd/internal/entity"
	"hookd/pkg/types"
)

// Apply creates each defined entity in reg and attaches its behaviors in
// declaration order. The first failure aborts: startup definitions are
// expected to be valid.
func Apply(reg *entity.Registry, defs []types.EntityDefinition) error {
	for _, def := range defs {
		if _, err := reg.Create(def.ID, def.Fields); err != nil {
			return fmt.Errorf("create %s: %w", def.ID, err)
		}
		for _, spec := range def.Behaviors {
			if err := reg.AttachBehavior(def.ID, spec.Name, spec.Config); err != nil {
				return fmt.Errorf("attach %s to %s: %w", spec.Name, def.ID, err)
			}
		}
	}
	return nil
}
