package tiledata

import (
	"errors"
	"fmt"
)

// Names of the definitions map generation and the digging completion rule
// depend on. A data pack missing either is invalid.
const (
	GroundTile = "ground"
	IceTile    = "ice"
)

// Registry holds loaded tile definitions and provides lookup utilities.
// Built once at startup and never mutated afterwards.
type Registry struct {
	defs map[string]*Definition
}

// NewRegistry creates a registry from loaded tile definitions.
func NewRegistry(defs map[string]*Definition) *Registry {
	return &Registry{defs: defs}
}

// LoadRegistry loads and creates a registry from the embedded tiles.json.
// It verifies the entries the simulation core references by name.
func LoadRegistry() (*Registry, error) {
	defs, err := LoadDefinitions()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no tile definitions loaded from tiles.json")
	}

	registry := NewRegistry(defs)
	for _, required := range []string{GroundTile, IceTile} {
		if _, ok := registry.Get(required); !ok {
			return nil, fmt.Errorf("tiles.json is missing required definition %q", required)
		}
	}
	return registry, nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the definition with the given name.
func (r *Registry) Get(name string) (*Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// All returns all definitions keyed by name.
func (r *Registry) All() map[string]*Definition {
	return r.defs
}

// Count returns the number of tile definitions in the registry.
func (r *Registry) Count() int {
	return len(r.defs)
}
