package ipa

import (
	"fmt"
	"sort"

	"github.com/banshee-data/ipa-control/internal/tuning"
)

// Factory produces one fresh algorithm instance.
type Factory func() Algorithm

// Registry maps algorithm identifiers to factories. Identifiers are the
// stable strings used by tuning files, so renaming one breaks existing
// configurations.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory keyed by algorithm identifier. A duplicate
// identifier is a configuration error detected here, at registration time;
// the caller must treat it as fatal before any camera opens.
func (r *Registry) Register(name string, f Factory) error {
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("algorithm %q registered twice", name)
	}
	r.factories[name] = f
	return nil
}

// MustRegister is Register for the deliberate table-building routines, where
// a duplicate is a programming error.
func (r *Registry) MustRegister(name string, f Factory) {
	if err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered for the identifier.
func (r *Registry) Lookup(name string) (Factory, bool) {
	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateAlgorithms instantiates and initialises the algorithms named by the
// tuning data's top-level "algorithms" list, in file order. Each list entry
// is a single-key mapping from an algorithm identifier to that algorithm's
// tuning section.
func (r *Registry) CreateAlgorithms(ctx *Context, root *tuning.Data) ([]Algorithm, error) {
	var algorithms []Algorithm

	for i, entry := range root.Get("algorithms").List() {
		keys := entry.Keys()
		if len(keys) != 1 {
			return nil, fmt.Errorf("algorithm entry %d must have exactly one key, got %d", i, len(keys))
		}
		name := keys[0]

		factory, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("no algorithm registered for %q", name)
		}

		algorithm := factory()
		if err := algorithm.Init(ctx, entry.Get(name)); err != nil {
			return nil, fmt.Errorf("initialising algorithm %q: %w", name, err)
		}

		ctx.Diag.Debugf("instantiated algorithm %q", name)
		algorithms = append(algorithms, algorithm)
	}

	return algorithms, nil
}
