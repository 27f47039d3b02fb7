package camhelper

import (
	"fmt"
	"sort"
)

// Factory produces a fresh CamHelper for one sensor module.
type Factory func() CamHelper

// Registry maps sensor module names to helper factories. The name is the
// stable identifier shared with the kernel driver and the tuning files, so
// renaming an entry breaks existing configurations.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory keyed by sensor module name. Registering the same
// name twice is a configuration error: the caller must treat it as fatal
// before any camera opens, rather than let one entry silently replace
// another.
func (r *Registry) Register(name string, f Factory) error {
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("camera helper %q registered twice", name)
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

// Get instantiates the helper registered for the sensor module name.
func (r *Registry) Get(name string) (CamHelper, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("no camera helper registered for %q", name)
	}
	return f(), nil
}

// Names returns the registered sensor module names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinHelpers returns a registry holding every sensor module this build
// supports. The host calls it once before opening any camera; helpers are
// never registered as a package-init side effect.
func BuiltinHelpers() *Registry {
	r := NewRegistry()
	r.MustRegister("evdmoom1", NewEvdmOOM1)
	r.MustRegister("imx219", NewIMX219)
	r.MustRegister("ov5647", NewOV5647)
	return r
}
