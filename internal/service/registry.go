package service

import (
	"fmt"
)

// Registration binds a resource implementation to the conflict strategy
// chosen for it.
type Registration struct {
	Resource Resource
	Strategy ConflictStrategy
}

// Registry is the explicit resource lookup table, populated at startup.
// There is no runtime type inspection: a request either names a registered
// resource or fails with [ErrUnknownResource].
//
// Register must not race with Lookup; wire everything before serving.
type Registry struct {
	resources map[string]Registration
}

// NewRegistry constructs an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		resources: make(map[string]Registration),
	}
}

// Register binds resource under its name with the given strategy. A nil
// strategy defaults to [ClientDefers] — the server never silently picks a
// winner unless told to.
func (r *Registry) Register(resource Resource, strategy ConflictStrategy) error {
	name := resource.Name()
	if _, exists := r.resources[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateResource, name)
	}

	if strategy == nil {
		strategy = NewClientDefers()
	}

	r.resources[name] = Registration{
		Resource: resource,
		Strategy: strategy,
	}
	return nil
}

// Lookup returns the registration for name, or [ErrUnknownResource].
func (r *Registry) Lookup(name string) (Registration, error) {
	registration, ok := r.resources[name]
	if !ok {
		return Registration{}, fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}
	return registration, nil
}

// Names returns the registered resource names, for logging and diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	return names
}
