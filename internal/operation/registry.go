package operation

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory produces a new Operation instance.
type Factory func() Operation

// Registry manages operation registration by name.
// Lookup is case-insensitive; names are stored lowercase.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// NewDefaultRegistry creates a registry with all built-in operations.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}

// RegisterBuiltins registers the built-in operation set.
func RegisterBuiltins(r *Registry) {
	builtins := []Factory{
		func() Operation { return Addition{} },
		func() Operation { return Subtraction{} },
		func() Operation { return Multiplication{} },
		func() Operation { return Division{} },
		func() Operation { return Power{} },
		func() Operation { return Root{} },
		func() Operation { return Modulus{} },
		func() Operation { return IntDivision{} },
		func() Operation { return Percentage{} },
		func() Operation { return AbsoluteDifference{} },
	}
	for _, f := range builtins {
		// Built-in factories always produce valid operations.
		_ = r.Register(f().Name(), f)
	}
}

// Register adds or overwrites a name -> factory mapping.
// The factory is probed once; a factory that is nil or produces nil
// fails with ErrInvalidOperation.
func (r *Registry) Register(name string, factory Factory) error {
	if factory == nil || factory() == nil {
		return fmt.Errorf("%w: %q", ErrInvalidOperation, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[strings.ToLower(name)] = factory
	return nil
}

// Create looks up a factory case-insensitively and instantiates the operation.
func (r *Registry) Create(name string) (Operation, error) {
	r.mu.RLock()
	factory, ok := r.factories[strings.ToLower(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return factory(), nil
}

// Has returns true if an operation is registered under the name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.ToLower(name)]
	return ok
}

// List returns all registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered operations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Clear removes all registered operations.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = make(map[string]Factory)
}
