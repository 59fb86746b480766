package app

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Provider is implemented by anything that carries an app definition.
// Generated definition structs satisfy it by embedding Definition.
type Provider interface {
	AppDefinition() Definition
}

// Factory builds a Provider on demand.
type Factory func() Provider

// Registry stores app definition factories by id.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under id. Duplicate ids return an error.
func (r *Registry) Register(id string, factory Factory) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("app: registry id is required")
	}
	if factory == nil {
		return fmt.Errorf("app: factory for %q is required", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		return fmt.Errorf("app: definition %q already registered", id)
	}
	r.factories[id] = factory
	return nil
}

// MustRegister panics on registration failure. Generated init functions use
// it so two packages claiming the same id fail at start.
func (r *Registry) MustRegister(id string, factory Factory) {
	if err := r.Register(id, factory); err != nil {
		panic(err)
	}
}

// Lookup builds the provider registered under id.
func (r *Registry) Lookup(id string) (Provider, bool) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// IDs returns the registered ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var defaultRegistry = NewRegistry()

// Register adds a factory to the default registry, panicking on duplicates.
func Register(id string, factory Factory) {
	defaultRegistry.MustRegister(id, factory)
}

// Lookup builds the provider registered under id in the default registry.
func Lookup(id string) (Provider, bool) {
	return defaultRegistry.Lookup(id)
}

// RegisteredIDs lists the ids in the default registry.
func RegisteredIDs() []string {
	return defaultRegistry.IDs()
}
