package schema

import (
	"fmt"
	"sync"
)

// Registry maps namespaces to modules. It is an owned object handed to
// decoders explicitly, not process-global state; callers control its
// register/unregister lifecycle.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Module
}

func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// Register adds a module to the registry.
func (r *Registry) Register(m *Module) error {
	if m == nil {
		return fmt.Errorf("cannot register nil module")
	}
	if m.Namespace == "" {
		return fmt.Errorf("module must have a namespace")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[m.Namespace]; exists {
		return fmt.Errorf("namespace %q already registered", m.Namespace)
	}

	r.modules[m.Namespace] = m
	return nil
}

// Unregister removes the module registered for a namespace, if any.
func (r *Registry) Unregister(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.modules, namespace)
}

// Lookup returns the module for a namespace, or nil.
func (r *Registry) Lookup(namespace string) *Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modules[namespace]
}

// Elem resolves element metadata by namespace and name; nil when either is
// unknown, in which case decoded nodes stay opaque.
func (r *Registry) Elem(namespace, name string) *Elem {
	m := r.Lookup(namespace)
	if m == nil {
		return nil
	}
	return m.Elem(name)
}

// All returns the registered modules.
func (r *Registry) All() map[string]*Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*Module, len(r.modules))
	for k, v := range r.modules {
		result[k] = v
	}
	return result
}
