// Package schema supplies the per-node metadata the engine consumes through
// tree.Meta: declared child order and the key subset identifying list
// entries. Metadata is grouped into modules, one per namespace, and held in
// an explicitly owned Registry that a decoder consults while building trees.
package schema

import "fmt"

// Elem is the schema metadata for one element type. It implements tree.Meta.
type Elem struct {
	Name string
	// Order lists the declared child names in schema order; keys first.
	Order []string
	// KeyTags names the ordered key children identifying a list entry
	// among siblings sharing its tag. Nil for leaves, containers and
	// key-less list-entry types.
	KeyTags []string
}

func (e *Elem) ChildOrder() []string { return e.Order }
func (e *Elem) Keys() []string       { return e.KeyTags }

// Module groups the element metadata of one namespace.
type Module struct {
	Namespace string
	Elems     map[string]*Elem
}

// Elem returns the metadata for the named element type, or nil when the
// module does not declare it.
func (m *Module) Elem(name string) *Elem {
	return m.Elems[name]
}

// Add declares an element type in the module.
func (m *Module) Add(e *Elem) error {
	if e.Name == "" {
		return fmt.Errorf("element must have a name")
	}
	if m.Elems == nil {
		m.Elems = map[string]*Elem{}
	}
	if _, exists := m.Elems[e.Name]; exists {
		return fmt.Errorf("element %q already declared in %s", e.Name, m.Namespace)
	}
	// keys must be a prefix of the declared child order
	for i, k := range e.KeyTags {
		if i >= len(e.Order) || e.Order[i] != k {
			return fmt.Errorf("element %q: key %q is not a prefix of its child order", e.Name, k)
		}
	}
	m.Elems[e.Name] = e
	return nil
}
