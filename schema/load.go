package schema

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

type moduleDoc struct {
	Namespace string    `yaml:"namespace"`
	Elements  []elemDoc `yaml:"elements"`
}

type elemDoc struct {
	Name  string   `yaml:"name"`
	Order []string `yaml:"order"`
	Keys  []string `yaml:"keys"`
}

// LoadYAML reads a module description of the form
//
//	namespace: urn:example:interfaces
//	elements:
//	  - name: interface
//	    order: [name, mtu, enabled]
//	    keys: [name]
//
// Elements absent from the description decode as opaque nodes.
func LoadYAML(data []byte) (*Module, error) {
	var doc moduleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding module: %w", err)
	}
	if doc.Namespace == "" {
		return nil, fmt.Errorf("module must have a namespace")
	}
	m := &Module{Namespace: doc.Namespace}
	for i := range doc.Elements {
		ed := &doc.Elements[i]
		keys := ed.Keys
		if len(keys) == 0 {
			keys = nil
		}
		if err := m.Add(&Elem{Name: ed.Name, Order: ed.Order, KeyTags: keys}); err != nil {
			return nil, err
		}
	}
	return m, nil
}
