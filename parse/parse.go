// Package parse decodes configuration trees from YAML or XML documents,
// attaching schema metadata from a Registry as it goes. Elements the
// registry does not know decode as opaque nodes, which the engine matches by
// full-content equality.
package parse

import (
	"fmt"

	"github.com/confsync/confsync/format"
	"github.com/confsync/confsync/schema"
	"github.com/confsync/confsync/tree"
)

type parseConfig struct {
	format    format.Format
	registry  *schema.Registry
	namespace string
}

type ParseOption func(*parseConfig)

// ParseFormat selects the input format; YAML is the default.
func ParseFormat(f format.Format) ParseOption {
	return func(c *parseConfig) { c.format = f }
}

// ParseRegistry supplies the schema registry consulted for element metadata.
// Without one every node decodes opaque.
func ParseRegistry(r *schema.Registry) ParseOption {
	return func(c *parseConfig) { c.registry = r }
}

// ParseNamespace sets the namespace given to decoded nodes when the document
// itself carries none (YAML input, or XML elements without xmlns).
func ParseNamespace(ns string) ParseOption {
	return func(c *parseConfig) { c.namespace = ns }
}

// Parse decodes a document holding a single configuration root.
func Parse(data []byte, opts ...ParseOption) (*tree.Node, error) {
	roots, err := ParseForest(data, opts...)
	if err != nil {
		return nil, err
	}
	if len(roots) != 1 {
		return nil, fmt.Errorf("expected a single root, got %d", len(roots))
	}
	return roots.First(), nil
}

// ParseForest decodes a document holding a flat forest of configuration
// roots.
func ParseForest(data []byte, opts ...ParseOption) (tree.NodeSet, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	switch cfg.format {
	case format.XMLFormat:
		return parseXML(data, cfg)
	default:
		return parseYAML(data, cfg)
	}
}

// meta resolves schema metadata for a structural node; nil leaves it opaque.
func (c *parseConfig) meta(ns, name string) tree.Meta {
	if c.registry == nil {
		return nil
	}
	e := c.registry.Elem(ns, name)
	if e == nil {
		return nil
	}
	return e
}
