package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/confsync/confsync/debug"
	"github.com/confsync/confsync/tree"
)

// parseYAML decodes a YAML mapping into a forest. Each top-level key is one
// root; scalar values become leaves, mappings become structural nodes, and a
// sequence under a key becomes the repeated sibling group of that tag:
//
//	interfaces:
//	  interface:
//	    - name: eth0
//	      mtu: 1500
//	    - name: eth1
func parseYAML(data []byte, cfg *parseConfig) (tree.NodeSet, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("error decoding yaml: %w", err)
	}
	if doc == nil {
		return nil, nil
	}
	top, ok := doc.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("document root must be a mapping, got %T", doc)
	}
	var roots tree.NodeSet
	for _, item := range top {
		nodes, err := yamlValue(fmt.Sprint(item.Key), item.Value, cfg)
		if err != nil {
			return nil, err
		}
		roots = append(roots, nodes...)
	}
	if debug.Parse() {
		debug.Logf("parse: yaml document with %d roots\n", len(roots))
	}
	return roots, nil
}

// yamlValue turns one key/value pair into nodes: one node normally, several
// when the value is a sequence (repeated list entries sharing the tag).
func yamlValue(name string, v any, cfg *parseConfig) (tree.NodeSet, error) {
	switch val := v.(type) {
	case yaml.MapSlice:
		n := tree.New(cfg.namespace, name)
		n.Meta = cfg.meta(cfg.namespace, name)
		for _, item := range val {
			children, err := yamlValue(fmt.Sprint(item.Key), item.Value, cfg)
			if err != nil {
				return nil, err
			}
			for _, c := range children {
				n.AddChild(c)
			}
		}
		return tree.NodeSet{n}, nil

	case []any:
		var res tree.NodeSet
		for _, entry := range val {
			nodes, err := yamlValue(name, entry, cfg)
			if err != nil {
				return nil, err
			}
			res = append(res, nodes...)
		}
		return res, nil

	case nil:
		// presence container: no value, no children
		n := tree.New(cfg.namespace, name)
		n.Meta = cfg.meta(cfg.namespace, name)
		return tree.NodeSet{n}, nil

	default:
		return tree.NodeSet{tree.NewLeaf(cfg.namespace, name, fmt.Sprint(val))}, nil
	}
}
