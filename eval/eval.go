// Package eval compiles expr predicates over configuration nodes, backing
// NodeSet filtering in the CLI and programmatic linear search.
//
// Expressions see the node through a small environment:
//
//	name == "interface" && child("mtu") == "9000"
//	leaf && value != ""
//	has("name") && attr("inactive") == ""
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/confsync/confsync/tree"
)

// Predicate is a compiled node filter.
type Predicate struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Predicate, error) {
	prog, err := expr.Compile(src, expr.Env(env(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling predicate %q: %w", src, err)
	}
	return &Predicate{src: src, prog: prog}, nil
}

func (p *Predicate) String() string { return p.src }

// Match evaluates the predicate against one node.
func (p *Predicate) Match(n *tree.Node) (bool, error) {
	out, err := expr.Run(p.prog, env(n))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q: %w", p.src, err)
	}
	res, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("predicate %q did not yield a bool", p.src)
	}
	return res, nil
}

// Filter returns the subset of nodes satisfying the predicate, in order.
func Filter(set tree.NodeSet, src string) (tree.NodeSet, error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	var res tree.NodeSet
	for _, n := range set {
		ok, err := p.Match(n)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, n)
		}
	}
	return res, nil
}

func env(n *tree.Node) map[string]any {
	var (
		name, namespace, value string
		leaf                   bool
	)
	if n != nil {
		name = n.Name
		namespace = n.Namespace
		value = n.ValueString()
		leaf = n.IsLeaf()
	}
	return map[string]any{
		"name":      name,
		"namespace": namespace,
		"value":     value,
		"leaf":      leaf,
		"op": func() string {
			if n == nil {
				return ""
			}
			return n.Op.String()
		}(),
		"child": func(childName string) string {
			if n == nil {
				return ""
			}
			c := n.Child(childName)
			if c == nil {
				return ""
			}
			return c.ValueString()
		},
		"has": func(childName string) bool {
			if n == nil {
				return false
			}
			return n.Child(childName) != nil
		},
		"attr": func(key string) string {
			if n == nil {
				return ""
			}
			return n.Attrs[key]
		},
	}
}
