package tree

import (
	"fmt"
	"strings"
)

// Path expressions address children relative to a node:
//
//	interfaces/interface[name=eth0]/mtu
//
// Each step names a child tag, optionally constrained by one or more
// [child=value] predicates on leaf children of the stepped-to node.
type Path struct {
	Steps []PathStep
}

type PathStep struct {
	Name  string
	Preds []PathPred
}

// PathPred constrains a step to entries whose named leaf child carries the
// given value.
type PathPred struct {
	Child string
	Value string
}

func (p *Path) String() string {
	var b strings.Builder
	for i := range p.Steps {
		st := &p.Steps[i]
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(st.Name)
		for _, pr := range st.Preds {
			fmt.Fprintf(&b, "[%s=%s]", pr.Child, pr.Value)
		}
	}
	return b.String()
}

func ParsePath(p string) (*Path, error) {
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	res := &Path{}
	for _, frag := range strings.Split(p, "/") {
		step, err := parseStep(frag)
		if err != nil {
			return nil, err
		}
		res.Steps = append(res.Steps, step)
	}
	return res, nil
}

func parseStep(frag string) (PathStep, error) {
	step := PathStep{}
	open := strings.IndexByte(frag, '[')
	if open < 0 {
		step.Name = frag
	} else {
		step.Name = frag[:open]
		rest := frag[open:]
		for rest != "" {
			if rest[0] != '[' {
				return step, fmt.Errorf("%w: unexpected %q in step %q", ErrBadPath, rest, frag)
			}
			close := strings.IndexByte(rest, ']')
			if close < 0 {
				return step, fmt.Errorf("%w: unbalanced predicate in step %q", ErrBadPath, frag)
			}
			eq := strings.IndexByte(rest[:close], '=')
			if eq < 2 {
				return step, fmt.Errorf("%w: predicate %q needs child=value", ErrBadPath, rest[:close+1])
			}
			step.Preds = append(step.Preds, PathPred{
				Child: rest[1:eq],
				Value: rest[eq+1 : close],
			})
			rest = rest[close+1:]
		}
	}
	if step.Name == "" {
		return step, fmt.Errorf("%w: empty step in %q", ErrBadPath, frag)
	}
	return step, nil
}

func (st *PathStep) matches(n *Node) bool {
	if n.Name != st.Name {
		return false
	}
	for _, pr := range st.Preds {
		c := n.Child(pr.Child)
		if c == nil || !c.IsLeaf() || *c.Value != pr.Value {
			return false
		}
	}
	return true
}

// Get returns every node addressed by the path relative to n, in tree order.
// An unmatched path yields an empty set, not an error.
func (n *Node) Get(path string) (NodeSet, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	cur := NodeSet{n}
	for i := range p.Steps {
		st := &p.Steps[i]
		var next NodeSet
		for _, x := range cur {
			for _, c := range x.Children {
				if st.matches(c) {
					next = append(next, c)
				}
			}
		}
		if len(next) == 0 {
			return nil, nil
		}
		cur = next
	}
	return cur, nil
}

// GetFirst returns the first node addressed by the path, or
// ErrElementMissing when the path matches nothing.
func (n *Node) GetFirst(path string) (*Node, error) {
	nodes, err := n.Get(path)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrElementMissing, path)
	}
	return nodes.First(), nil
}

// MarkPath attaches an operation tag to the first node addressed by the
// path. ErrElementMissing when the path matches nothing.
func (n *Node) MarkPath(path string, op OpTag) error {
	target, err := n.GetFirst(path)
	if err != nil {
		return err
	}
	target.MarkOp(op)
	return nil
}
