// Package tree holds the configuration tree model: nodes, node sets,
// tri-state structural comparison and path addressing. Trees are built
// upstream (by a decoder or generated code) and handed to the engine by
// reference; comparison never mutates its inputs.
package tree

import (
	"slices"
)

// Identity is the qualifying tag of a node: its namespace and local name.
type Identity struct {
	Namespace string
	Name      string
}

// Meta is the capability surface supplied by the schema-aware layer for a
// structural node. Nodes without Meta are opaque: content received under a
// schema revision the local side does not know. Opaque nodes fall back to
// full-content equality everywhere keys would otherwise be used.
type Meta interface {
	// ChildOrder returns the declared child names in schema order.
	ChildOrder() []string
	// Keys returns the ordered key child names identifying a list entry
	// among siblings sharing its tag, or nil when the node is not a keyed
	// list entry. Keys are a prefix of ChildOrder.
	Keys() []string
}

// Node is one element of a configuration tree. A node is a leaf iff Value is
// non-nil; otherwise it is structural and carries ordered Children. Attrs are
// excluded from comparison. Parent is a navigation back-reference only and
// never governs lifetime: the tree owns its children top-down.
type Node struct {
	Namespace string
	Name      string
	Value     *string
	Attrs     map[string]string
	Children  NodeSet
	Parent    *Node
	Op        OpTag
	Meta      Meta
}

// New returns a structural node with the given identity.
func New(namespace, name string) *Node {
	return &Node{Namespace: namespace, Name: name}
}

// NewLeaf returns a leaf node carrying a scalar value.
func NewLeaf(namespace, name, value string) *Node {
	return &Node{Namespace: namespace, Name: name, Value: &value}
}

func (n *Node) Ident() Identity {
	return Identity{Namespace: n.Namespace, Name: n.Name}
}

// IsLeaf reports whether n carries a scalar value rather than children.
func (n *Node) IsLeaf() bool {
	return n.Value != nil
}

func (n *Node) SetValue(v string) {
	n.Value = &v
}

// ValueString returns the leaf value, or "" for structural nodes.
func (n *Node) ValueString() string {
	if n.Value == nil {
		return ""
	}
	return *n.Value
}

// Keys returns the declared key child names, nil when the node is key-less
// or opaque.
func (n *Node) Keys() []string {
	if n.Meta == nil {
		return nil
	}
	return n.Meta.Keys()
}

// ChildOrder returns the declared child names in schema order, nil for
// leaves and opaque nodes.
func (n *Node) ChildOrder() []string {
	if n.Meta == nil {
		return nil
	}
	return n.Meta.ChildOrder()
}

// IsKey reports whether n is a key child of its parent list entry.
func (n *Node) IsKey() bool {
	if n.Parent == nil {
		return false
	}
	return slices.Contains(n.Parent.Keys(), n.Name)
}

// Child returns the first child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns the sibling group sharing the given name.
func (n *Node) ChildrenNamed(name string) NodeSet {
	var res NodeSet
	for _, c := range n.Children {
		if c.Name == name {
			res = append(res, c)
		}
	}
	return res
}

// AddChild appends c and sets its parent back-reference.
func (n *Node) AddChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// InsertChild adds c at the position implied by the declared child order,
// after any existing children of the same or earlier tags. Unknown tags go
// last.
func (n *Node) InsertChild(c *Node, order []string) {
	rank := func(name string) int {
		if i := slices.Index(order, name); i >= 0 {
			return i
		}
		return len(order)
	}
	cr := rank(c.Name)
	at := len(n.Children)
	for i, x := range n.Children {
		if rank(x.Name) > cr {
			at = i
			break
		}
	}
	c.Parent = n
	n.Children = slices.Insert(n.Children, at, c)
}

// DeleteChild removes the child c (pointer identity). It reports whether c
// was found.
func (n *Node) DeleteChild(c *Node) bool {
	for i, x := range n.Children {
		if x == c {
			n.Children = slices.Delete(n.Children, i, i+1)
			c.Parent = nil
			return true
		}
	}
	return false
}

// Root walks parent references up to the tree root.
func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks the subtree rooted at n in preorder. Returning false from f
// stops descent below the visited node.
func (n *Node) Visit(f func(*Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children {
		c.Visit(f)
	}
}
