package tree

import (
	"maps"
	"slices"
)

// Clone produces a fully independent copy of the subtree rooted at n,
// sharing nothing with the source. The clone's parent is nil; Meta is shared
// by reference, being immutable schema metadata.
func (n *Node) Clone() *Node {
	res := n.cloneNode()
	for _, c := range n.Children {
		cc := c.Clone()
		cc.Parent = res
		res.Children = append(res.Children, cc)
	}
	return res
}

// CloneShallow copies identity, value, attributes, operation tag and the key
// children only. The result addresses the same entry as n without carrying
// its content, which is what deletion tombstones need.
func (n *Node) CloneShallow() *Node {
	res := n.cloneNode()
	for _, k := range n.Keys() {
		if c := n.Child(k); c != nil {
			cc := c.Clone()
			cc.Parent = res
			res.Children = append(res.Children, cc)
		}
	}
	return res
}

func (n *Node) cloneNode() *Node {
	res := &Node{
		Namespace: n.Namespace,
		Name:      n.Name,
		Op:        n.Op,
		Meta:      n.Meta,
	}
	if n.Value != nil {
		v := *n.Value
		res.Value = &v
	}
	if n.Attrs != nil {
		res.Attrs = maps.Clone(n.Attrs)
	}
	return res
}

// Clone deep-copies every tree in the set.
func (s NodeSet) Clone() NodeSet {
	res := make(NodeSet, len(s))
	for i, n := range s {
		res[i] = n.Clone()
	}
	return res
}

// Shallow returns a copy of the set itself, leaving the nodes shared.
func (s NodeSet) Shallow() NodeSet {
	return slices.Clone(s)
}
