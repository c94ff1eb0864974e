package tree

import "slices"

// Equals reports identity-and-value equality. For leaves the scalar values
// must match; structural nodes compare identity only, their children are not
// inspected. Attributes never participate.
func (n *Node) Equals(b *Node) bool {
	if n.Namespace != b.Namespace || n.Name != b.Name {
		return false
	}
	if n.IsLeaf() != b.IsLeaf() {
		return false
	}
	if n.IsLeaf() {
		return *n.Value == *b.Value
	}
	return true
}

// KeyCompare reports whether two list entries denote the same entry: Equals
// holds and every declared key child has equal value on both sides. A node
// declaring no keys is not a list entry and never key-compares.
func (n *Node) KeyCompare(b *Node) bool {
	if !n.Equals(b) {
		return false
	}
	keys := n.Keys()
	if keys == nil {
		return false
	}
	for _, k := range keys {
		x, bx := n.Child(k), b.Child(k)
		if x == nil || bx == nil || !x.Equals(bx) {
			return false
		}
	}
	return true
}

// Compare performs the tri-state comparison:
//
//   - 0 if identity, value, keys and child content at this level all match;
//   - 1 if identity (and keys, for list entries) match but some non-key
//     content differs;
//   - -1 if identity, value or keys differ: the nodes are unrelated.
//
// For leaves the value alone decides between 0 and 1. For structural nodes
// child content is checked one level deep, per declared child tag: the
// sibling groups on both sides must have the same size and every entry on
// this side must find an Equals match on the other. Key children encode
// identity, already verified, and are excluded from the content walk.
// Differences buried below one level are found by recursing on 0-compared
// pairs. Opaque nodes have no key metadata and fall back to full-content
// equality, with no middle ground.
func (n *Node) Compare(b *Node) int {
	if n.IsLeaf() || b.IsLeaf() {
		if n.Namespace != b.Namespace || n.Name != b.Name || n.IsLeaf() != b.IsLeaf() {
			return -1
		}
		if *n.Value == *b.Value {
			return 0
		}
		return 1
	}
	if !n.Equals(b) {
		return -1
	}
	if n.Meta == nil || b.Meta == nil {
		return compareOpaque(n, b)
	}

	keys := n.Keys()
	for _, k := range keys {
		x, bx := n.Child(k), b.Child(k)
		if x == nil || bx == nil || !x.Equals(bx) {
			return -1
		}
	}
	names := n.ChildOrder()
	// keys are a prefix of the declared order
	for i := len(keys); i < len(names); i++ {
		nsA := n.ChildrenNamed(names[i])
		nsB := b.ChildrenNamed(names[i])
		hits := 0
		for _, cA := range nsA {
			for _, cB := range nsB {
				if cA.Equals(cB) {
					hits++
					break
				}
			}
		}
		if len(nsA) != len(nsB) || hits != len(nsA) {
			return 1
		}
	}
	return 0
}

// compareOpaque is the schema-unaware fallback: full recursive content
// equality, order-independent within sibling groups.
func compareOpaque(a, b *Node) int {
	if len(a.Children) != len(b.Children) {
		return -1
	}
	rem := slices.Clone(b.Children)
	for _, cA := range a.Children {
		found := -1
		for i, cB := range rem {
			if cA.Compare(cB) == 0 {
				found = i
				break
			}
		}
		if found < 0 {
			return -1
		}
		rem = slices.Delete(rem, found, found+1)
	}
	return 0
}
