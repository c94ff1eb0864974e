package tree

import "slices"

// NodeSet is an ordered sequence of nodes. No implicit deduplication is
// performed; membership operations use pointer identity.
type NodeSet []*Node

// First returns the first node, or nil when the set is empty.
func (s NodeSet) First() *Node {
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

// Last returns the last node, or nil when the set is empty.
func (s NodeSet) Last() *Node {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Find returns the first node satisfying pred, or nil.
func (s NodeSet) Find(pred func(*Node) bool) *Node {
	for _, n := range s {
		if pred(n) {
			return n
		}
	}
	return nil
}

// FindAll returns all nodes satisfying pred, in order.
func (s NodeSet) FindAll(pred func(*Node) bool) NodeSet {
	var res NodeSet
	for _, n := range s {
		if pred(n) {
			res = append(res, n)
		}
	}
	return res
}

func (s *NodeSet) Append(nodes ...*Node) {
	*s = append(*s, nodes...)
}

// RemoveAt removes and returns the node at index i.
func (s *NodeSet) RemoveAt(i int) *Node {
	n := (*s)[i]
	*s = slices.Delete(*s, i, i+1)
	return n
}

// Remove removes n by pointer identity and reports whether it was present.
func (s *NodeSet) Remove(n *Node) bool {
	for i, x := range *s {
		if x == n {
			s.RemoveAt(i)
			return true
		}
	}
	return false
}

// TakeMatch finds the first entry matching e under the list-entry matching
// rule, removes it from the set and returns it; nil when nothing matches.
// The rule: leaves match on value equality; keyed list entries on key
// equality; key-less schema-aware entries on identity equality; opaque
// entries on full-content equality. Matching is greedy first-fit in
// iteration order, so every entry participates in at most one match.
func (s *NodeSet) TakeMatch(e *Node) *Node {
	switch {
	case e.IsLeaf():
		for i, x := range *s {
			if x.IsLeaf() && x.Compare(e) >= 0 {
				return s.RemoveAt(i)
			}
		}
	case e.Meta != nil:
		keys := e.Keys()
		for i, x := range *s {
			if x.IsLeaf() {
				continue
			}
			if keys == nil {
				if e.Equals(x) {
					return s.RemoveAt(i)
				}
			} else if e.KeyCompare(x) {
				return s.RemoveAt(i)
			}
		}
	default:
		// Opaque content from a newer schema revision than locally
		// known: it cannot be classified as key-bearing, so match on
		// content equality.
		for i, x := range *s {
			if x.Compare(e) >= 0 {
				return s.RemoveAt(i)
			}
		}
	}
	return nil
}
