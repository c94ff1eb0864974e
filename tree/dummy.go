package tree

// Synthetic root identity used when algorithms written for single-rooted
// trees must run over bare top-level forests.
const (
	DummyNamespace = "urn:confsync:dummy"
	DummyName      = "dummy"
)

// dummyMeta declares no keys and no child order, so two dummy roots always
// compare 0 and the walk proceeds directly to the wrapped forests.
type dummyMeta struct{}

func (dummyMeta) ChildOrder() []string { return nil }
func (dummyMeta) Keys() []string       { return nil }

// WrapForest parents a flat forest under a fresh throwaway root. The forest
// nodes are reparented to the dummy for the duration of its use; call Unwrap
// to release them again before returning to the caller.
func WrapForest(set NodeSet) *Node {
	d := New(DummyNamespace, DummyName)
	d.Meta = dummyMeta{}
	for _, n := range set {
		d.AddChild(n)
	}
	return d
}

// IsDummy reports whether n is a synthetic forest root.
func (n *Node) IsDummy() bool {
	return n.Namespace == DummyNamespace && n.Name == DummyName
}

// Unwrap detaches and returns the children, clearing their parent
// back-references. The receiver is left empty and is meant to be discarded.
func (n *Node) Unwrap() NodeSet {
	res := n.Children
	n.Children = nil
	for _, c := range res {
		c.Parent = nil
	}
	return res
}
