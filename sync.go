package confsync

import (
	"fmt"
	"slices"

	"github.com/confsync/confsync/debug"
	"github.com/confsync/confsync/tree"
)

// Sync returns a subtree with all the operations needed to make tree A look
// like the target tree B, using replace semantics: every list entry that
// differs is discarded and reinstalled wholesale. Coarse-grained by design,
// trading transmission size for simplicity; [SyncMerge] produces the
// fine-grained alternative.
//
// Entries unique to A are folded in tagged delete, entries unique to B
// tagged create, and changed entries tagged replace with B's content
// winning. Missing ancestor containers are synthesized along each entry's
// path so the result stays one well-formed tree. A nil result means the
// trees are already in sync. ErrStructuralMismatch when the roots cannot be
// represented as one combinable tree.
func Sync(a, b *tree.Node) (*tree.Node, error) {
	d := GetDiff(a, b)
	var (
		result *tree.Node
		err    error
	)
	for _, x := range d.UniqueA {
		if result, err = foldInto(result, x, tree.OpDelete); err != nil {
			return nil, err
		}
	}
	for _, x := range d.UniqueB {
		if result, err = foldInto(result, x, tree.OpCreate); err != nil {
			return nil, err
		}
	}
	for _, x := range d.ChangedB {
		if result, err = foldInto(result, x, tree.OpReplace); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// SyncSets is Sync over two flat forests of configuration roots, wrapped in
// throwaway synthetic roots for the duration of the call.
func SyncSets(a, b tree.NodeSet) (tree.NodeSet, error) {
	aDummy := tree.WrapForest(a)
	bDummy := tree.WrapForest(b)
	defer aDummy.Unwrap()
	defer bDummy.Unwrap()
	res, err := Sync(aDummy, bDummy)
	if err != nil || res == nil {
		return nil, err
	}
	return res.Unwrap(), nil
}

// foldInto merges one classified entry into the accumulating patch tree,
// cloning shallow ancestor containers along the entry's path so the result
// stays a single ancestor-connected tree rather than a flat list. Deletes
// fold as addressable tombstones (identity plus keys), creates and replaces
// carry the entry verbatim.
func foldInto(result, n *tree.Node, op tree.OpTag) (*tree.Node, error) {
	if debug.Sync() {
		debug.Logf("sync: fold %s as %s\n", n.Name, op)
	}
	anc := ancestry(n)
	top := anc[0]
	if result == nil {
		if len(anc) == 1 {
			result = cloneFor(n, op)
			result.MarkOp(op)
			return result, nil
		}
		result = top.CloneShallow()
	} else if len(anc) == 1 || !sameEntry(result, top) {
		return nil, fmt.Errorf("%w: cannot fold %s %s into patch rooted at %s",
			ErrStructuralMismatch, op, n.Name, result.Name)
	}

	cur := result
	for _, step := range anc[1 : len(anc)-1] {
		next := cur.Children.Find(func(c *tree.Node) bool { return sameEntry(c, step) })
		if next == nil {
			next = step.CloneShallow()
			cur.InsertChild(next, cur.ChildOrder())
		}
		cur = next
	}
	entry := cloneFor(n, op)
	entry.MarkOp(op)
	cur.InsertChild(entry, cur.ChildOrder())
	return result, nil
}

// ancestry returns the chain from the tree root down to n, inclusive.
func ancestry(n *tree.Node) []*tree.Node {
	var anc []*tree.Node
	for x := n; x != nil; x = x.Parent {
		anc = append(anc, x)
	}
	slices.Reverse(anc)
	return anc
}

func cloneFor(n *tree.Node, op tree.OpTag) *tree.Node {
	if op == tree.OpDelete {
		return n.CloneShallow()
	}
	return n.Clone()
}

// sameEntry decides whether an existing patch node addresses the same entry
// as a path step: key equality for keyed list entries, identity equality
// otherwise.
func sameEntry(x, step *tree.Node) bool {
	if step.Keys() != nil {
		return step.KeyCompare(x)
	}
	return step.Equals(x)
}
