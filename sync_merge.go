package confsync

import (
	"github.com/confsync/confsync/debug"
	"github.com/confsync/confsync/tree"
)

// SyncMerge returns a subtree with all the operations needed to make tree A
// look like the target tree B, using merge semantics: the result is a
// decorated clone of B carrying only the nodes that must actually change,
// and content it leaves unlisted stays untouched on the receiving side.
// Strictly more precise than [Sync], at the cost of recursive bookkeeping.
//
// Both inputs are cloned at entry and never mutated. SyncMerge does not
// fail: any pair of trees yields a patch.
func SyncMerge(a, b *tree.Node) *tree.Node {
	copy := b.Clone()
	var toDel tree.NodeSet
	mergeWalk(a.Clone(), copy, &toDel)
	// everything recorded in toDel is already in sync and must not be
	// transmitted
	for _, e := range toDel {
		e.Parent.DeleteChild(e)
	}
	return copy
}

// SyncMergeSets is SyncMerge over two flat forests of configuration roots.
func SyncMergeSets(a, b tree.NodeSet) tree.NodeSet {
	aDummy := tree.WrapForest(a)
	bDummy := tree.WrapForest(b)
	defer aDummy.Unwrap()
	defer bDummy.Unwrap()
	res := SyncMerge(aDummy, bDummy)
	return res.Unwrap()
}

// mergeWalk decorates b, the working clone of the target tree, with what a
// merge needs to transmute a into b, and returns the number of differences
// found in the pair's subtrees. Zero-diff content is collected into toDel
// for stripping rather than removed inline, so the walk never invalidates
// its own iteration.
func mergeWalk(a, b *tree.Node, toDel *tree.NodeSet) int {
	diffs := 0
	aKeys := a.Keys()
	for _, bChild := range b.Children {
		if aKeys != nil && bChild.IsLeaf() && bChild.IsKey() {
			// inside list entries keys encode identity, not content
			continue
		}

		aChild := a.Children.TakeMatch(bChild)
		if aChild == nil {
			// new content, sent as an implicit merge addition
			diffs++
			continue
		}

		// found, and consumed from a's pool
		switch {
		case !aChild.IsLeaf() && aChild.Meta != nil:
			d := mergeWalk(aChild, bChild, toDel)
			diffs += d
			if d == 0 {
				// both subtrees identical, omit from transmission
				toDel.Append(bChild)
			}
		case aChild.IsLeaf():
			if aChild.Equals(bChild) {
				toDel.Append(bChild)
			} else {
				diffs++
			}
		}
		// a matched opaque child compared content-equal; it stays in b
		// untouched since without schema metadata it cannot be pruned
		// any further
	}

	// whatever remains unmatched in a exists only on the device side and
	// must be deleted: leaves move over as-is, structural children as
	// addressable tombstones
	for _, x := range a.Children {
		if x.IsLeaf() {
			if x.IsKey() {
				continue
			}
			diffs++
			b.AddChild(x)
			x.MarkDelete()
		} else if x.Meta != nil {
			diffs++
			n := x.CloneShallow()
			b.AddChild(n)
			n.MarkDelete()
		}
	}
	if debug.Merge() {
		debug.Logf("merge: %s/%s: %d diffs\n", b.Namespace, b.Name, diffs)
	}
	return diffs
}
