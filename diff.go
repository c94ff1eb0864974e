// Package confsync computes structural differences between two hierarchical
// configuration trees and synthesizes edit scripts that turn one into the
// other. The two headline entry points are:
//
//   - [CheckSync] - checks whether two configurations are already equal or a
//     sync is needed, the typical question when one configuration lives on a
//     device and the other in a database.
//
//   - [Sync] and [SyncMerge] - calculate the difference between two
//     configuration subtrees and build a result tree of tagged operations
//     needed to turn the source tree into the target tree. Sync replaces
//     whole list entries; SyncMerge narrows the patch to the leaves that
//     actually changed.
//
// The engine is purely computational: no I/O, no retries, single caller at a
// time per tree. Inputs are never mutated.
package confsync

import (
	"github.com/confsync/confsync/debug"
	"github.com/confsync/confsync/tree"
)

// Diff holds the four classification buckets produced by GetDiff. Entries
// unique to one side land in UniqueA/UniqueB; list entries with matching
// keys but differing content land pairwise in ChangedA/ChangedB.
type Diff struct {
	UniqueA  tree.NodeSet
	UniqueB  tree.NodeSet
	ChangedA tree.NodeSet
	ChangedB tree.NodeSet
}

// Empty reports whether the two trees were found identical.
func (d *Diff) Empty() bool {
	return len(d.UniqueA) == 0 && len(d.UniqueB) == 0 &&
		len(d.ChangedA) == 0 && len(d.ChangedB) == 0
}

// GetDiff produces the diff between two trees. Nodes that differ under
// tri-state comparison are classified into the four buckets of the result;
// identical trees yield empty buckets. Attributes are not inspected, only
// structure and leaf values. Both subtrees must share a common starting
// point; inputs must be acyclic and must not be mutated concurrently for the
// duration of the call. The bucketed nodes are the callers' own nodes, not
// copies.
func GetDiff(a, b *tree.Node) *Diff {
	d := &Diff{}
	getDiff(a, b, d)
	return d
}

// GetDiffSets is GetDiff over two flat forests of configuration roots,
// wrapped in throwaway synthetic roots for the duration of the call. The
// buckets hold the forests' own nodes.
func GetDiffSets(a, b tree.NodeSet) *Diff {
	aDummy := tree.WrapForest(a)
	bDummy := tree.WrapForest(b)
	defer aDummy.Unwrap()
	defer bDummy.Unwrap()
	return GetDiff(aDummy, bDummy)
}

func getDiff(a, b *tree.Node, d *Diff) {
	if a.Compare(b) < 0 {
		// unrelated roots, nothing below them is comparable
		if debug.Diff() {
			debug.Logf("diff: unrelated %s vs %s\n", a.Name, b.Name)
		}
		d.UniqueA.Append(a)
		d.UniqueB.Append(b)
		return
	}
	if len(a.Children) == 0 || len(b.Children) == 0 {
		if len(b.Children) != 0 {
			d.UniqueB.Append(b.Children...)
		} else if len(a.Children) != 0 {
			d.UniqueA.Append(a.Children...)
		}
		return
	}

	bList := b.Children.Shallow()
	for _, aChild := range a.Children {
		var bChild *tree.Node
		res := -1
		j := 0
		for ; j < len(bList); j++ {
			bChild = bList[j]
			res = aChild.Compare(bChild)
			if res >= 0 {
				break
			}
		}
		if res < 0 {
			d.UniqueA.Append(aChild)
			continue
		}
		// the child at position j is consumed by this match
		bList.RemoveAt(j)
		if res == 1 {
			// same identity and keys, different content: record the
			// pair at entry level, finer granularity is SyncMerge's
			// business
			d.ChangedA.Append(aChild)
			d.ChangedB.Append(bChild)
		} else if !aChild.IsLeaf() && aChild.Meta != nil {
			// equal at this level, their children might not be
			getDiff(aChild, bChild, d)
		}
	}
	// whatever b children were never consumed are unique to b
	d.UniqueB.Append(bList...)
}
