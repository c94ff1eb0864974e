package confsync

import "github.com/confsync/confsync/tree"

// CheckSync reports whether two configuration trees are equal, or a sync is
// needed.
func CheckSync(a, b *tree.Node) bool {
	return GetDiff(a, b).Empty()
}

// CheckSyncSets compares two flat forests of configuration roots by wrapping
// each in a throwaway synthetic root first.
func CheckSyncSets(a, b tree.NodeSet) bool {
	aDummy := tree.WrapForest(a)
	bDummy := tree.WrapForest(b)
	defer aDummy.Unwrap()
	defer bDummy.Unwrap()
	return CheckSync(aDummy, bDummy)
}
