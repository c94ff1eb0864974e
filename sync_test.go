package confsync

import (
	"errors"
	"testing"

	"github.com/confsync/confsync/tree"
)

func TestSyncInSync(t *testing.T) {
	res, err := SyncSets(conf(t, twoIfaces), conf(t, twoIfaces))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 0 {
		t.Fatalf("in-sync forests produced an edit: %v", res)
	}
}

func TestSyncCreateAndDelete(t *testing.T) {
	a := conf(t, twoIfaces)
	b := conf(t, `
interfaces:
  interface:
    - name: eth0
      mtu: 1500
      enabled: "true"
    - name: eth2
      mtu: 9000
`)
	res, err := SyncSets(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res.First().Name != "interfaces" {
		t.Fatalf("edit forest: %v", res)
	}
	root := res.First()

	del, err := root.GetFirst("interface[name=eth1]")
	if err != nil {
		t.Fatal(err)
	}
	if del.Op != tree.OpDelete {
		t.Errorf("eth1 op: got %s, want delete", del.Op)
	}
	// tombstones address, they do not carry content
	if len(del.Children) != 1 || del.Child("name") == nil {
		t.Errorf("eth1 tombstone carries content: %v", del.Children)
	}

	crt, err := root.GetFirst("interface[name=eth2]")
	if err != nil {
		t.Fatal(err)
	}
	if crt.Op != tree.OpCreate {
		t.Errorf("eth2 op: got %s, want create", crt.Op)
	}
	if crt.Child("mtu").ValueString() != "9000" {
		t.Error("created entry must carry full content")
	}

	if n, _ := root.Get("interface[name=eth0]"); len(n) != 0 {
		t.Error("unchanged eth0 leaked into the edit")
	}
}

func TestSyncReplaceWholeEntry(t *testing.T) {
	a := conf(t, twoIfaces)
	b := conf(t, `
interfaces:
  interface:
    - name: eth0
      mtu: 9000
      enabled: "true"
    - name: eth1
      mtu: 1500
`)
	res, err := SyncSets(a, b)
	if err != nil {
		t.Fatal(err)
	}
	rep, err := res.First().GetFirst("interface[name=eth0]")
	if err != nil {
		t.Fatal(err)
	}
	if rep.Op != tree.OpReplace {
		t.Errorf("got %s, want replace", rep.Op)
	}
	// replace semantics reinstall the whole target entry
	if rep.Child("mtu").ValueString() != "9000" || rep.Child("enabled") == nil {
		t.Errorf("replace entry content: %v", rep.Children)
	}
}

// The synthesized spine must be untagged: only entries carry operations.
func TestSyncSpineUntagged(t *testing.T) {
	a := conf(t, twoIfaces)
	b := conf(t, `
interfaces:
  interface:
    - name: eth0
      mtu: 9000
      enabled: "true"
    - name: eth1
      mtu: 1500
`)
	res, err := SyncSets(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if res.First().Op != tree.OpNone {
		t.Errorf("spine tagged %s", res.First().Op)
	}
}

func TestSyncUnrelatedRoots(t *testing.T) {
	a := conf(t, "interfaces:\n  interface:\n    - name: eth0\n")
	b := conf(t, "system:\n  hostname: box1\n")
	if _, err := Sync(a.First(), b.First()); !errors.Is(err, ErrStructuralMismatch) {
		t.Fatalf("got %v, want ErrStructuralMismatch", err)
	}
	// forest form has a common synthetic starting point and folds fine
	res, err := SyncSets(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 2 {
		t.Fatalf("edit forest: %v", res)
	}
}

// Applying sync semantics twice must be stable: the edit of b against b is
// empty.
func TestSyncIdempotent(t *testing.T) {
	b := conf(t, twoIfaces)
	res, err := SyncSets(b, conf(t, twoIfaces))
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 0 {
		t.Fatalf("self sync produced %v", res)
	}
}
