package confsync

import (
	"testing"

	"github.com/confsync/confsync/parse"
	"github.com/confsync/confsync/schema"
	"github.com/confsync/confsync/tree"
)

const (
	testNS     = "urn:test:interfaces"
	testSchema = `
namespace: urn:test:interfaces
elements:
  - name: interfaces
    order: [interface]
  - name: interface
    order: [name, mtu, enabled, description, ethernet]
    keys: [name]
  - name: ethernet
    order: [duplex, speed]
`
)

// conf decodes a YAML fixture into a forest with the test schema attached.
func conf(t *testing.T, doc string) tree.NodeSet {
	t.Helper()
	mod, err := schema.LoadYAML([]byte(testSchema))
	if err != nil {
		t.Fatal(err)
	}
	reg := schema.NewRegistry()
	if err := reg.Register(mod); err != nil {
		t.Fatal(err)
	}
	forest, err := parse.ParseForest([]byte(doc),
		parse.ParseRegistry(reg), parse.ParseNamespace(testNS))
	if err != nil {
		t.Fatal(err)
	}
	return forest
}

func entryName(n *tree.Node) string {
	if c := n.Child("name"); c != nil {
		return c.ValueString()
	}
	return n.Name
}

const twoIfaces = `
interfaces:
  interface:
    - name: eth0
      mtu: 1500
      enabled: "true"
    - name: eth1
      mtu: 1500
`

func TestGetDiffIdentical(t *testing.T) {
	a, b := conf(t, twoIfaces), conf(t, twoIfaces)
	if d := GetDiffSets(a, b); !d.Empty() {
		t.Fatalf("identical trees differ: %+v", d)
	}
	if !CheckSyncSets(a, b) {
		t.Error("identical trees reported out of sync")
	}
}

// Entry order and leaf order inside entries must not matter.
func TestGetDiffOrderIndependent(t *testing.T) {
	a := conf(t, twoIfaces)
	b := conf(t, `
interfaces:
  interface:
    - mtu: 1500
      name: eth1
    - enabled: "true"
      mtu: 1500
      name: eth0
`)
	if d := GetDiffSets(a, b); !d.Empty() {
		t.Fatalf("reordered trees differ: %+v", d)
	}
}

func TestGetDiffUniqueEntries(t *testing.T) {
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
	d := GetDiffSets(a, b)
	if len(d.UniqueA) != 1 || entryName(d.UniqueA.First()) != "eth1" {
		t.Errorf("uniqueA: %v", d.UniqueA)
	}
	if len(d.UniqueB) != 1 || entryName(d.UniqueB.First()) != "eth2" {
		t.Errorf("uniqueB: %v", d.UniqueB)
	}
	if len(d.ChangedA) != 0 || len(d.ChangedB) != 0 {
		t.Errorf("unexpected changed buckets: %v %v", d.ChangedA, d.ChangedB)
	}
	if CheckSyncSets(a, b) {
		t.Error("differing trees reported in sync")
	}
}

// Same key, different content: the pair lands in the changed buckets at
// entry granularity.
func TestGetDiffChangedEntry(t *testing.T) {
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
	d := GetDiffSets(a, b)
	if len(d.UniqueA) != 0 || len(d.UniqueB) != 0 {
		t.Errorf("unexpected unique buckets: %v %v", d.UniqueA, d.UniqueB)
	}
	if len(d.ChangedA) != 1 || len(d.ChangedB) != 1 {
		t.Fatalf("changed: %v %v", d.ChangedA, d.ChangedB)
	}
	if d.ChangedA.First().Name != "interface" || entryName(d.ChangedA.First()) != "eth0" {
		t.Errorf("changedA holds %s[%s]", d.ChangedA.First().Name, entryName(d.ChangedA.First()))
	}
	if d.ChangedB.First().Child("mtu").ValueString() != "9000" {
		t.Error("changedB must hold the target side")
	}
}

// A difference two levels down is attributed to the nearest differing
// container, not to the whole entry.
func TestGetDiffDeepChange(t *testing.T) {
	mk := func(duplex string) string {
		return `
interfaces:
  interface:
    - name: eth0
      mtu: 1500
      ethernet:
        duplex: ` + duplex + `
`
	}
	d := GetDiffSets(conf(t, mk("full")), conf(t, mk("half")))
	if len(d.ChangedA) != 1 || d.ChangedA.First().Name != "ethernet" {
		t.Fatalf("changedA: %v", d.ChangedA)
	}
	if d.ChangedB.First().Child("duplex").ValueString() != "half" {
		t.Error("changedB must hold the target ethernet container")
	}
}

func TestGetDiffLeafOnlyOneSide(t *testing.T) {
	a := conf(t, `
interfaces:
  interface:
    - name: eth0
      mtu: 1500
      description: uplink
`)
	b := conf(t, `
interfaces:
  interface:
    - name: eth0
      mtu: 1500
`)
	d := GetDiffSets(a, b)
	// the entry pair compares 1: granularity stays at the entry
	if len(d.ChangedA) != 1 || entryName(d.ChangedA.First()) != "eth0" {
		t.Fatalf("changedA: %v", d.ChangedA)
	}
}

// Swapping the inputs must swap the buckets.
func TestGetDiffSymmetry(t *testing.T) {
	mkA := func() tree.NodeSet { return conf(t, twoIfaces) }
	mkB := func() tree.NodeSet {
		return conf(t, `
interfaces:
  interface:
    - name: eth0
      mtu: 9000
      enabled: "true"
    - name: eth2
      mtu: 1500
`)
	}
	fwd := GetDiffSets(mkA(), mkB())
	rev := GetDiffSets(mkB(), mkA())
	pairs := []struct {
		name string
		x, y tree.NodeSet
	}{
		{"uniqueA/uniqueB", fwd.UniqueA, rev.UniqueB},
		{"uniqueB/uniqueA", fwd.UniqueB, rev.UniqueA},
		{"changedA/changedB", fwd.ChangedA, rev.ChangedB},
		{"changedB/changedA", fwd.ChangedB, rev.ChangedA},
	}
	for _, p := range pairs {
		if len(p.x) != len(p.y) {
			t.Fatalf("%s: %d vs %d", p.name, len(p.x), len(p.y))
		}
		for i := range p.x {
			if entryName(p.x[i]) != entryName(p.y[i]) {
				t.Errorf("%s[%d]: %s vs %s", p.name, i, entryName(p.x[i]), entryName(p.y[i]))
			}
		}
	}
}

func TestGetDiffUnrelatedRoots(t *testing.T) {
	a := conf(t, "interfaces:\n  interface:\n    - name: eth0\n")
	b := conf(t, "system:\n  hostname: box1\n")
	d := GetDiffSets(a, b)
	if len(d.UniqueA) != 1 || d.UniqueA.First().Name != "interfaces" {
		t.Errorf("uniqueA: %v", d.UniqueA)
	}
	if len(d.UniqueB) != 1 || d.UniqueB.First().Name != "system" {
		t.Errorf("uniqueB: %v", d.UniqueB)
	}
}
