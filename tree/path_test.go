package tree

import (
	"errors"
	"testing"
)

func testBox() *Node {
	return entry("box", boxMeta,
		iface("eth0", "1500"),
		iface("eth1", "9000"),
	)
}

func TestParsePathErrors(t *testing.T) {
	for _, p := range []string{
		"",
		"interface[name=eth0",
		"interface[=eth0]",
		"interface[name]",
		"interface[name=eth0]x",
		"a//b",
	} {
		if _, err := ParsePath(p); !errors.Is(err, ErrBadPath) {
			t.Errorf("%q: got %v, want ErrBadPath", p, err)
		}
	}
}

func TestGet(t *testing.T) {
	box := testBox()
	all, err := box.Get("interface")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d interfaces, want 2", len(all))
	}
	one, err := box.Get("interface[name=eth1]/mtu")
	if err != nil {
		t.Fatal(err)
	}
	if len(one) != 1 || one.First().ValueString() != "9000" {
		t.Fatalf("predicate select: got %v", one)
	}
	none, err := box.Get("interface[name=eth7]")
	if err != nil {
		t.Fatal(err)
	}
	if len(none) != 0 {
		t.Error("unmatched path must yield an empty set")
	}
}

func TestGetFirstMissing(t *testing.T) {
	_, err := testBox().GetFirst("interface[name=eth7]/mtu")
	if !errors.Is(err, ErrElementMissing) {
		t.Fatalf("got %v, want ErrElementMissing", err)
	}
}

func TestMarkPath(t *testing.T) {
	box := testBox()
	if err := box.MarkPath("interface[name=eth0]", OpDelete); err != nil {
		t.Fatal(err)
	}
	got, err := box.GetFirst("interface[name=eth0]")
	if err != nil {
		t.Fatal(err)
	}
	if got.Op != OpDelete {
		t.Errorf("got op %s, want delete", got.Op)
	}
}

func TestPathString(t *testing.T) {
	const src = "interfaces/interface[name=eth0]/mtu"
	p, err := ParsePath(src)
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != src {
		t.Errorf("round trip: got %q", p.String())
	}
}
