package tree

import "testing"

func TestOpTagRoundTrip(t *testing.T) {
	for _, op := range []OpTag{OpNone, OpCreate, OpDelete, OpReplace, OpMerge} {
		got, err := ParseOpTag(op.String())
		if err != nil {
			t.Fatalf("%s: %v", op, err)
		}
		if got != op {
			t.Errorf("round trip %s: got %s", op, got)
		}
	}
	if _, err := ParseOpTag("remove"); err == nil {
		t.Error("unknown tag accepted")
	}
}
