package tree

import "fmt"

// OpTag records the synthesis decision attached to a node of an edit tree.
// Rendering the tag onto a wire protocol is the serializer's concern, not
// this package's.
type OpTag int

const (
	OpNone OpTag = iota
	OpCreate
	OpDelete
	OpReplace
	OpMerge
)

func (t OpTag) String() string {
	switch t {
	case OpNone:
		return "none"
	case OpCreate:
		return "create"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	case OpMerge:
		return "merge"
	}
	return "<unknown op>"
}

func ParseOpTag(s string) (OpTag, error) {
	switch s {
	case "none":
		return OpNone, nil
	case "create":
		return OpCreate, nil
	case "delete":
		return OpDelete, nil
	case "replace":
		return OpReplace, nil
	case "merge":
		return OpMerge, nil
	}
	return OpNone, fmt.Errorf("unrecognized operation %q", s)
}

// MarkOp attaches an operation tag to n.
func (n *Node) MarkOp(t OpTag) { n.Op = t }

func (n *Node) MarkCreate()  { n.MarkOp(OpCreate) }
func (n *Node) MarkDelete()  { n.MarkOp(OpDelete) }
func (n *Node) MarkReplace() { n.MarkOp(OpReplace) }
func (n *Node) MarkMerge()   { n.MarkOp(OpMerge) }
