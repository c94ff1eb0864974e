// Package encode renders configuration trees, and the tagged edit trees the
// engine synthesizes, as indented text for humans and tests. Operation tags
// appear as !create/!delete/!replace/!merge markers. This is a display
// renderer; putting an edit tree on a management protocol is the wire
// serializer's job, outside this module.
package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/confsync/confsync/tree"
)

type EncState struct {
	depth, indent int

	Color func(ColorAttr, string) string
}

type EncodeOption func(*EncState)

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeDepth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func Encode(node *tree.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

// EncodeSet renders a forest of roots in sequence.
func EncodeSet(set tree.NodeSet, w io.Writer, opts ...EncodeOption) error {
	for _, n := range set {
		if err := Encode(n, w, opts...); err != nil {
			return err
		}
	}
	return nil
}

// MustString renders a tree to a string, panicking on writer failure, which
// a bytes.Buffer cannot produce.
func MustString(node *tree.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func encode(n *tree.Node, w io.Writer, es *EncState) error {
	pad := strings.Repeat(" ", es.depth*es.indent)
	name := n.Name
	mark := ""
	if n.Op != tree.OpNone {
		mark = " !" + n.Op.String()
	}
	if es.Color != nil {
		name = es.Color(FieldColor, name)
		if mark != "" {
			mark = " " + es.Color(opAttr(n.Op), strings.TrimPrefix(mark, " "))
		}
	}
	if n.IsLeaf() {
		val := *n.Value
		if es.Color != nil {
			val = es.Color(ValueColor, val)
		}
		if err := writeString(w, fmt.Sprintf("%s%s:%s %s\n", pad, name, mark, val)); err != nil {
			return err
		}
		return nil
	}
	if err := writeString(w, fmt.Sprintf("%s%s:%s\n", pad, name, mark)); err != nil {
		return err
	}
	es.depth++
	for _, c := range n.Children {
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
