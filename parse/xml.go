package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/confsync/confsync/tree"
)

// parseXML decodes an XML document into a forest of trees, one per
// top-level element. Element namespaces come from xmlns; attributes other
// than namespace declarations land in Attrs and never affect comparison.
func parseXML(data []byte, cfg *parseConfig) (tree.NodeSet, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var roots tree.NodeSet
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return roots, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		root, err := xmlElement(dec, start, cfg)
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}
}

func xmlElement(dec *xml.Decoder, start xml.StartElement, cfg *parseConfig) (*tree.Node, error) {
	ns := start.Name.Space
	if ns == "" {
		ns = cfg.namespace
	}
	n := tree.New(ns, start.Name.Local)
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		if n.Attrs == nil {
			n.Attrs = map[string]string{}
		}
		n.Attrs[a.Name.Local] = a.Value
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("error decoding xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := xmlElement(dec, t, cfg)
			if err != nil {
				return nil, err
			}
			n.AddChild(child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(n.Children) == 0 {
				if v := strings.TrimSpace(text.String()); v != "" {
					n.SetValue(v)
					return n, nil
				}
			}
			n.Meta = cfg.meta(ns, n.Name)
			return n, nil
		}
	}
}
