// Package export flattens a tagged edit tree into an RFC 6902 JSON Patch,
// for callers whose device-facing side speaks JSON documents instead of a
// management protocol. Keyed list entries address as path segments holding
// the comma-joined key values.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/confsync/confsync/tree"
)

type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// JSONPatch converts an edit tree, as produced by Sync or SyncMerge, into a
// decoded RFC 6902 patch. Untagged leaves translate to "replace": the merge
// synthesizer leaves changed leaves untagged, relying on merge semantics,
// which a JSON patch has to spell out.
func JSONPatch(edit *tree.Node) (jsonpatch.Patch, error) {
	ops, err := flatten(edit, "")
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("error marshaling patch ops: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding generated patch: %w", err)
	}
	return patch, nil
}

// JSONPatchSet converts a forest of edit trees, wrapping and unwrapping the
// dummy root the forest operations use.
func JSONPatchSet(edits tree.NodeSet) (jsonpatch.Patch, error) {
	var ops []patchOp
	for _, e := range edits {
		sub, err := flatten(e, "")
		if err != nil {
			return nil, err
		}
		ops = append(ops, sub...)
	}
	data, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("error marshaling patch ops: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding generated patch: %w", err)
	}
	return patch, nil
}

func flatten(n *tree.Node, base string) ([]patchOp, error) {
	p := base + "/" + escape(n.Name)
	if keys := keyValues(n); keys != "" {
		p += "/" + escape(keys)
	}
	switch n.Op {
	case tree.OpDelete:
		return []patchOp{{Op: "remove", Path: p}}, nil
	case tree.OpCreate:
		return []patchOp{{Op: "add", Path: p, Value: jsonValue(n)}}, nil
	case tree.OpReplace, tree.OpMerge:
		return []patchOp{{Op: "replace", Path: p, Value: jsonValue(n)}}, nil
	}
	if n.IsLeaf() {
		// untagged leaf under an untagged spine: a merge-style change
		return []patchOp{{Op: "replace", Path: p, Value: *n.Value}}, nil
	}
	var ops []patchOp
	for _, c := range n.Children {
		if c.IsKey() {
			continue
		}
		sub, err := flatten(c, p)
		if err != nil {
			return nil, err
		}
		ops = append(ops, sub...)
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("edit tree node %s carries no operations", p)
	}
	return ops, nil
}

// jsonValue renders a subtree as the JSON value an add or replace carries.
// Repeated children sharing a tag become an array.
func jsonValue(n *tree.Node) any {
	if n.IsLeaf() {
		return *n.Value
	}
	obj := map[string]any{}
	for _, c := range n.Children {
		v := jsonValue(c)
		switch prev := obj[c.Name].(type) {
		case nil:
			obj[c.Name] = v
		case []any:
			obj[c.Name] = append(prev, v)
		default:
			obj[c.Name] = []any{prev, v}
		}
	}
	return obj
}

func keyValues(n *tree.Node) string {
	keys := n.Keys()
	if len(keys) == 0 {
		return ""
	}
	vals := make([]string, 0, len(keys))
	for _, k := range keys {
		c := n.Child(k)
		if c == nil {
			return ""
		}
		vals = append(vals, c.ValueString())
	}
	return strings.Join(vals, ",")
}

// escape applies RFC 6901 token escaping.
func escape(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
