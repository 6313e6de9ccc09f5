// Package datamodel resolves and edits surface data models: the JSON
// documents that bindings ({"path": ...}) read from. Every function is
// pure; models passed in are never mutated.
package datamodel

import (
	"fmt"
	"sort"
	"strconv"
)

// Resolve walks model along path and returns the addressed node.
// Numeric segments index arrays. ok is false when any segment is
// missing or traverses a non-container.
func Resolve(model map[string]any, path string) (any, bool) {
	var cur any = model
	for _, seg := range Split(path) {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, ok := arrayIndex(seg, len(node))
			if !ok {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Flatten maps every leaf of model to its slash path. Empty containers
// count as leaves so they stay visible; an empty model flattens to
// nothing.
func Flatten(model map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", model)
	return out
}

// Paths returns every leaf path of model in sorted order.
func Paths(model map[string]any) []string {
	flat := Flatten(model)
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func flattenInto(out map[string]any, prefix string, node any) {
	switch n := node.(type) {
	case map[string]any:
		if len(n) == 0 && prefix != "" {
			out[prefix] = n
			return
		}
		for k, v := range n {
			flattenInto(out, prefix+"/"+k, v)
		}
	case []any:
		if len(n) == 0 && prefix != "" {
			out[prefix] = n
			return
		}
		for i, v := range n {
			flattenInto(out, fmt.Sprintf("%s/%d", prefix, i), v)
		}
	default:
		if prefix != "" {
			out[prefix] = node
		}
	}
}

// arrayIndex parses seg as an index into a length-n array.
func arrayIndex(seg string, n int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
