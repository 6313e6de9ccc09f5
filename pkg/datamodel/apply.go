package datamodel

import (
	"strconv"

	"github.com/rendis/uiwire/pkg/protocol"
)

// Apply executes one data-model edit and returns the resulting model.
// The input model is never mutated: containers along the touched spine
// are copied, untouched branches are shared.
//
// Semantics follow updateDataModel:
//   - op "" or "replace": set the node at path, creating intermediate
//     objects as needed.
//   - op "add": same on objects; on arrays, insert at the index ("-"
//     appends, len(array) is valid).
//   - op "remove": delete the node; a missing path is a no-op.
//
// The root path replaces (or clears) the whole model; the value for a
// root add/replace must be an object.
func Apply(model map[string]any, op, path string, value any) (map[string]any, error) {
	switch op {
	case "", protocol.OpAdd, protocol.OpReplace, protocol.OpRemove:
	default:
		return nil, protocol.NewErrorf(protocol.ErrCodeValidation, "unknown data-model op %q", op)
	}

	segs := Split(path)
	if len(segs) == 0 {
		if op == protocol.OpRemove {
			return map[string]any{}, nil
		}
		root, ok := value.(map[string]any)
		if !ok {
			return nil, protocol.NewError(protocol.ErrCodeValidation, "root value must be an object")
		}
		return copyMap(root), nil
	}

	if model == nil {
		model = map[string]any{}
	}
	out, changed, err := applyNode(model, segs, op, value)
	if err != nil {
		return nil, err
	}
	if !changed {
		return model, nil
	}
	return out.(map[string]any), nil
}

// applyNode edits node at the path described by segs, returning the
// replacement node and whether anything changed.
func applyNode(node any, segs []string, op string, value any) (any, bool, error) {
	seg, rest := segs[0], segs[1:]

	switch parent := node.(type) {
	case map[string]any:
		if len(rest) == 0 {
			return applyMapLeaf(parent, seg, op, value)
		}
		child, ok := parent[seg]
		if !ok {
			if op == protocol.OpRemove {
				return node, false, nil
			}
			// add/replace create missing intermediate objects.
			child = map[string]any{}
		}
		newChild, changed, err := applyNode(child, rest, op, value)
		if err != nil || !changed {
			return node, changed, err
		}
		m := copyMap(parent)
		m[seg] = newChild
		return m, true, nil

	case []any:
		if len(rest) == 0 {
			return applySliceLeaf(parent, seg, op, value)
		}
		i, ok := arrayIndex(seg, len(parent))
		if !ok {
			if op == protocol.OpRemove {
				return node, false, nil
			}
			return nil, false, pathError(seg)
		}
		newChild, changed, err := applyNode(parent[i], rest, op, value)
		if err != nil || !changed {
			return node, changed, err
		}
		s := copySlice(parent)
		s[i] = newChild
		return s, true, nil

	default:
		// The path descends into a scalar.
		if op == protocol.OpRemove {
			return node, false, nil
		}
		return nil, false, pathError(seg)
	}
}

func applyMapLeaf(parent map[string]any, key, op string, value any) (any, bool, error) {
	if op == protocol.OpRemove {
		if _, ok := parent[key]; !ok {
			return parent, false, nil
		}
		m := copyMap(parent)
		delete(m, key)
		return m, true, nil
	}

	m := copyMap(parent)
	m[key] = value
	return m, true, nil
}

func applySliceLeaf(parent []any, seg, op string, value any) (any, bool, error) {
	if op == protocol.OpAdd {
		i := len(parent)
		if seg != "-" {
			n, err := strconv.Atoi(seg)
			if err != nil || n < 0 || n > len(parent) {
				return nil, false, pathError(seg)
			}
			i = n
		}
		s := make([]any, 0, len(parent)+1)
		s = append(s, parent[:i]...)
		s = append(s, value)
		s = append(s, parent[i:]...)
		return s, true, nil
	}

	i, ok := arrayIndex(seg, len(parent))
	if !ok {
		if op == protocol.OpRemove {
			return parent, false, nil
		}
		return nil, false, pathError(seg)
	}

	if op == protocol.OpRemove {
		s := make([]any, 0, len(parent)-1)
		s = append(s, parent[:i]...)
		s = append(s, parent[i+1:]...)
		return s, true, nil
	}

	s := copySlice(parent)
	s[i] = value
	return s, true, nil
}

func pathError(seg string) error {
	return protocol.NewErrorf(protocol.ErrCodeNotFound, "path segment %q is unreachable", seg)
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copySlice(s []any) []any {
	out := make([]any, len(s))
	copy(out, s)
	return out
}
