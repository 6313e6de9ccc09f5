package protocol

// Dynamic values appear anywhere a component field or action context
// entry is populated: a literal scalar, a data-model binding, or (in
// revision 0.2) a computed expression. The classification predicates
// below are the single source of truth for the literal/binding/computed
// decision and are used at every call site that needs it.

// Expr is the payload of a computed dynamic value. Lang selects the
// evaluation engine ("cel", "jq", or "expr"); empty means cel.
type Expr struct {
	Source string
	Lang   string
}

// IsBinding reports whether v is a data-model binding: a non-null JSON
// object (not an array) containing a "path" key. Scalars, arrays, and
// null are never bindings.
func IsBinding(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = m["path"]
	return ok
}

// PathOf returns the binding path of v. ok is false when v is not a
// binding or its path is not a string.
func PathOf(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	p, ok := m["path"]
	if !ok {
		return "", false
	}
	s, ok := p.(string)
	return s, ok
}

// IsComputed reports whether v is a computed value: a non-null object
// carrying an "expr" key and no "path" key. A "path" key always wins,
// so a malformed object carrying both classifies as a binding.
func IsComputed(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if _, binding := m["path"]; binding {
		return false
	}
	_, ok = m["expr"]
	return ok
}

// ExprOf returns the computed-value payload of v. ok is false when v is
// not computed or its expr is not a string. Lang is returned as written
// on the wire; callers resolve "" to the default engine.
func ExprOf(v any) (Expr, bool) {
	m, ok := v.(map[string]any)
	if !ok || !IsComputed(v) {
		return Expr{}, false
	}
	src, ok := m["expr"].(string)
	if !ok {
		return Expr{}, false
	}
	lang, _ := m["lang"].(string)
	return Expr{Source: src, Lang: lang}, true
}

// LiteralOf returns v unless it is a binding or computed value. JSON
// null is a literal, so LiteralOf(nil) is (nil, true).
func LiteralOf(v any) (any, bool) {
	if IsBinding(v) || IsComputed(v) {
		return nil, false
	}
	return v, true
}

// Bind builds a data-model binding for path.
func Bind(path string) map[string]any {
	return map[string]any{"path": path}
}

// Compute builds a computed value evaluating source under lang. An
// empty lang selects the default engine.
func Compute(lang, source string) map[string]any {
	m := map[string]any{"expr": source}
	if lang != "" {
		m["lang"] = lang
	}
	return m
}
