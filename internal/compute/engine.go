// Package compute evaluates computed dynamic values: the {"expr", "lang"}
// objects a 0.2 agent embeds where a literal or binding would sit. It
// backs preview tooling (CLI eval, MCP); the core validator never calls
// into it, so engine failures stay engine errors and never become
// validation issues.
package compute

import "context"

// DefaultLang is the engine used when a computed value omits lang.
const DefaultLang = "cel"

// Engine evaluates expressions of one language against a scope map.
// Implementations cache compiled programs and are safe for concurrent
// use.
type Engine interface {
	Name() string
	Evaluate(ctx context.Context, expression string, data map[string]any) (any, error)
}

// Scope is the evaluation input: the surface's data model under "data"
// and surface metadata (id, revision) under "surface".
type Scope struct {
	Data    map[string]any
	Surface map[string]any
}

// activation builds the scope map handed to engines. Missing parts
// default to empty maps so expressions never hit nil lookups.
func (s Scope) activation() map[string]any {
	data := s.Data
	if data == nil {
		data = map[string]any{}
	}
	surface := s.Surface
	if surface == nil {
		surface = map[string]any{}
	}
	return map[string]any{"data": data, "surface": surface}
}

// activationWithDefaults fills the scope variables every engine
// expects; missing keys become empty maps to prevent runtime nil-ref
// errors when an Engine is called directly, outside Evaluator.
func activationWithDefaults(data map[string]any) map[string]any {
	activation := make(map[string]any, 2)
	for _, key := range []string{"data", "surface"} {
		if v, ok := data[key]; ok && v != nil {
			activation[key] = v
		} else {
			activation[key] = map[string]any{}
		}
	}
	return activation
}
