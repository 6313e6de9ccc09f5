package compute

import (
	"context"
	"sort"

	"github.com/rendis/uiwire/pkg/datamodel"
	"github.com/rendis/uiwire/pkg/protocol"
)

// Evaluator routes computed values to the engine their lang selects and
// resolves whole dynamic values (literal, binding, or computed) against
// a scope. Safe for concurrent use.
type Evaluator struct {
	engines map[string]Engine
}

// NewEvaluator creates an Evaluator with all built-in engines
// registered: cel (default), jq, and expr.
func NewEvaluator() (*Evaluator, error) {
	celEngine, err := NewCELEngine()
	if err != nil {
		return nil, err
	}

	engines := map[string]Engine{}
	for _, eng := range []Engine{celEngine, NewGoJQEngine(), NewExprEngine()} {
		engines[eng.Name()] = eng
	}
	return &Evaluator{engines: engines}, nil
}

// Engines returns the registered engine names, sorted.
func (e *Evaluator) Engines() []string {
	names := make([]string, 0, len(e.engines))
	for name := range e.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Engine returns the engine registered under lang. Empty lang selects
// DefaultLang; an unregistered lang is a NOT_FOUND error.
func (e *Evaluator) Engine(lang string) (Engine, error) {
	if lang == "" {
		lang = DefaultLang
	}
	eng, ok := e.engines[lang]
	if !ok {
		return nil, protocol.NewErrorf(protocol.ErrCodeNotFound,
			"unknown expression language %q", lang).
			WithDetails(map[string]any{"lang": lang, "available": e.Engines()})
	}
	return eng, nil
}

// Evaluate runs a computed-value expression in the given scope.
func (e *Evaluator) Evaluate(ctx context.Context, expr protocol.Expr, scope Scope) (any, error) {
	eng, err := e.Engine(expr.Lang)
	if err != nil {
		return nil, err
	}
	return eng.Evaluate(ctx, expr.Source, scope.activation())
}

// ResolveValue resolves one dynamic value against the scope: literals
// pass through unchanged, bindings look up the scope's data model (a
// path with no value resolves to nil, matching renderer behavior), and
// computed values are evaluated. Malformed bindings and computed values
// (non-string path or expr) are VALIDATION_ERRORs.
func (e *Evaluator) ResolveValue(ctx context.Context, v any, scope Scope) (any, error) {
	switch {
	case protocol.IsBinding(v):
		path, ok := protocol.PathOf(v)
		if !ok {
			return nil, protocol.NewError(protocol.ErrCodeValidation,
				"binding path must be a string")
		}
		out, _ := datamodel.Resolve(scope.Data, path)
		return out, nil

	case protocol.IsComputed(v):
		expr, ok := protocol.ExprOf(v)
		if !ok {
			return nil, protocol.NewError(protocol.ErrCodeValidation,
				"computed value expr must be a string")
		}
		return e.Evaluate(ctx, expr, scope)

	default:
		return v, nil
	}
}
