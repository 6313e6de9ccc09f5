package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rendis/uiwire/internal/compute"
	"github.com/rendis/uiwire/internal/tree"
	"github.com/rendis/uiwire/pkg/protocol"
	"github.com/rendis/uiwire/pkg/validate"
)

// handleValidate lints one message or a batch and returns the
// accumulated Result. Validation findings are payload, not tool
// errors; the tool itself only fails on unusable parameters.
func (s *UIWireServer) handleValidate(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	messages, err := req.RequireString("messages")
	if err != nil {
		return mcp.NewToolResultError("messages is required"), nil
	}
	ver, verErr := versionParam(req)
	if verErr != nil {
		return mcp.NewToolResultError(verErr.Error()), nil
	}

	opts := validate.Options{
		Strict:            req.GetString("strict", "false") == "true",
		AllowedComponents: splitList(req.GetString("allowed_components", "")),
		Version:           ver,
	}
	result := validate.ValidateMessagesJSON([]byte(messages), opts)

	if req.GetString("conformance", "false") != "true" {
		return marshalResult(result)
	}

	return marshalResult(map[string]any{
		"result":      result,
		"conformance": s.runConformance([]byte(messages), ver),
	})
}

// handleCatalog lists component kinds with the required fields of the
// requested protocol revision, or one definition when kind is given.
func (s *UIWireServer) handleCatalog(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ver, verErr := versionParam(req)
	if verErr != nil {
		return mcp.NewToolResultError(verErr.Error()), nil
	}
	ver = ver.Normalize()

	if kind := req.GetString("kind", ""); kind != "" {
		def, ok := s.catalog.Definition(kind)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown component kind %q", kind)), nil
		}
		return marshalResult(map[string]any{
			"version":  ver,
			"kind":     def.Kind,
			"required": requiredOrEmpty(def.RequiredFor(ver)),
		})
	}

	kinds := s.catalog.Kinds()
	components := make([]map[string]any, 0, len(kinds))
	for _, k := range kinds {
		def, ok := s.catalog.Definition(k)
		if !ok {
			continue
		}
		components = append(components, map[string]any{
			"kind":     def.Kind,
			"required": requiredOrEmpty(def.RequiredFor(ver)),
		})
	}

	return marshalResult(map[string]any{
		"version":    ver,
		"components": components,
	})
}

// handleSchema returns an embedded wire schema document verbatim.
func (s *UIWireServer) handleSchema(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	envelope := req.GetString("envelope", "server")
	switch envelope {
	case "client":
		return mcp.NewToolResultJSON(json.RawMessage(validate.ClientSchemaDocument()))
	case "server":
		ver, verErr := versionParam(req)
		if verErr != nil {
			return mcp.NewToolResultError(verErr.Error()), nil
		}
		doc, err := validate.ServerSchemaDocument(ver)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultJSON(json.RawMessage(doc))
	default:
		return mcp.NewToolResultError("envelope must be server or client"), nil
	}
}

// handleTree analyzes a component batch's reference graph and renders
// it in the requested format.
func (s *UIWireServer) handleTree(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	componentsJSON, err := req.RequireString("components")
	if err != nil {
		return mcp.NewToolResultError("components is required"), nil
	}
	format := req.GetString("format", "text")
	if format != "text" && format != "mermaid" {
		return mcp.NewToolResultError("format must be text or mermaid"), nil
	}
	ver, verErr := versionParam(req)
	if verErr != nil {
		return mcp.NewToolResultError(verErr.Error()), nil
	}

	var comps []protocol.Component
	if decErr := json.Unmarshal([]byte(componentsJSON), &comps); decErr != nil {
		return mcp.NewToolResultError(fmt.Sprintf("components is not a JSON array of components: %v", decErr)), nil
	}

	g := tree.Build(comps, ver)
	report := tree.Analyze(g)

	var rendering string
	if format == "mermaid" {
		rendering = tree.RenderMermaid(g)
	} else {
		rendering = tree.RenderText(g)
	}

	return marshalResult(map[string]any{
		"report":    report,
		"rendering": rendering,
	})
}

// handleEval evaluates one expression against an inline data model.
func (s *UIWireServer) handleEval(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression, err := req.RequireString("expr")
	if err != nil {
		return mcp.NewToolResultError("expr is required"), nil
	}
	lang := req.GetString("lang", "")
	data := mcp.ParseStringMap(req, "data", nil)
	surface := mcp.ParseStringMap(req, "surface", nil)

	value, evalErr := s.evaluator.Evaluate(ctx,
		protocol.Expr{Source: expression, Lang: lang},
		compute.Scope{Data: data, Surface: surface})
	if evalErr != nil {
		return mcp.NewToolResultError(evalErr.Error()), nil
	}

	if lang == "" {
		lang = compute.DefaultLang
	}
	return marshalResult(map[string]any{
		"lang":  lang,
		"value": value,
	})
}

// --- Internal helpers ---

// runConformance pushes raw bytes through the schema path for the
// requested revision. Decode failures come back as a schema finding so
// the conformance block always has the same shape.
func (s *UIWireServer) runConformance(data []byte, ver protocol.Version) validate.SchemaResult {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return validate.SchemaResult{
			Errors: []validate.SchemaIssue{{Path: "/", Message: "input is not valid JSON"}},
		}
	}
	sv := s.schemas[ver.Normalize()]
	if msgs, isArray := v.([]any); isArray {
		return sv.ValidateServerMessages(msgs)
	}
	return sv.ValidateServerMessage(v)
}

// versionParam reads the optional version parameter. "" means the
// caller wants the default revision; anything else must name a
// supported one.
func versionParam(req mcp.CallToolRequest) (protocol.Version, error) {
	raw := req.GetString("version", "")
	if raw == "" {
		return "", nil
	}
	v := protocol.Version(raw)
	if !v.Known() {
		return "", fmt.Errorf("unsupported protocol version %q (supported: 0.1, 0.2)", raw)
	}
	return v, nil
}

// splitList parses a comma-separated parameter into its entries.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// requiredOrEmpty keeps field lists as JSON arrays, never null.
func requiredOrEmpty(fields []string) []string {
	if fields == nil {
		return []string{}
	}
	return fields
}

// marshalResult converts a value to a JSON text tool result.
func marshalResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultJSON(json.RawMessage(data))
}
