package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/rendis/uiwire/pkg/protocol"
)

var primaryColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateMessage checks one server→client message against the given
// options. The input may be raw decoded JSON (the untrusted case) or a
// typed protocol.Message / builder value, which is viewed through its
// wire encoding first.
//
// The envelope must be a JSON object carrying exactly one recognized
// payload key bound to an object; anything else yields a single
// INVALID_MESSAGE_TYPE error at the message root and no further checks.
// Past the envelope, checks accumulate: structural failures skip only
// the sub-checks they block, never the whole pass. The function never
// panics for any JSON-shaped input.
func ValidateMessage(msg any, opts Options) *protocol.Result {
	opts = opts.normalized()
	result := &protocol.Result{}

	obj, isObject := toWireValue(msg).(map[string]any)
	if !isObject {
		result.AddError("", protocol.CodeInvalidMessageType,
			"message is not a JSON object")
		return result
	}

	kind, payload, found := splitEnvelope(obj)
	switch {
	case found == 0:
		result.AddError("", protocol.CodeInvalidMessageType,
			"message has no recognized payload key (createSurface, updateComponents, updateDataModel, deleteSurface)")
		return result
	case found > 1:
		result.AddError("", protocol.CodeInvalidMessageType,
			fmt.Sprintf("message carries %d payload keys; exactly one is allowed", found))
		return result
	case payload == nil:
		result.AddError("", protocol.CodeInvalidMessageType,
			fmt.Sprintf("%s payload is not a JSON object", kind))
		return result
	}

	checkSurfaceID(payload, string(kind), result)

	switch kind {
	case protocol.MessageCreateSurface:
		validateCreateSurface(payload, opts, result)
	case protocol.MessageUpdateComponents:
		validateUpdateComponents(payload, opts, result)
	case protocol.MessageUpdateDataModel:
		validateUpdateDataModel(payload, opts, result)
	case protocol.MessageDeleteSurface:
		// surfaceId is the only requirement.
	}

	return result
}

// splitEnvelope scans the object for the recognized payload keys and
// returns the matched kind, its payload (nil when bound to a
// non-object), and how many recognized keys were present.
func splitEnvelope(obj map[string]any) (protocol.MessageKind, map[string]any, int) {
	var kind protocol.MessageKind
	var payload map[string]any
	found := 0

	for _, k := range protocol.MessageKinds {
		v, present := obj[string(k)]
		if !present {
			continue
		}
		found++
		kind = k
		payload, _ = v.(map[string]any)
	}
	return kind, payload, found
}

// checkSurfaceID emits MISSING_SURFACE_ID when surfaceId is absent,
// empty, or not a string. Every message kind requires it.
func checkSurfaceID(payload map[string]any, root string, result *protocol.Result) {
	if id, _ := payload["surfaceId"].(string); id == "" {
		result.AddError(root+".surfaceId", protocol.CodeMissingSurfaceID,
			"surfaceId is missing or empty")
	}
}

func validateCreateSurface(payload map[string]any, opts Options, result *protocol.Result) {
	if id, _ := payload["catalogId"].(string); id == "" {
		result.AddError("createSurface.catalogId", protocol.CodeMissingCatalogID,
			"catalogId is missing or empty")
	}

	theme, _ := payload["theme"].(map[string]any)
	color, present := theme["primaryColor"]
	if !present {
		return
	}

	// Bound and computed colors resolve at render time; only literal
	// values are checked here.
	if protocol.IsBinding(color) {
		return
	}
	if opts.Version == protocol.Version02 && protocol.IsComputed(color) {
		return
	}

	s, isString := color.(string)
	switch {
	case !isString:
		result.AddWarning("createSurface.theme.primaryColor", protocol.CodeInvalidPrimaryColor,
			"primaryColor is not a string")
	case !primaryColorPattern.MatchString(s):
		result.AddWarning("createSurface.theme.primaryColor", protocol.CodeInvalidPrimaryColor,
			fmt.Sprintf("primaryColor %q is not a #RRGGBB hex color", s))
	}
}

func validateUpdateComponents(payload map[string]any, opts Options, result *protocol.Result) {
	items, isArray := payload["components"].([]any)
	if !isArray {
		result.AddError("updateComponents.components", protocol.CodeInvalidComponents,
			"components is missing or not an array")
		return
	}

	inner := ValidateComponents(items, opts)
	inner.Prefix("updateComponents")
	result.Merge(inner)
}

func validateUpdateDataModel(payload map[string]any, opts Options, result *protocol.Result) {
	// Revision 0.1 has no op field: value presence implies replace and
	// no op/value checks apply.
	if opts.Version == protocol.Version01 {
		return
	}

	op, opPresent := payload["op"]
	if !opPresent {
		return
	}
	_, valuePresent := payload["value"]

	opName, _ := op.(string)
	switch opName {
	case protocol.OpAdd:
		if !valuePresent {
			result.AddError("updateDataModel.value", protocol.CodeMissingValue,
				`op "add" requires a value`)
		}
	case protocol.OpReplace:
		// Value optional: absent value replaces with null.
	case protocol.OpRemove:
		if valuePresent {
			result.AddWarning("updateDataModel.value", protocol.CodeUnnecessaryValue,
				`op "remove" ignores value`)
		}
	default:
		result.AddError("updateDataModel.op", protocol.CodeInvalidOp,
			`op must be one of "add", "replace", "remove"`)
	}
}

// toWireValue returns msg as plain decoded JSON. Raw decoded values
// pass through untouched; typed inputs (protocol.Message, builder
// output, test structs) are round-tripped through encoding/json so the
// validator sees exactly the wire shape, with numbers as json.Number.
func toWireValue(msg any) any {
	switch msg.(type) {
	case nil, map[string]any, []any, string, bool, float64, json.Number:
		return msg
	}

	b, err := json.Marshal(msg)
	if err != nil {
		// Not JSON-encodable; the envelope check rejects it.
		return msg
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return msg
	}
	return v
}
