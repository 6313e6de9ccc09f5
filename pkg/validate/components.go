package validate

import (
	"fmt"

	"github.com/rendis/uiwire/pkg/protocol"
)

// ValidateComponents checks a flat component list in a single linear
// pass: identity presence and uniqueness, kind presence, and the
// required fields the catalog declares for each known kind. The pass
// never short-circuits; every component and every field check runs
// regardless of earlier findings, so one call surfaces the complete
// error set.
//
// Entries are handled permissively: items is raw decoded JSON, and a
// component is read through map lookups, never deserialized against a
// fixed shape. Unknown extra keys are always tolerated.
//
// Issue paths are rooted at "components" (components[i].id,
// components[i].<field>); message-level callers prefix their own root.
func ValidateComponents(items []any, opts Options) *protocol.Result {
	opts = opts.normalized()
	result := &protocol.Result{}

	seen := make(map[string]bool, len(items))
	rootFound := false

	for i, item := range items {
		path := fmt.Sprintf("components[%d]", i)

		comp, isObject := item.(map[string]any)
		if !isObject {
			// A non-object entry has neither identity nor kind.
			result.AddError(path+".id", protocol.CodeMissingComponentID,
				"component entry is not an object")
			result.AddError(path+".component", protocol.CodeMissingComponentType,
				"component entry is not an object")
			continue
		}

		id, _ := comp["id"].(string)
		switch {
		case id == "":
			result.AddError(path+".id", protocol.CodeMissingComponentID,
				"component id is missing or empty")
		case seen[id]:
			result.AddError(path+".id", protocol.CodeDuplicateComponentID,
				fmt.Sprintf("component id %q is already used in this batch", id))
		default:
			seen[id] = true
			if id == protocol.RootComponentID {
				rootFound = true
			}
		}

		kind, _ := comp["component"].(string)
		if kind == "" {
			result.AddError(path+".component", protocol.CodeMissingComponentType,
				"component type is missing or empty")
			continue
		}

		required, known := opts.Catalog.RequiredFields(kind, opts.Version)
		if !known {
			if opts.Strict && !opts.allowed(kind) {
				result.AddWarning(path+".component", protocol.CodeUnknownComponentType,
					fmt.Sprintf("unknown component type %q", kind))
			}
			continue
		}

		// Required means the key is present; present-but-falsy passes.
		for _, field := range required {
			if _, present := comp[field]; !present {
				result.AddError(path+"."+field, protocol.CodeMissingRequiredProperty,
					fmt.Sprintf("%s requires property %q", kind, field))
			}
		}
	}

	if opts.Strict && !rootFound {
		result.AddWarning("components", protocol.CodeMissingRootComponent,
			`no component carries id "root"`)
	}

	return result
}
