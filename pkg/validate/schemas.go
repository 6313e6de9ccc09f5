package validate

import (
	"github.com/rendis/uiwire/pkg/protocol"
)

// Schema resource URLs. Each revision compiles against exactly one
// server schema; cross-revision "either shape" validation is never
// performed.
const (
	serverSchema01URL = "https://uiwire.dev/schemas/server-0.1.json"
	serverSchema02URL = "https://uiwire.dev/schemas/server-0.2.json"
	clientSchemaURL   = "https://uiwire.dev/schemas/client.json"
)

// ServerSchemaDocument returns the embedded server→client envelope
// schema for a protocol revision.
func ServerSchemaDocument(version protocol.Version) (string, error) {
	switch version.Normalize() {
	case protocol.Version01:
		return serverSchema01JSON, nil
	case protocol.Version02:
		return serverSchema02JSON, nil
	}
	return "", protocol.NewErrorf(protocol.ErrCodeUnsupportedVersion,
		"no server schema for protocol revision %q", version)
}

// ClientSchemaDocument returns the embedded client→server envelope
// schema. The client envelope is shared across revisions.
func ClientSchemaDocument() string {
	return clientSchemaJSON
}

// serverSchema02JSON is the authoritative wire schema for revision 0.2:
// event-wrapped actions, tabs, trigger/content, explicit data-model ops,
// and computed dynamic values.
const serverSchema02JSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://uiwire.dev/schemas/server-0.2.json",
  "title": "uiwire server message, revision 0.2",
  "type": "object",
  "minProperties": 1,
  "maxProperties": 1,
  "properties": {
    "createSurface": { "$ref": "#/$defs/createSurface" },
    "updateComponents": { "$ref": "#/$defs/updateComponents" },
    "updateDataModel": { "$ref": "#/$defs/updateDataModel" },
    "deleteSurface": { "$ref": "#/$defs/deleteSurface" }
  },
  "additionalProperties": false,
  "$defs": {
    "createSurface": {
      "type": "object",
      "required": ["surfaceId", "catalogId"],
      "properties": {
        "surfaceId": { "type": "string", "minLength": 1 },
        "catalogId": { "type": "string", "minLength": 1 },
        "theme": {
          "type": "object",
          "properties": {
            "primaryColor": { "type": "string", "pattern": "^#[0-9a-fA-F]{6}$" }
          }
        },
        "sendDataModel": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "updateComponents": {
      "type": "object",
      "required": ["surfaceId", "components"],
      "properties": {
        "surfaceId": { "type": "string", "minLength": 1 },
        "components": {
          "type": "array",
          "items": { "$ref": "#/$defs/component" }
        }
      },
      "additionalProperties": false
    },
    "updateDataModel": {
      "type": "object",
      "required": ["surfaceId"],
      "properties": {
        "surfaceId": { "type": "string", "minLength": 1 },
        "path": { "type": "string" },
        "op": { "enum": ["add", "replace", "remove"] },
        "value": true
      },
      "additionalProperties": false,
      "allOf": [
        {
          "if": { "properties": { "op": { "const": "add" } }, "required": ["op"] },
          "then": { "required": ["value"] }
        }
      ]
    },
    "deleteSurface": {
      "type": "object",
      "required": ["surfaceId"],
      "properties": {
        "surfaceId": { "type": "string", "minLength": 1 }
      },
      "additionalProperties": false
    },
    "component": {
      "type": "object",
      "required": ["id", "component"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "component": { "type": "string", "minLength": 1 }
      },
      "allOf": [
        {
          "if": { "properties": { "component": { "const": "Text" } }, "required": ["component"] },
          "then": { "required": ["text"], "properties": { "text": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Image" } }, "required": ["component"] },
          "then": { "required": ["url"], "properties": { "url": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Video" } }, "required": ["component"] },
          "then": { "required": ["url"], "properties": { "url": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "AudioPlayer" } }, "required": ["component"] },
          "then": { "required": ["url"], "properties": { "url": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Icon" } }, "required": ["component"] },
          "then": { "required": ["name"], "properties": { "name": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Row" } }, "required": ["component"] },
          "then": { "required": ["children"], "properties": { "children": { "$ref": "#/$defs/childIds" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Column" } }, "required": ["component"] },
          "then": { "required": ["children"], "properties": { "children": { "$ref": "#/$defs/childIds" } } }
        },
        {
          "if": { "properties": { "component": { "const": "List" } }, "required": ["component"] },
          "then": { "required": ["children"], "properties": { "children": { "$ref": "#/$defs/childIds" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Card" } }, "required": ["component"] },
          "then": { "required": ["child"], "properties": { "child": { "$ref": "#/$defs/childId" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Tabs" } }, "required": ["component"] },
          "then": {
            "required": ["tabs"],
            "properties": { "tabs": { "type": "array", "items": { "$ref": "#/$defs/tabItem" } } }
          }
        },
        {
          "if": { "properties": { "component": { "const": "Modal" } }, "required": ["component"] },
          "then": {
            "required": ["trigger", "content"],
            "properties": {
              "trigger": { "$ref": "#/$defs/childId" },
              "content": { "$ref": "#/$defs/childId" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "Button" } }, "required": ["component"] },
          "then": {
            "required": ["child", "action"],
            "properties": {
              "child": { "$ref": "#/$defs/childId" },
              "action": { "$ref": "#/$defs/action" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "CheckBox" } }, "required": ["component"] },
          "then": {
            "required": ["label", "value"],
            "properties": {
              "label": { "$ref": "#/$defs/stringValue" },
              "value": { "$ref": "#/$defs/booleanValue" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "TextField" } }, "required": ["component"] },
          "then": {
            "required": ["label"],
            "properties": {
              "label": { "$ref": "#/$defs/stringValue" },
              "text": { "$ref": "#/$defs/stringValue" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "DateTimeInput" } }, "required": ["component"] },
          "then": { "required": ["value"], "properties": { "value": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "ChoicePicker" } }, "required": ["component"] },
          "then": {
            "required": ["options", "value"],
            "properties": {
              "options": { "$ref": "#/$defs/choiceOptions" },
              "value": { "$ref": "#/$defs/scalarOrListValue" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "Slider" } }, "required": ["component"] },
          "then": {
            "required": ["value", "min", "max"],
            "properties": {
              "value": { "$ref": "#/$defs/numberValue" },
              "min": { "$ref": "#/$defs/numberValue" },
              "max": { "$ref": "#/$defs/numberValue" }
            }
          }
        }
      ]
    },
    "binding": {
      "type": "object",
      "required": ["path"],
      "properties": { "path": { "type": "string" } }
    },
    "computed": {
      "type": "object",
      "required": ["expr"],
      "properties": {
        "expr": { "type": "string" },
        "lang": { "enum": ["cel", "jq", "expr"] }
      },
      "not": { "required": ["path"] }
    },
    "stringValue": {
      "anyOf": [
        { "type": "string" },
        { "$ref": "#/$defs/binding" },
        { "$ref": "#/$defs/computed" }
      ]
    },
    "numberValue": {
      "anyOf": [
        { "type": "number" },
        { "$ref": "#/$defs/binding" },
        { "$ref": "#/$defs/computed" }
      ]
    },
    "booleanValue": {
      "anyOf": [
        { "type": "boolean" },
        { "$ref": "#/$defs/binding" },
        { "$ref": "#/$defs/computed" }
      ]
    },
    "scalarOrListValue": {
      "anyOf": [
        { "type": ["string", "number", "boolean"] },
        { "type": "array", "items": { "type": "string" } },
        { "$ref": "#/$defs/binding" },
        { "$ref": "#/$defs/computed" }
      ]
    },
    "childId": { "type": "string", "minLength": 1 },
    "childIds": {
      "type": "array",
      "items": { "$ref": "#/$defs/childId" }
    },
    "tabItem": {
      "type": "object",
      "required": ["title", "child"],
      "properties": {
        "title": { "$ref": "#/$defs/stringValue" },
        "child": { "$ref": "#/$defs/childId" }
      }
    },
    "choiceOptions": {
      "anyOf": [
        { "type": "array", "items": { "$ref": "#/$defs/choiceOption" } },
        { "$ref": "#/$defs/binding" },
        { "$ref": "#/$defs/computed" }
      ]
    },
    "choiceOption": {
      "type": "object",
      "required": ["label", "value"],
      "properties": {
        "label": { "$ref": "#/$defs/stringValue" },
        "value": { "type": ["string", "number", "boolean"] }
      }
    },
    "action": {
      "type": "object",
      "required": ["event"],
      "properties": {
        "event": {
          "type": "object",
          "required": ["name"],
          "properties": {
            "name": { "type": "string", "minLength": 1 },
            "context": { "type": "object" }
          },
          "additionalProperties": false
        }
      },
      "additionalProperties": false
    }
  }
}`

// serverSchema01JSON is the authoritative wire schema for the legacy
// 0.1 revision: bare actions, tabItems, entryPointChild/contentChild,
// no data-model op, and no computed values. A 0.2-shaped document must
// fail against this schema, and vice versa.
const serverSchema01JSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://uiwire.dev/schemas/server-0.1.json",
  "title": "uiwire server message, revision 0.1",
  "type": "object",
  "minProperties": 1,
  "maxProperties": 1,
  "properties": {
    "createSurface": { "$ref": "#/$defs/createSurface" },
    "updateComponents": { "$ref": "#/$defs/updateComponents" },
    "updateDataModel": { "$ref": "#/$defs/updateDataModel" },
    "deleteSurface": { "$ref": "#/$defs/deleteSurface" }
  },
  "additionalProperties": false,
  "$defs": {
    "createSurface": {
      "type": "object",
      "required": ["surfaceId", "catalogId"],
      "properties": {
        "surfaceId": { "type": "string", "minLength": 1 },
        "catalogId": { "type": "string", "minLength": 1 },
        "theme": {
          "type": "object",
          "properties": {
            "primaryColor": { "type": "string", "pattern": "^#[0-9a-fA-F]{6}$" }
          }
        },
        "sendDataModel": { "type": "boolean" }
      },
      "additionalProperties": false
    },
    "updateComponents": {
      "type": "object",
      "required": ["surfaceId", "components"],
      "properties": {
        "surfaceId": { "type": "string", "minLength": 1 },
        "components": {
          "type": "array",
          "items": { "$ref": "#/$defs/component" }
        }
      },
      "additionalProperties": false
    },
    "updateDataModel": {
      "type": "object",
      "required": ["surfaceId"],
      "properties": {
        "surfaceId": { "type": "string", "minLength": 1 },
        "path": { "type": "string" },
        "value": true
      },
      "additionalProperties": false
    },
    "deleteSurface": {
      "type": "object",
      "required": ["surfaceId"],
      "properties": {
        "surfaceId": { "type": "string", "minLength": 1 }
      },
      "additionalProperties": false
    },
    "component": {
      "type": "object",
      "required": ["id", "component"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "component": { "type": "string", "minLength": 1 }
      },
      "allOf": [
        {
          "if": { "properties": { "component": { "const": "Text" } }, "required": ["component"] },
          "then": { "required": ["text"], "properties": { "text": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Image" } }, "required": ["component"] },
          "then": { "required": ["url"], "properties": { "url": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Video" } }, "required": ["component"] },
          "then": { "required": ["url"], "properties": { "url": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "AudioPlayer" } }, "required": ["component"] },
          "then": { "required": ["url"], "properties": { "url": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Icon" } }, "required": ["component"] },
          "then": { "required": ["name"], "properties": { "name": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Row" } }, "required": ["component"] },
          "then": { "required": ["children"], "properties": { "children": { "$ref": "#/$defs/childIds" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Column" } }, "required": ["component"] },
          "then": { "required": ["children"], "properties": { "children": { "$ref": "#/$defs/childIds" } } }
        },
        {
          "if": { "properties": { "component": { "const": "List" } }, "required": ["component"] },
          "then": { "required": ["children"], "properties": { "children": { "$ref": "#/$defs/childIds" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Card" } }, "required": ["component"] },
          "then": { "required": ["child"], "properties": { "child": { "$ref": "#/$defs/childId" } } }
        },
        {
          "if": { "properties": { "component": { "const": "Tabs" } }, "required": ["component"] },
          "then": {
            "required": ["tabItems"],
            "properties": { "tabItems": { "type": "array", "items": { "$ref": "#/$defs/tabItem" } } }
          }
        },
        {
          "if": { "properties": { "component": { "const": "Modal" } }, "required": ["component"] },
          "then": {
            "required": ["entryPointChild", "contentChild"],
            "properties": {
              "entryPointChild": { "$ref": "#/$defs/childId" },
              "contentChild": { "$ref": "#/$defs/childId" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "Button" } }, "required": ["component"] },
          "then": {
            "required": ["child", "action"],
            "properties": {
              "child": { "$ref": "#/$defs/childId" },
              "action": { "$ref": "#/$defs/action" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "CheckBox" } }, "required": ["component"] },
          "then": {
            "required": ["label", "value"],
            "properties": {
              "label": { "$ref": "#/$defs/stringValue" },
              "value": { "$ref": "#/$defs/booleanValue" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "TextField" } }, "required": ["component"] },
          "then": {
            "required": ["label"],
            "properties": {
              "label": { "$ref": "#/$defs/stringValue" },
              "text": { "$ref": "#/$defs/stringValue" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "DateTimeInput" } }, "required": ["component"] },
          "then": { "required": ["value"], "properties": { "value": { "$ref": "#/$defs/stringValue" } } }
        },
        {
          "if": { "properties": { "component": { "const": "ChoicePicker" } }, "required": ["component"] },
          "then": {
            "required": ["options", "value"],
            "properties": {
              "options": { "$ref": "#/$defs/choiceOptions" },
              "value": { "$ref": "#/$defs/scalarOrListValue" }
            }
          }
        },
        {
          "if": { "properties": { "component": { "const": "Slider" } }, "required": ["component"] },
          "then": {
            "required": ["value", "min", "max"],
            "properties": {
              "value": { "$ref": "#/$defs/numberValue" },
              "min": { "$ref": "#/$defs/numberValue" },
              "max": { "$ref": "#/$defs/numberValue" }
            }
          }
        }
      ]
    },
    "binding": {
      "type": "object",
      "required": ["path"],
      "properties": { "path": { "type": "string" } }
    },
    "stringValue": {
      "anyOf": [
        { "type": "string" },
        { "$ref": "#/$defs/binding" }
      ]
    },
    "numberValue": {
      "anyOf": [
        { "type": "number" },
        { "$ref": "#/$defs/binding" }
      ]
    },
    "booleanValue": {
      "anyOf": [
        { "type": "boolean" },
        { "$ref": "#/$defs/binding" }
      ]
    },
    "scalarOrListValue": {
      "anyOf": [
        { "type": ["string", "number", "boolean"] },
        { "type": "array", "items": { "type": "string" } },
        { "$ref": "#/$defs/binding" }
      ]
    },
    "childId": { "type": "string", "minLength": 1 },
    "childIds": {
      "type": "array",
      "items": { "$ref": "#/$defs/childId" }
    },
    "tabItem": {
      "type": "object",
      "required": ["title", "child"],
      "properties": {
        "title": { "$ref": "#/$defs/stringValue" },
        "child": { "$ref": "#/$defs/childId" }
      }
    },
    "choiceOptions": {
      "anyOf": [
        { "type": "array", "items": { "$ref": "#/$defs/choiceOption" } },
        { "$ref": "#/$defs/binding" }
      ]
    },
    "choiceOption": {
      "type": "object",
      "required": ["label", "value"],
      "properties": {
        "label": { "$ref": "#/$defs/stringValue" },
        "value": { "type": ["string", "number", "boolean"] }
      }
    },
    "action": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "context": { "type": "object" }
      },
      "additionalProperties": false
    }
  }
}`

// clientSchemaJSON is the client→server envelope: the event a client
// emits when the user interacts with a surface. Timestamp is
// format-checked only on this path (format assertion is on).
const clientSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://uiwire.dev/schemas/client.json",
  "title": "uiwire client event",
  "type": "object",
  "required": ["event"],
  "properties": {
    "event": {
      "type": "object",
      "required": ["surfaceId", "name"],
      "properties": {
        "surfaceId": { "type": "string", "minLength": 1 },
        "name": { "type": "string", "minLength": 1 },
        "componentId": { "type": "string" },
        "context": { "type": "object" },
        "timestamp": { "type": "string", "format": "date-time" }
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`
