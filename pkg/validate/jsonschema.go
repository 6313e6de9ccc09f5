package validate

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/rendis/uiwire/pkg/protocol"
)

// SchemaIssue is one normalized finding from the schema path. Path is
// the JSON-Pointer instance location ("/" for the document root);
// Message is the library's leaf diagnostic.
type SchemaIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// SchemaResult aggregates the schema path's findings for one document
// or one batch.
type SchemaResult struct {
	Valid  bool          `json:"valid"`
	Errors []SchemaIssue `json:"errors"`
}

// SchemaValidator checks documents against the embedded wire schemas
// using JSON Schema Draft 2020-12. The schema path is more rigid than
// ValidateMessage: one compiled server schema per protocol revision,
// unknown envelope keys rejected, format assertion on. It is safe for
// concurrent use.
type SchemaValidator struct {
	version protocol.Version
	server  *jsonschema.Schema
	client  *jsonschema.Schema
}

// NewSchemaValidator compiles the server schema for the given revision
// plus the shared client schema. Compilation happens once; Validate
// calls afterwards are lock-free.
func NewSchemaValidator(version protocol.Version) (*SchemaValidator, error) {
	version = version.Normalize()

	serverDoc, err := ServerSchemaDocument(version)
	if err != nil {
		return nil, err
	}
	serverURL := serverSchema02URL
	if version == protocol.Version01 {
		serverURL = serverSchema01URL
	}

	server, err := compileSchema(serverURL, serverDoc)
	if err != nil {
		return nil, err
	}
	client, err := compileSchema(clientSchemaURL, clientSchemaJSON)
	if err != nil {
		return nil, err
	}

	return &SchemaValidator{version: version, server: server, client: client}, nil
}

// Version reports the protocol revision this validator was compiled for.
func (v *SchemaValidator) Version() protocol.Version {
	return v.version
}

// ValidateServerMessage checks one server→client message against the
// revision's server schema.
func (v *SchemaValidator) ValidateServerMessage(msg any) SchemaResult {
	return v.run(v.server, msg, "")
}

// ValidateServerMessages checks a batch of server→client messages.
// Issue paths are prefixed with /messages/<index> so a finding can be
// traced back to its message.
func (v *SchemaValidator) ValidateServerMessages(msgs []any) SchemaResult {
	out := SchemaResult{Valid: true, Errors: []SchemaIssue{}}
	for i, msg := range msgs {
		r := v.run(v.server, msg, fmt.Sprintf("/messages/%d", i))
		if !r.Valid {
			out.Valid = false
		}
		out.Errors = append(out.Errors, r.Errors...)
	}
	return out
}

// ValidateClientEvent checks one client→server event envelope.
func (v *SchemaValidator) ValidateClientEvent(msg any) SchemaResult {
	return v.run(v.client, msg, "")
}

func (v *SchemaValidator) run(schema *jsonschema.Schema, msg any, prefix string) SchemaResult {
	doc, err := schemaValue(msg)
	if err != nil {
		return SchemaResult{Valid: false, Errors: []SchemaIssue{{
			Path:    rootPointer(prefix),
			Message: "document is not JSON-encodable: " + err.Error(),
		}}}
	}

	err = schema.Validate(doc)
	if err == nil {
		return SchemaResult{Valid: true, Errors: []SchemaIssue{}}
	}

	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return SchemaResult{Valid: false, Errors: []SchemaIssue{{
			Path:    rootPointer(prefix),
			Message: err.Error(),
		}}}
	}

	var issues []SchemaIssue
	collectSchemaIssues(verr, prefix, &issues)
	if len(issues) == 0 {
		issues = append(issues, SchemaIssue{Path: rootPointer(prefix), Message: verr.Error()})
	}
	return SchemaResult{Valid: false, Errors: issues}
}

// collectSchemaIssues walks a ValidationError tree and collects leaf
// diagnostics with their instance locations.
func collectSchemaIssues(verr *jsonschema.ValidationError, prefix string, out *[]SchemaIssue) {
	if len(verr.Causes) == 0 {
		*out = append(*out, SchemaIssue{
			Path:    instancePointer(prefix, verr.InstanceLocation),
			Message: verr.Error(),
		})
		return
	}
	for _, cause := range verr.Causes {
		collectSchemaIssues(cause, prefix, out)
	}
}

func instancePointer(prefix string, location []string) string {
	if len(location) == 0 {
		return rootPointer(prefix)
	}
	return prefix + "/" + strings.Join(location, "/")
}

func rootPointer(prefix string) string {
	if prefix == "" {
		return "/"
	}
	return prefix
}

// compileSchema compiles one embedded schema document under its
// canonical URL with format assertion enabled.
func compileSchema(url, doc string) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.AssertFormat()

	parsed, err := jsonschema.UnmarshalJSON(strings.NewReader(doc))
	if err != nil {
		return nil, protocol.NewErrorf(protocol.ErrCodeCompile, "unmarshal schema %s", url).WithCause(err)
	}
	if err := c.AddResource(url, parsed); err != nil {
		return nil, protocol.NewErrorf(protocol.ErrCodeCompile, "add schema resource %s", url).WithCause(err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, protocol.NewErrorf(protocol.ErrCodeCompile, "compile schema %s", url).WithCause(err)
	}
	return compiled, nil
}

// schemaValue round-trips a Go value through JSON encoding/decoding so
// that numeric values become json.Number (required by the jsonschema
// library).
func schemaValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(strings.NewReader(string(b)))
}

var (
	defaultSchemaOnce sync.Once
	defaultSchema     *SchemaValidator
	defaultSchemaErr  error
)

// DefaultSchemaValidator returns a process-wide validator compiled for
// the current revision. Construct your own instance when you need a
// specific revision.
func DefaultSchemaValidator() (*SchemaValidator, error) {
	defaultSchemaOnce.Do(func() {
		defaultSchema, defaultSchemaErr = NewSchemaValidator(protocol.CurrentVersion)
	})
	return defaultSchema, defaultSchemaErr
}
