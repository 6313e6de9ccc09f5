package validate

import "github.com/rendis/uiwire/pkg/protocol"

// Validator bundles the two validation paths behind one configured
// instance:
//  1. Check*: the accumulating, permissive path (collect every issue,
//     tolerate unknown keys).
//  2. CheckConformance*: the rigid schema path (JSON Schema, unknown
//     envelope keys rejected).
//
// Options are fixed at construction and the schema for the configured
// revision is compiled once, so Check calls never pay compilation cost.
// Safe for concurrent use.
type Validator struct {
	opts   Options
	schema *SchemaValidator
}

// New creates a Validator for the given options. A schema compile
// failure means the embedded schema documents are broken and surfaces
// here rather than on first use.
func New(opts Options) (*Validator, error) {
	opts = opts.normalized()
	sv, err := NewSchemaValidator(opts.Version)
	if err != nil {
		return nil, err
	}
	return &Validator{opts: opts, schema: sv}, nil
}

// Options returns the normalized options this validator runs with.
func (v *Validator) Options() Options {
	return v.opts
}

// Schema exposes the compiled schema validator for callers that need
// the conformance path directly.
func (v *Validator) Schema() *SchemaValidator {
	return v.schema
}

// Check validates one decoded message.
func (v *Validator) Check(msg any) *protocol.Result {
	return ValidateMessage(msg, v.opts)
}

// CheckBatch validates a message sequence, prefixing issue paths with
// messages[<index>].
func (v *Validator) CheckBatch(msgs []any) *protocol.Result {
	return ValidateMessages(msgs, v.opts)
}

// CheckBatchConcurrent is CheckBatch with a bounded worker fan-out.
// Output is identical to CheckBatch for the same input.
func (v *Validator) CheckBatchConcurrent(msgs []any, workers int) *protocol.Result {
	return ValidateMessagesConcurrent(msgs, v.opts, workers)
}

// CheckJSON validates raw JSON bytes holding one message.
func (v *Validator) CheckJSON(data []byte) *protocol.Result {
	return ValidateMessageJSON(data, v.opts)
}

// CheckBatchJSON validates raw JSON bytes holding either a message
// array or one message.
func (v *Validator) CheckBatchJSON(data []byte) *protocol.Result {
	return ValidateMessagesJSON(data, v.opts)
}

// CheckConformance runs the schema path on one server message.
func (v *Validator) CheckConformance(msg any) SchemaResult {
	return v.schema.ValidateServerMessage(msg)
}

// CheckBatchConformance runs the schema path on a message sequence.
func (v *Validator) CheckBatchConformance(msgs []any) SchemaResult {
	return v.schema.ValidateServerMessages(msgs)
}

// CheckClientEvent runs the schema path on a client→server event.
func (v *Validator) CheckClientEvent(msg any) SchemaResult {
	return v.schema.ValidateClientEvent(msg)
}
