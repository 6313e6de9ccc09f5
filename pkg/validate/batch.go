package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rendis/uiwire/pkg/protocol"
)

// ValidateMessages checks an ordered batch. Each message is validated
// independently with the same options, every issue path is prefixed
// with "messages[<index>]", and aggregation preserves input order. The
// batch is valid iff every message is.
func ValidateMessages(msgs []any, opts Options) *protocol.Result {
	result := &protocol.Result{}
	for i, msg := range msgs {
		r := ValidateMessage(msg, opts)
		r.Prefix(fmt.Sprintf("messages[%d]", i))
		result.Merge(r)
	}
	return result
}

// ValidateMessagesConcurrent is ValidateMessages fanned out over a
// bounded number of goroutines. Messages have no data dependency on
// each other, so they validate in parallel; results land in
// index-ordered slots and are reassembled in input order, making the
// output byte-identical to the sequential form.
func ValidateMessagesConcurrent(msgs []any, opts Options, workers int) *protocol.Result {
	if workers <= 1 || len(msgs) <= 1 {
		return ValidateMessages(msgs, opts)
	}
	if workers > len(msgs) {
		workers = len(msgs)
	}

	slots := make([]*protocol.Result, len(msgs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range msgs {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int) {
			defer func() {
				<-sem
				wg.Done()
			}()
			r := ValidateMessage(msgs[i], opts)
			r.Prefix(fmt.Sprintf("messages[%d]", i))
			slots[i] = r
		}(i)
	}
	wg.Wait()

	result := &protocol.Result{}
	for _, r := range slots {
		result.Merge(r)
	}
	return result
}

// ValidateMessageJSON decodes raw bytes and validates them as a single
// message. Bytes that are not valid JSON yield INVALID_MESSAGE_TYPE
// rather than an error return; validation itself never fails.
func ValidateMessageJSON(data []byte, opts Options) *protocol.Result {
	v, err := decodeJSON(data)
	if err != nil {
		result := &protocol.Result{}
		result.AddError("", protocol.CodeInvalidMessageType, "input is not valid JSON")
		return result
	}
	return ValidateMessage(v, opts)
}

// ValidateMessagesJSON decodes raw bytes and validates them as a batch.
// A top-level array is a batch with messages[<index>] paths; any other
// document validates as a single message with unprefixed paths.
func ValidateMessagesJSON(data []byte, opts Options) *protocol.Result {
	v, err := decodeJSON(data)
	if err != nil {
		result := &protocol.Result{}
		result.AddError("", protocol.CodeInvalidMessageType, "input is not valid JSON")
		return result
	}
	if msgs, isArray := v.([]any); isArray {
		return ValidateMessages(msgs, opts)
	}
	return ValidateMessage(v, opts)
}

// decodeJSON decodes with json.Number so numeric values survive with
// full fidelity, matching what the schema path expects.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
