// Package session lints an ordered message stream for surface
// lifecycle mistakes: creating a surface that is already live, or
// addressing one that was never created or was already deleted. The
// lint is advisory and opt-in; core validation stays stateless and
// never consults it.
package session

import (
	"fmt"
	"sort"

	"github.com/rendis/uiwire/pkg/protocol"
)

// Lint codes. These sit outside the closed validation code set:
// lifecycle findings are stream-level advice, not message validity,
// and they are always warnings.
const (
	CodeSurfaceAlreadyExists = "SURFACE_ALREADY_EXISTS"
	CodeUnknownSurface       = "UNKNOWN_SURFACE"
)

// Tracker follows surface lifecycles across an ordered message stream.
// Not safe for concurrent use; a stream has one reader.
type Tracker struct {
	live map[string]bool
	next int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{live: make(map[string]bool)}
}

// Observe advances the tracker by one message and returns lifecycle
// warnings for it. Every call consumes one stream position, so issue
// paths ("messages[i].<kind>.surfaceId") line up with the input even
// when a message is malformed and produces nothing.
//
// Malformed envelopes and messages without a surface id are skipped;
// those are validator findings, not lifecycle ones.
func (t *Tracker) Observe(msg protocol.Message) []protocol.Issue {
	index := t.next
	t.next++

	kind := msg.Kind()
	surfaceID := msg.SurfaceID()
	if kind == "" || surfaceID == "" {
		return nil
	}

	path := fmt.Sprintf("messages[%d].%s.surfaceId", index, kind)

	var issues []protocol.Issue
	warn := func(code, format string, args ...any) {
		issues = append(issues, protocol.Issue{
			Path:     path,
			Code:     code,
			Message:  fmt.Sprintf(format, args...),
			Severity: protocol.SeverityWarning,
		})
	}

	switch kind {
	case protocol.MessageCreateSurface:
		if t.live[surfaceID] {
			warn(CodeSurfaceAlreadyExists, "surface %q is already live; re-creating resets it", surfaceID)
		}
		t.live[surfaceID] = true

	case protocol.MessageUpdateComponents, protocol.MessageUpdateDataModel:
		if !t.live[surfaceID] {
			warn(CodeUnknownSurface, "surface %q was never created in this stream", surfaceID)
		}

	case protocol.MessageDeleteSurface:
		if !t.live[surfaceID] {
			warn(CodeUnknownSurface, "surface %q was never created in this stream", surfaceID)
		}
		delete(t.live, surfaceID)
	}

	return issues
}

// ObserveAll runs Observe over an ordered slice and collects every
// warning into one Result.
func (t *Tracker) ObserveAll(msgs []protocol.Message) *protocol.Result {
	result := &protocol.Result{}
	for _, msg := range msgs {
		result.Warnings = append(result.Warnings, t.Observe(msg)...)
	}
	return result
}

// Live returns the surfaces currently live, sorted.
func (t *Tracker) Live() []string {
	ids := make([]string, 0, len(t.live))
	for id := range t.live {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reset clears all lifecycle state and restarts the stream position.
func (t *Tracker) Reset() {
	t.live = make(map[string]bool)
	t.next = 0
}
