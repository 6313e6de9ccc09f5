package protocol

import (
	"encoding/json"
	"fmt"
)

// Severity indicates whether an issue is an error or a warning.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding with an addressable location.
// Path is dot/bracket-qualified into the input, e.g.
// "updateComponents.components[2].id".
type Issue struct {
	Path     string   `json:"path,omitempty"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Result aggregates every finding from a validation pass. Warnings
// never affect validity.
type Result struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid returns true if there are no errors (warnings are acceptable).
func (r *Result) Valid() bool {
	return len(r.Errors) == 0
}

// AddError appends an error-severity issue.
func (r *Result) AddError(path, code, message string) {
	r.Errors = append(r.Errors, Issue{
		Path: path, Code: code, Message: message, Severity: SeverityError,
	})
}

// AddWarning appends a warning-severity issue.
func (r *Result) AddWarning(path, code, message string) {
	r.Warnings = append(r.Warnings, Issue{
		Path: path, Code: code, Message: message, Severity: SeverityWarning,
	})
}

// Merge combines another Result into this one, preserving order.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Prefix rewrites every issue path to sit under p. Issues with an empty
// path take p itself, so batch items report "messages[3]" rather than
// "messages[3].".
func (r *Result) Prefix(p string) {
	for i := range r.Errors {
		r.Errors[i].Path = joinPath(p, r.Errors[i].Path)
	}
	for i := range r.Warnings {
		r.Warnings[i].Path = joinPath(p, r.Warnings[i].Path)
	}
}

func joinPath(prefix, path string) string {
	if path == "" {
		return prefix
	}
	return prefix + "." + path
}

// MarshalJSON renders the protocol result contract: valid is derived,
// and both issue arrays are always present.
func (r *Result) MarshalJSON() ([]byte, error) {
	errs := r.Errors
	if errs == nil {
		errs = []Issue{}
	}
	warns := r.Warnings
	if warns == nil {
		warns = []Issue{}
	}
	return json.Marshal(struct {
		Valid    bool    `json:"valid"`
		Errors   []Issue `json:"errors"`
		Warnings []Issue `json:"warnings"`
	}{r.Valid(), errs, warns})
}

// ToError converts the result to a WireError if invalid, nil if valid.
func (r *Result) ToError() error {
	if r.Valid() {
		return nil
	}

	msg := r.Errors[0].Message
	if len(r.Errors) > 1 {
		msg = fmt.Sprintf("validation failed with %d errors", len(r.Errors))
	}

	return NewError(ErrCodeValidation, msg).
		WithDetails(map[string]any{
			"error_count":   len(r.Errors),
			"warning_count": len(r.Warnings),
			"errors":        r.Errors,
			"warnings":      r.Warnings,
		})
}
