package protocol

import "fmt"

// Error codes for structured error reporting. Validation findings are
// never Go errors; these cover the operational failure surface around
// the validator (schema compilation, expression engines, lookups, IO).
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeCompile            = "COMPILE_ERROR"
	ErrCodeEval               = "EVAL_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeUnsupportedVersion = "UNSUPPORTED_VERSION"
)

// WireError is the structured error type for all uiwire operations.
type WireError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Surface string         `json:"surface,omitempty"`
	Cause   error          `json:"-"`
}

func (e *WireError) Error() string {
	if e.Surface != "" {
		return fmt.Sprintf("[%s] surface %s: %s", e.Code, e.Surface, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *WireError) Unwrap() error {
	return e.Cause
}

// NewError creates a new WireError.
func NewError(code, message string) *WireError {
	return &WireError{Code: code, Message: message}
}

// NewErrorf creates a new WireError with a formatted message.
func NewErrorf(code, format string, args ...any) *WireError {
	return &WireError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithSurface attaches a surface ID to the error.
func (e *WireError) WithSurface(surfaceID string) *WireError {
	e.Surface = surfaceID
	return e
}

// WithCause attaches an underlying cause.
func (e *WireError) WithCause(err error) *WireError {
	e.Cause = err
	return e
}

// WithDetails attaches key-value details.
func (e *WireError) WithDetails(details map[string]any) *WireError {
	e.Details = details
	return e
}
