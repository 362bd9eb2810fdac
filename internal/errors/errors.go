package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG" // invalid configuration (step count, geometry, config file)
	ErrState  = "STATE"  // operation not allowed in the current lifecycle state
	ErrBounds = "BOUNDS" // reserved: out-of-range moves are absorbed as no-ops
	ErrUI     = "UI"     // terminal program failures
	ErrIO     = "IO"     // reading or writing files
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrUI code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrUI,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewInvalidStepCount creates the configuration error raised when a layout
// is requested for fewer than two steps.
func NewInvalidStepCount(n int) *Error {
	return &Error{
		Code:       ErrConfig,
		Message:    fmt.Sprintf("Number of steps must be greater than 1, got %d", n),
		Suggestion: "Configure at least 2 steps",
	}
}

// NewAlreadyLaidOut creates the state error raised when something that only
// makes sense before the first layout is changed afterwards.
func NewAlreadyLaidOut(what string) *Error {
	return &Error{
		Code:       ErrState,
		Message:    fmt.Sprintf("Illegal attempt to set the %s once the view has been measured", what),
		Suggestion: "Set it before the container reports its size",
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var crumbsErr *Error
	if errors.As(err, &crumbsErr) {
		return crumbsErr.Code == code
	}
	return false
}
