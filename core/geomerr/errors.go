// Package geomerr defines the error taxonomy for the planar geometry API.
//
// There are exactly two error types: INVALID_ARGUMENT for geometric
// preconditions violated at construction time, and TYPE_MISMATCH for
// calculator entry points handed a value that does not satisfy the shape
// capability at all. Both are unrecoverable and propagate to the caller
// unchanged - there is no retry and no degraded fallback anywhere in the
// contract.
package geomerr

import (
	"errors"
	"fmt"
)

// Error types for the two categories of failures
const (
	// ErrInvalidArgument covers non-positive dimensions and failed
	// triangle-inequality checks. Construction either fully succeeds or
	// produces no value.
	ErrInvalidArgument = "INVALID_ARGUMENT"

	// ErrTypeMismatch covers values that are not shapes at all. Invalid
	// parameters are rejected earlier, at construction, so an improperly
	// constructed shape can never reach the calculator.
	ErrTypeMismatch = "TYPE_MISMATCH"
)

// Error represents a structured error with type and context
type Error struct {
	Type    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows error unwrapping
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error
func New(errorType, message string) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(errorType, format string, args ...interface{}) *Error {
	return New(errorType, fmt.Sprintf(format, args...))
}

// Wrap creates a new Error wrapping an existing error
func Wrap(errorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	e.Context[key] = value
	return e
}

// GetContext returns context value by key
func (e *Error) GetContext(key string) (interface{}, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// IsErrorType checks if an error (or anything it wraps) is of a specific type
func IsErrorType(err error, errorType string) bool {
	var geomErr *Error
	if errors.As(err, &geomErr) {
		return geomErr.Type == errorType
	}
	return false
}

// IsInvalidArgument reports whether err is an INVALID_ARGUMENT error
func IsInvalidArgument(err error) bool {
	return IsErrorType(err, ErrInvalidArgument)
}

// IsTypeMismatch reports whether err is a TYPE_MISMATCH error
func IsTypeMismatch(err error) bool {
	return IsErrorType(err, ErrTypeMismatch)
}
