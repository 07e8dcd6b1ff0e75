// Package errors provides error handling utilities.
package errors

import (
	"fmt"
	"net/http"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates a malformed or missing input field
	TypeInput Type = "INPUT_ERROR"

	// TypeValidation indicates a rejected configuration (dimensions, unresolvable price)
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeConfig indicates a catalog/preset configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypePricing indicates a pricing computation error
	TypePricing Type = "PRICING_ERROR"

	// TypeNotFound indicates a resource not found error
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Details interface{}            `json:"details,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Status maps the error type to an HTTP status code
func (e *Error) Status() int {
	switch e.Type {
	case TypeInput, TypeValidation:
		return http.StatusUnprocessableEntity
	case TypeConfig:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails attaches a caller-facing details payload
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// AsError extracts a typed *Error if present
func AsError(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Validation creates a validation error with caller-facing details
func Validation(message string, details interface{}) *Error {
	return New(TypeValidation, message).WithDetails(details)
}

// Config creates a configuration error
func Config(message string) *Error {
	return New(TypeConfig, message)
}

// Configf creates a formatted configuration error
func Configf(format string, args ...interface{}) *Error {
	return Newf(TypeConfig, format, args...)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
