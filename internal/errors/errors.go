// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeMissingField indicates a required pricing input is absent
	TypeMissingField Type = "MISSING_FIELD"

	// TypeInvalidValue indicates a pricing input is present but invalid
	TypeInvalidValue Type = "INVALID_VALUE"

	// TypeUnparseableConfig indicates a listing configuration blob could not be parsed
	TypeUnparseableConfig Type = "UNPARSEABLE_CONFIG"

	// TypeUnknownPolicy indicates an unrecognized pricing policy value
	TypeUnknownPolicy Type = "UNKNOWN_POLICY"

	// TypeConfig indicates an application configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
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

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
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

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
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

// MissingField creates a missing-field error for a named input field
func MissingField(field string) *Error {
	return Newf(TypeMissingField, "required field missing: %s", field).
		WithContext("field", field)
}

// InvalidValue creates an invalid-value error for a named input field
func InvalidValue(field, reason string) *Error {
	return Newf(TypeInvalidValue, "invalid %s: %s", field, reason).
		WithContext("field", field)
}

// UnparseableConfig creates a configuration parse error
func UnparseableConfig(message string, cause error) *Error {
	return Wrap(TypeUnparseableConfig, message, cause)
}

// UnknownPolicy creates an unknown pricing policy error
func UnknownPolicy(policy string) *Error {
	return Newf(TypeUnknownPolicy, "unrecognized pricing policy: %s", policy).
		WithContext("policy", policy)
}

// Config creates an application configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
