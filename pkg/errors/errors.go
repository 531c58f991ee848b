// Package errors provides structured error types for the layoutsmith application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Every malformed-input condition the scanner can hit has its own code, so
// callers (and tests) can discriminate failures without string matching.
// Parsing is a pure, one-shot function: no error in this package is ever
// retried, and a failure on a given input is permanent.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnquotedValue, "value for key %q must be quoted", key)
//	if errors.Is(err, errors.ErrCodeUnquotedValue) {
//	    // Handle quoting error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "read examples file %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Envelope and separator errors from the example scanner
	ErrCodeMalformedEnvelope         Code = "MALFORMED_ENVELOPE"
	ErrCodeEmptyInput                Code = "EMPTY_INPUT"
	ErrCodeUnbalancedParens          Code = "UNBALANCED_PARENS"
	ErrCodeMissingSeparator          Code = "MISSING_SEPARATOR"
	ErrCodeSeparatorBeforeDimensions Code = "SEPARATOR_BEFORE_DIMENSIONS"

	// Dimensions block errors
	ErrCodeMalformedDimensions   Code = "MALFORMED_DIMENSIONS"
	ErrCodeNestedParens          Code = "NESTED_PARENS"
	ErrCodeUnknownDimensionKey   Code = "UNKNOWN_DIMENSION_KEY"
	ErrCodeInvalidDimensionValue Code = "INVALID_DIMENSION_VALUE"
	ErrCodeMissingDimension      Code = "MISSING_DIMENSION"

	// Element block errors
	ErrCodeMalformedHStack     Code = "MALFORMED_HSTACK"
	ErrCodeUnquotedHStackChild Code = "UNQUOTED_HSTACK_CHILD"
	ErrCodeMalformedElements   Code = "MALFORMED_ELEMENTS"
	ErrCodeUnknownElementKey   Code = "UNKNOWN_ELEMENT_KEY"
	ErrCodeUnquotedValue       Code = "UNQUOTED_VALUE"

	// Synthesis errors
	ErrCodeSynthesisFailed Code = "SYNTHESIS_FAILED"

	// Driver-level errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
