// Package errors provides structured error types for vecnet.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the codec, pipeline and CLI
//   - Machine-readable error codes for programmatic handling
//   - Messages that a calling agent can display without rewording
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codec raises three kinds of errors while decoding a sparse network:
//   - INVALID_FORMAT: a string field failed to parse as JSON
//   - OUT_OF_RANGE: a vertex index lies outside [0, vertexCount)
//   - INVALID_SHAPE: the vertex array holds an incomplete coordinate pair
//
// The remaining codes are used by the tooling around the codec.
//
// # Usage
//
//	err := errors.Range("regions[0].loops[0]", 5, 2)
//	if errors.Is(err, errors.ErrCodeOutOfRange) {
//	    // Handle bad index
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Codec errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeOutOfRange    Code = "OUT_OF_RANGE"
	ErrCodeInvalidShape  Code = "INVALID_SHAPE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInputTooLarge Code = "INPUT_TOO_LARGE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeUnknownTool   Code = "UNKNOWN_TOOL"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Field   string // Offending wire field, e.g. "regions[0].loops[1]" (optional)
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.text(), e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.text())
}

func (e *Error) text() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
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

// Format reports a wire field whose string value is not valid JSON of the
// expected type. The raw value is quoted into the message so the caller
// can see exactly what was rejected.
func Format(field, raw string, cause error) *Error {
	return &Error{
		Code:    ErrCodeInvalidFormat,
		Field:   field,
		Message: fmt.Sprintf("cannot parse %s", quoteRaw(raw)),
		Cause:   cause,
	}
}

// Range reports a vertex index outside [0, count).
func Range(field string, index, count int) *Error {
	msg := fmt.Sprintf("vertex index %d out of range (valid range 0-%d)", index, count-1)
	if count == 0 {
		msg = fmt.Sprintf("vertex index %d out of range (network has no vertices)", index)
	}
	return &Error{
		Code:    ErrCodeOutOfRange,
		Field:   field,
		Message: msg,
	}
}

// Shape reports a coordinate array whose length is odd.
func Shape(field string, n int) *Error {
	return &Error{
		Code:    ErrCodeInvalidShape,
		Field:   field,
		Message: fmt.Sprintf("expected an even number of coordinates (x,y pairs), got %d", n),
	}
}

const maxRawLen = 80

func quoteRaw(raw string) string {
	if len(raw) > maxRawLen {
		return fmt.Sprintf("%q...", raw[:maxRawLen])
	}
	return fmt.Sprintf("%q", raw)
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

// FieldOf returns the wire field named by err, or "" if none.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}

// UserMessage returns the message shown to a calling agent.
// For *Error types, returns the field and message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.text(), e.Cause)
		}
		return e.text()
	}
	return err.Error()
}
