// Package errors provides structured error types for antennamap.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the graph engine, map I/O and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// Every error produced by the core is recoverable: the caller decides whether
// to abort or report and continue.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeFrequencyMismatch, "%c(%d,%d) and %c(%d,%d)", ...)
//	if errors.Is(err, errors.ErrCodeFrequencyMismatch) {
//	    // Report and continue
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidMap, origErr, "read header of %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Graph errors
	ErrCodeFrequencyMismatch Code = "FREQUENCY_MISMATCH"
	ErrCodeVertexNotFound    Code = "VERTEX_NOT_FOUND"
	ErrCodeInvalidStart      Code = "INVALID_START"
	ErrCodeDuplicateAntenna  Code = "DUPLICATE_ANTENNA"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidMap    Code = "INVALID_MAP"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// MissingEndpoints describes which endpoints of a path query could not be
// resolved. It is attached as the Cause of VERTEX_NOT_FOUND errors returned
// by path enumeration so callers can report which side is missing.
type MissingEndpoints struct {
	Source      bool
	Destination bool
}

// Error implements the error interface.
func (m *MissingEndpoints) Error() string {
	switch {
	case m.Source && m.Destination:
		return "neither antenna exists in the map"
	case m.Source:
		return "source antenna does not exist in the map"
	case m.Destination:
		return "destination antenna does not exist in the map"
	default:
		return "both antennas exist"
	}
}
