// Package errors provides structured error types for iconforge.
//
// This package defines error codes and types that enable:
//   - Consistent handling of precondition and resource failures
//   - Machine-readable error codes for tests and the CLI
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: precondition violations (bad dimensions, radius, colors, manifest)
//   - IO_ERROR: output directory or file write failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRadius, "blur radius must be positive, got %v", r)
//	if errors.Is(err, errors.ErrCodeInvalidRadius) {
//	    // Handle precondition error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Precondition errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidDimensions Code = "INVALID_DIMENSIONS"
	ErrCodeInvalidRadius     Code = "INVALID_RADIUS"
	ErrCodeInvalidColor      Code = "INVALID_COLOR"
	ErrCodeInvalidManifest   Code = "INVALID_MANIFEST"
	ErrCodeInvalidVariant    Code = "INVALID_VARIANT"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	// Resource errors
	ErrCodeIO Code = "IO_ERROR"

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

// DimensionError reports two images that were expected to share a size.
type DimensionError struct {
	WantW, WantH int
	GotW, GotH   int
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: want %dx%d, got %dx%d", e.WantW, e.WantH, e.GotW, e.GotH)
}

// Code returns the error code for this error type.
func (e *DimensionError) Code() Code {
	return ErrCodeInvalidDimensions
}

// Mismatch returns an INVALID_DIMENSIONS error wrapping a DimensionError.
func Mismatch(wantW, wantH, gotW, gotH int) *Error {
	return Wrap(ErrCodeInvalidDimensions,
		&DimensionError{WantW: wantW, WantH: wantH, GotW: gotW, GotH: gotH},
		"layer size does not match canvas")
}
