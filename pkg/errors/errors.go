// Package errors provides structured error types for the oscviz application.
//
// Every error that crosses a package boundary carries a machine-readable
// Code, a message fit for terminal display, and optionally the wrapped
// cause. The CLI switches on codes to decide exit behavior and uses
// UserMessage to strip the code prefix before printing.
//
// # Error Codes
//
// Codes group by prefix:
//   - INVALID_*: input validation failures
//   - DISPLAY_*: presentation surface failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGrid, "grid must have at least one row, got %d", rows)
//	if errors.Is(err, errors.ErrCodeInvalidGrid) {
//	    // reject the config
//	}
//
//	err := errors.Wrap(errors.ErrCodeEncode, origErr, "failed to write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidGrid     Code = "INVALID_GRID"
	ErrCodeInvalidCell     Code = "INVALID_CELL"
	ErrCodeInvalidSnapshot Code = "INVALID_SNAPSHOT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Presentation surface errors
	ErrCodeDisplayUnavailable Code = "DISPLAY_UNAVAILABLE"
	ErrCodeSurfaceClosed      Code = "SURFACE_CLOSED"

	// Rendering errors
	ErrCodeFontLoad Code = "FONT_LOAD"
	ErrCodeRender   Code = "RENDER_ERROR"
	ErrCodeEncode   Code = "ENCODE_ERROR"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // machine-readable code
	Message string // human-readable message
	Cause   error  // wrapped error, nil when the failure originated here
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap exposes the cause to the stdlib errors helpers.
func (e *Error) Unwrap() error { return e.Cause }

// New builds an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that records cause alongside the message.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any error in err's chain is an *Error carrying code.
func Is(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// GetCode returns the code of the first *Error in err's chain, or the
// empty string when the chain has none.
func GetCode(err error) Code {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

// UserMessage strips the code prefix for terminal display. Errors from
// outside this package pass through unchanged.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
