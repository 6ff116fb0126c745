// Package errors provides unified error handling with structured codes.
package errors

import "fmt"

// Code classifies application errors.
type Code int

const (
	CodeUnknown Code = iota
	// CodeConfigInvalid marks configuration values outside their legal range.
	CodeConfigInvalid
	// CodeSurfaceUnavailable marks a missing or degenerate display surface.
	// Fatal at startup: masking is meaningless without alpha compositing.
	CodeSurfaceUnavailable
	// CodeCaptureFailed marks a screen capture source failure.
	CodeCaptureFailed
	// CodePointerFailed marks a pointer source failure.
	CodePointerFailed
	// CodeNotInitialized marks use of dimension-keyed state before the
	// first known surface size.
	CodeNotInitialized
)

var codeNames = map[Code]string{
	CodeUnknown:            "UNKNOWN",
	CodeConfigInvalid:      "CONFIG_INVALID",
	CodeSurfaceUnavailable: "SURFACE_UNAVAILABLE",
	CodeCaptureFailed:      "CAPTURE_FAILED",
	CodePointerFailed:      "POINTER_FAILED",
	CodeNotInitialized:     "NOT_INITIALIZED",
}

// String returns the symbolic name of the code.
func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "UNKNOWN"
}

// AppError is the base error type with structured error code and metadata.
type AppError struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if len(e.Metadata) > 0 {
		s += fmt.Sprintf(" %v", e.Metadata)
	}
	if e.Cause != nil {
		s += fmt.Sprintf(" caused by: %v", e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error { return e.Cause }

// New creates a new AppError with the given code and message.
func New(code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

// Newf creates a new AppError with formatted message.
func Newf(code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError.
func Wrap(err error, code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg, Cause: err}
}

// Wrapf wraps an existing error with formatted message.
func Wrapf(err error, code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// WithMetadata adds metadata to an AppError.
func (e *AppError) WithMetadata(key, value string) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// IsCode checks if an error has a specific error code.
func IsCode(err error, code Code) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}
