package model

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a category of failure.
type ErrorCode string

// Error codes.
const (
	// Configuration errors, fatal before any scan work starts.
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"

	// Fatal environment errors.
	ErrDestCreate      ErrorCode = "DEST_CREATE"
	ErrHashUnavailable ErrorCode = "HASH_UNAVAILABLE"

	// Per-file and per-directory errors, recovered locally.
	ErrDirRead    ErrorCode = "DIR_READ"
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileMove   ErrorCode = "FILE_MOVE"
	ErrFileDelete ErrorCode = "FILE_DELETE"

	// Export errors are reported but never fatal.
	ErrExportWrite ErrorCode = "EXPORT_WRITE"
)

// Error is a coded error carrying the path it concerns.
type Error struct {
	Code    ErrorCode
	Message string
	Path    Path
	Err     error
}

// NewError builds an Error.
func NewError(code ErrorCode, path Path, message string, err error) *Error {
	return &Error{Code: code, Message: message, Path: path, Err: err}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

// IsCode reports whether err carries code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	for err != nil {
		if !errors.As(err, &e) {
			return false
		}

		if e.Code == code {
			return true
		}

		err = e.Err
	}

	return false
}
