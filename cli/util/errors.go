package util

import (
	"errors"
	"fmt"
)

var (
	// ErrCmdAbort is reported when user aborts the program.
	ErrCmdAbort = errors.New("aborted by user")
)

// ValidationError represents invalid user input: a bad module, project name, path, license
// or project type. It is detected before any file is rendered or written.
type ValidationError struct {
	msg string
	// err is an optional sentinel error the validation failure is classified by.
	err error
}

// Error returns error message.
func (e *ValidationError) Error() string {
	return e.msg
}

// Unwrap returns the sentinel error the validation error is classified by.
func (e *ValidationError) Unwrap() error {
	return e.err
}

// NewValidationError creates and returns new validation error.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// WrapValidationError creates a validation error classified by the sentinel err, so it
// can be matched with errors.Is.
func WrapValidationError(err error, format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...), err: err}
}
