package engines

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound is returned when a template name does not match any stored template.
var ErrTemplateNotFound = errors.New("template not found")

// RenderError is returned when a template body is malformed or its execution fails.
type RenderError struct {
	// Template is a name of the failed template.
	Template string
	// Err is the parse or execution error.
	Err error
}

// Error returns error message.
func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s: %s", e.Template, e.Err)
}

// Unwrap returns the underlying parse or execution error.
func (e *RenderError) Unwrap() error {
	return e.Err
}
