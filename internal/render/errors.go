package render

import (
	"errors"
	"fmt"
)

var ErrUnknownTemplate = errors.New("unknown template")

// RenderError wraps a failure while executing a template or printing a PDF.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
