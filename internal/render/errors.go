package render

import "fmt"

// TemplateError reports a missing or unreadable template container. Unlike
// style resolution, rendering has no fallback for this condition.
type TemplateError struct {
	Path  string
	Cause error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template container unavailable: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("template container unavailable: %s", e.Path)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError reports a failure while writing the output artifact.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
