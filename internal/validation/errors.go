// Package validation checks generated document content for unresolved
// placeholders and category-specific structural requirements.
package validation

import "fmt"

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ContentError represents a malformed content document. This is a fatal
// precondition for assembly, not a degrade-and-continue condition.
type ContentError struct {
	Message string
	Cause   error
}

func (e *ContentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("content error: %s", e.Message)
}

func (e *ContentError) Unwrap() error {
	return e.Cause
}
