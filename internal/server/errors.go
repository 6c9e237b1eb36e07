// Package server provides the HTTP REST API for the legal document generator.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/priyansh/legal-doc-agent/internal/render"
	"github.com/priyansh/legal-doc-agent/internal/service"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrFileNotFound indicates a requested download does not exist
type ErrFileNotFound struct {
	Filename string
}

func (e *ErrFileNotFound) Error() string {
	return fmt.Sprintf("file not found: %s", e.Filename)
}

// ErrRunNotFound indicates a run record was not found
type ErrRunNotFound struct {
	ID string
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var genErr *service.GenerationError
	if errors.As(err, &genErr) {
		return http.StatusBadRequest
	}
	var tmplErr *render.TemplateError
	if errors.As(err, &tmplErr) {
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrFileNotFound, *ErrRunNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
