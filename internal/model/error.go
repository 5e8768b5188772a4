package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")    // 400
	ErrUnauthorized       = errors.New("unauthorized")        // 401
	ErrNotFound           = errors.New("not found")           // 404
	ErrConflict           = errors.New("conflict")            // 409
	ErrServiceUnavailable = errors.New("service unavailable") // 503

	ErrPartNotFound      = fmt.Errorf("part %w", ErrNotFound)
	ErrProfileNotFound   = fmt.Errorf("compatibility profile %w", ErrNotFound)
	ErrBuildNotFound     = fmt.Errorf("build %w", ErrNotFound)
	ErrBuildItemNotFound = fmt.Errorf("build item %w", ErrNotFound)
)

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of one request.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
