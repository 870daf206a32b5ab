package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Professor and evaluation errors. Each wraps one of the common errors above so
// callers can match either the specific or the general kind with errors.Is.
var (
	ErrProfessorNotFound = fmt.Errorf("professor %w", ErrResourceNotFound)
	ErrEvaluatorNotFound = fmt.Errorf("evaluator %w", ErrResourceNotFound)
	ErrUserAlreadyExists = fmt.Errorf("user %w", ErrResourceAlreadyExists)

	ErrMissingFields       = fmt.Errorf("%w: missing required fields", ErrValidationFailed)
	ErrInvalidID           = fmt.Errorf("%w: malformed id", ErrValidationFailed)
	ErrScoreOutOfRange     = fmt.Errorf("%w: scores must be between 0 and 5", ErrValidationFailed)
	ErrMissingSearchParams = fmt.Errorf("%w: search type and search term are required", ErrValidationFailed)
	ErrInvalidSearchType   = fmt.Errorf("%w: invalid search type", ErrValidationFailed)
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithField records which request field caused the error
func (e *CustomError) WithField(field string) *CustomError {
	e.Field = field
	return e
}

// NewInvalidIDError reports a malformed id for the named field.
func NewInvalidIDError(field string) error {
	return NewCustomError(ErrInvalidID, fmt.Sprintf("invalid %s id", field)).WithField(field)
}

// NewValidationError wraps ErrValidationFailed with a field-specific message.
func NewValidationError(field, message string) error {
	return NewCustomError(ErrValidationFailed, message).WithField(field)
}
