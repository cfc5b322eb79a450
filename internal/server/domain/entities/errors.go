package entities

import (
	"errors"
)

// Sentinel errors of the domain. Handlers map them to HTTP statuses:
// validation and conflict errors to 400, not-found to 404, everything
// else to 500.
var (
	ErrNoteNotFound      = errors.New("Note not found")
	ErrCategoryNotFound  = errors.New("Category not found")
	ErrCategoryNameTaken = errors.New("A category with this name already exists")
)

// ValidationError reports a rejected request payload. The message is part of
// the wire contract and is returned to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Validation messages preserved from the public wire contract.
var (
	ErrTitleContentRequired = NewValidationError("Title and content are required")
	ErrNoFieldsProvided     = NewValidationError("At least one field must be provided")
	ErrCategoryNameRequired = NewValidationError("Category name is required")
)
