package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrHasDependentPayments indicates a currency cannot be deleted because
// non-deleted payments still reference it.
var ErrHasDependentPayments = errors.New("currency has dependent payments")

// ErrManualSource indicates a rate refresh was requested while the hub's
// rate source is set to manual.
var ErrManualSource = errors.New("rate source is set to manual")

// ErrMissingCredential indicates the configured rate source requires an API
// key that is not present in the hub settings.
var ErrMissingCredential = errors.New("api key is required for the configured rate source")

// ErrProvider indicates the remote rate provider failed or returned a
// malformed payload. Fatal for the whole refresh run.
var ErrProvider = errors.New("rate provider failure")

// AppError carries a status code alongside the wrapped cause so lower layers
// can signal severity without importing net/http.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationError creates an AppError that matches ErrValidation via errors.Is.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
