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

// ErrPersistence indicates that a write to the record store failed.
var ErrPersistence = errors.New("persistence error")

// ErrConflict indicates that a conditional write lost against a concurrent writer.
var ErrConflict = errors.New("concurrent modification conflict")

// ErrDataIntegrity indicates that stored data violates a precondition the service relies on,
// e.g. an employee with more than one current balance record.
var ErrDataIntegrity = errors.New("data integrity violation")

// ErrPartialWrite indicates that the balance was updated but the audit transaction was not recorded.
var ErrPartialWrite = errors.New("partial write: balance updated without audit transaction")

// ErrStoreUnavailable indicates that the record store is refusing calls (circuit open).
var ErrStoreUnavailable = errors.New("record store unavailable")

// AppError carries an HTTP-style status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s (status %d): %v", e.Message, e.Code, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
