package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller lacks the role required for the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the action conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrInternal is returned when a failure should not leak details to the caller.
var ErrInternal = errors.New("internal error")

// ErrStorage wraps failures of the underlying database or cache.
var ErrStorage = errors.New("storage error")

// ErrLocked is returned when a document lock could not be obtained in time.
var ErrLocked = errors.New("document is locked by another writer")

// ErrUnbalancedEntry is returned when the debits and credits of a posting set differ.
var ErrUnbalancedEntry = fmt.Errorf("%w: unbalanced entry", ErrValidation)

// ErrInvalidPeriod is returned when a period token or date does not resolve to a calendar range.
var ErrInvalidPeriod = fmt.Errorf("%w: invalid period", ErrValidation)

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(appErr, ErrStorage) match any 5xx AppError.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrStorage:
		return e.Code >= http.StatusInternalServerError
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	}
	return false
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError for the named resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: resource + " not found", Err: ErrNotFound}
}
