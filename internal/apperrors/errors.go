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

// ErrUnauthorized indicates that no valid credential accompanied the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated principal may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a concurrent write conflict on an account; callers may retry.
var ErrConflict = errors.New("write conflict")

// AppError wraps an underlying error with an HTTP-equivalent status code and a
// message that is safe to surface to callers.
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

// Is maps AppError codes onto the package sentinels so callers can keep using
// errors.Is with the sentinel values regardless of how the error was built.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == 404
	case ErrValidation:
		return e.Code == 400 || e.Code == 422
	case ErrUnauthorized:
		return e.Code == 401
	case ErrForbidden:
		return e.Code == 403
	}
	// 409s stay ambiguous here: ErrConflict vs ErrDuplicate is resolved by
	// unwrapping to the sentinel the error was built with.
	return false
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError representing a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
