package domain

import (
	"errors"
	"net/http"
)

// Error codes for business logic errors.
const (
	CodeNotFound     = 1
	CodeValidation   = 2
	CodeUnauthorized = 3
	CodeInternal     = 4
)

// AppError represents a business logic error with a code, message, and optional wrapped error.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined business errors.
//
// To check whether an error matches one of these categories, use the
// corresponding helper function (IsNotFound, IsUnauthorized, etc.)
// instead of errors.Is. The helpers use errors.As with error-code
// comparison, so they correctly match any *AppError that carries the
// same code, including freshly constructed instances from NewAppError
// and wrapped errors, whereas errors.Is only matches by pointer
// identity with the specific sentinel below.
var (
	ErrNotFound           = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrValidation         = &AppError{Code: CodeValidation, Message: "validation error"}
	ErrInvalidCredentials = &AppError{Code: CodeUnauthorized, Message: "Invalid credentials"}
	ErrInternal           = &AppError{Code: CodeInternal, Message: "internal error"}
)

// NewAppError creates a new AppError with the given code, message, and wrapped error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool {
	return hasCode(err, CodeNotFound)
}

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool {
	return hasCode(err, CodeValidation)
}

// IsUnauthorized reports whether err is or wraps an AppError with CodeUnauthorized.
func IsUnauthorized(err error) bool {
	return hasCode(err, CodeUnauthorized)
}

// IsInternal reports whether err is or wraps an AppError with CodeInternal.
func IsInternal(err error) bool {
	return hasCode(err, CodeInternal)
}

// hasCode checks whether err is or wraps an *AppError with the given code.
func hasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// HTTPStatusCode maps an error to an HTTP status code.
// If the error is an *AppError, the code is mapped; otherwise http.StatusInternalServerError is returned.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if err != nil && errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeNotFound:
			return http.StatusNotFound
		case CodeValidation:
			return http.StatusBadRequest
		case CodeUnauthorized:
			return http.StatusUnauthorized
		case CodeInternal:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}
