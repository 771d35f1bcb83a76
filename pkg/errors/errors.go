package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// FromAuthError maps known Identity Toolkit error codes to short human
// messages. Unmapped errors keep their raw message text.
func FromAuthError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "EMAIL_EXISTS"):
		return BadRequest("Email already in use", err)
	case strings.Contains(msg, "INVALID_LOGIN_CREDENTIALS"),
		strings.Contains(msg, "INVALID_PASSWORD"),
		strings.Contains(msg, "EMAIL_NOT_FOUND"):
		return Unauthorized("Invalid email or password", err)
	case strings.Contains(msg, "WEAK_PASSWORD"):
		return BadRequest("Password is too weak", err)
	case strings.Contains(msg, "CREDENTIAL_TOO_OLD_LOGIN_AGAIN"):
		return Unauthorized("Please sign in again to complete this action", err)
	case strings.Contains(msg, "PERMISSION_DENIED"), strings.Contains(msg, "permission-denied"):
		return Forbidden("Missing or insufficient permissions", err)
	}
	return Internal(msg, err)
}
