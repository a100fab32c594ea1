package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeBadInput             ErrorType = "bad_input"
	ErrorTypeWrongPassword        ErrorType = "wrong_password"
	ErrorTypeUnsupportedFormat    ErrorType = "unsupported_format"
	ErrorTypeUnsupportedOperation ErrorType = "unsupported_operation"
	ErrorTypeInternal             ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewBadInputError creates an error for a malformed or unreadable file
func NewBadInputError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeBadInput,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewWrongPasswordError creates an error for decryption with an incorrect password
func NewWrongPasswordError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeWrongPassword,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

// NewUnsupportedFormatError creates an error for a file format outside the accepted set
func NewUnsupportedFormatError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeUnsupportedFormat,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusUnsupportedMediaType,
	}
}

// NewUnsupportedOperationError creates an error for an unknown operation id
func NewUnsupportedOperationError(operation string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnsupportedOperation,
		Message:    "unsupported operation",
		Details:    operation,
		StatusCode: http.StatusNotFound,
	}
}

// NewInternalError creates an error for an uncategorized failure from an underlying library
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
