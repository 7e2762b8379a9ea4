// Package errors defines the application error taxonomy exposed to callers.
package errors

import (
	"net/http"

	"simbridge/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Activation lifecycle errors
	ErrActivationNotFound = NewBaseError(
		http.StatusNotFound,
		"ACTIVATION_NOT_FOUND",
		"activation not found",
		"",
	)

	ErrSMSNotFound = NewBaseError(
		http.StatusNotFound,
		"SMS_NOT_FOUND",
		"sms record not found",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"activation status outside protocol range",
		"",
	)

	// Capacity errors
	ErrNoCapacity = NewBaseError(
		http.StatusOK, // protocol-level NO_NUMBERS, not an HTTP failure
		"NO_NUMBERS",
		"no numbers available for the requested criteria",
		"",
	)

	ErrModemUnavailable = NewBaseError(
		http.StatusConflict,
		"MODEM_UNAVAILABLE",
		"modem was reserved by a concurrent request",
		"",
	)

	// Infrastructure errors
	ErrPersistenceFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"durable write failed after bounded retries",
		"",
	)

	ErrHubUnreachable = NewBaseError(
		http.StatusBadGateway,
		"HUB_UNREACHABLE",
		"hub did not acknowledge the request",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_API_KEY",
		"invalid API key",
		"",
	)
)
