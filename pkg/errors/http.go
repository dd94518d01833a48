package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// NewHTTPError returns a new HTTPError with the given code, message, and status code.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewNotFoundHTTPError returns a 404 error with the given message.
func NewNotFoundHTTPError(message string) *HTTPError {
	return &HTTPError{Code: http.StatusNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// NewUnavailableHTTPError returns a 503 error with the given message.
func NewUnavailableHTTPError(message string) *HTTPError {
	return &HTTPError{Code: http.StatusServiceUnavailable, Message: message, StatusCode: http.StatusServiceUnavailable}
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewValidationError creates a new validation error.
func NewValidationError(code int, field string, messages ...string) *ValidationError {
	return &ValidationError{Code: code, Field: field, Messages: messages}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, strings.Join(e.Messages, ", "))
}
