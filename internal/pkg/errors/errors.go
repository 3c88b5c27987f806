package errors

import (
	"fmt"
	"strings"
)

// AppError is the error type handlers translate to HTTP responses.
// Errors carries the full list of validation messages when the error
// represents rejected request parameters.
type AppError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`
	StatusCode int      `json:"-"`
}

func (e *AppError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewValidation wraps the collected validation messages into a single
// client error. The messages are returned to the caller verbatim.
func NewValidation(messages []string) *AppError {
	return &AppError{
		Code:       CodeValidationFailed,
		Message:    "invalid request parameters",
		Errors:     messages,
		StatusCode: 400,
	}
}
