package handler

import (
	"net/http"

	"github.com/SK1028846/fantasy-football-pipeline/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeMissingField       = apierr.CodeMissingField
	CodeInvalidType        = apierr.CodeInvalidType
	CodeEmptySide          = apierr.CodeEmptySide
	CodeInvalidQuery       = apierr.CodeInvalidQuery
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeUsernameExists     = apierr.CodeUsernameExists
	CodeUserNotFound       = apierr.CodeUserNotFound
	CodeTradeNotFound      = apierr.CodeTradeNotFound
	CodeGradingFailure     = apierr.CodeGradingFailure
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewMissingFieldError creates a missing required field error
func NewMissingFieldError(field string) error {
	return apierr.NewMissingFieldError(field)
}

// NewInvalidTypeError creates a wrong field type error
func NewInvalidTypeError(field string) error {
	return apierr.NewInvalidTypeError(field)
}

// NewInvalidQueryError creates a malformed query parameter error
func NewInvalidQueryError(message string) error {
	return apierr.NewInvalidQueryError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
