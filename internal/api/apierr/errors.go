package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/auth"
	"github.com/SK1028846/fantasy-football-pipeline/internal/services/grading"
)

// APIError is the error body returned to clients. It is serialized at the
// top level of the response so clients can always read "message".
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeMissingField       = "MISSING_FIELD"
	CodeInvalidType        = "INVALID_TYPE"
	CodeEmptySide          = "EMPTY_SIDE"
	CodeInvalidQuery       = "INVALID_QUERY"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeTradeNotFound      = "TRADE_NOT_FOUND"
	CodeGradingFailure     = "GRADING_FAILURE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(he.apiError)
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrEmptySide):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptySide, "Both sides of a trade must include at least one player"}}
	case errors.Is(err, model.ErrInvalidPage):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidQuery, "page must be a positive integer"}}
	case errors.Is(err, model.ErrInvalidLimit):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidQuery, "limit must be between 1 and 100"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrTradeNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTradeNotFound, "Trade not found"}}

	// Map service errors
	case errors.Is(err, grading.ErrGradingFailure):
		return &httpError{http.StatusInternalServerError, APIError{CodeGradingFailure, "Could not grade trade"}}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewMissingFieldError creates an error for a required field absent from the body
func NewMissingFieldError(field string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeMissingField, fmt.Sprintf("Missing required field: %s", field)}}
}

// NewInvalidTypeError creates an error for a field of the wrong JSON type
func NewInvalidTypeError(field string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidType, fmt.Sprintf("Field %s must be an array of strings", field)}}
}

// NewInvalidQueryError creates an error for a malformed query parameter
func NewInvalidQueryError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidQuery, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
