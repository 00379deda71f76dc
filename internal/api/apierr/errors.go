package apierr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/validation"
)

// APIError represents an API error response
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  validation.Errors `json:"fields,omitempty"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeInvalidStatus     = "INVALID_STATUS"
	CodeUnknownCollection = "UNKNOWN_COLLECTION"
	CodeNotFound          = "NOT_FOUND"
	CodeRequestCancelled  = "REQUEST_CANCELLED"
	CodeInternalError     = "INTERNAL_ERROR"
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
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var fields validation.Errors
	if errors.As(err, &fields) {
		return &httpError{http.StatusUnprocessableEntity, APIError{Code: CodeValidationFailed, Message: "Please correct the highlighted fields", Fields: fields}}
	}

	switch {
	case errors.Is(err, model.ErrInvalidStatus):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidStatus, Message: "Status must be pending, accepted or rejected"}}
	case errors.Is(err, model.ErrUnknownCollection):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeUnknownCollection, Message: "Unknown collection"}}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeRequestCancelled, Message: "Request was cancelled before it completed"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) error {
	return &httpError{http.StatusNotFound, APIError{Code: CodeNotFound, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
