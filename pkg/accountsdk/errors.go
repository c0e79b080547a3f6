package accountsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fluxline/accountd/pkg/httpx"
)

// ============================================================================
// API Error Codes
// ============================================================================

const (
	ErrorCodeInvalidRequest  = "invalid_request"
	ErrorCodeValidationError = "validation_error"
	ErrorCodeUnauthorized    = "unauthorized"
	ErrorCodeForbidden       = "forbidden"
	ErrorCodeNotFound        = "not_found"
	ErrorCodeRateLimited     = "rate_limited"
	ErrorCodeServerError     = "server_error"
)

// ============================================================================
// APIError - the service's standard error envelope
// ============================================================================

// APIError is the error envelope every non-2xx response carries. It implements
// the error interface and is shared by the server (to write HTTP responses)
// and by the SDK client (to represent errors returned by the service).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "validation_error")
	Code string `json:"code"`

	// Message is a human-readable description of the error
	Message string `json:"message"`

	// Details holds field-level validation messages, keyed by field name.
	// Only populated for validation errors.
	Details map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	// ErrInvalidRequest is returned when the request body cannot be parsed or
	// is otherwise malformed.
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidRequest,
		Message:    "the request is malformed or missing required parameters",
	}

	// ErrUnauthorized is returned when the request carries no valid session
	// token, or when login credentials do not match.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeUnauthorized,
		Message:    "authentication required",
	}

	// ErrForbidden is returned when the authenticated user's role does not
	// permit the requested operation.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "insufficient permissions",
	}

	// ErrNotFound is returned when the requested resource does not exist or
	// has been deleted.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}

	// ErrServerError is returned when the service encountered an unexpected
	// condition that prevented it from fulfilling the request.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Message:    "internal server error",
	}

	// ErrMethodNotAllowed is returned when the HTTP method is not allowed.
	ErrMethodNotAllowed = &APIError{
		StatusCode: http.StatusMethodNotAllowed,
		Code:       ErrorCodeInvalidRequest,
		Message:    "method not allowed",
	}
)

// NewAPIError creates a new APIError with the given status code, error code,
// and message. Useful for one-off error messages that keep the envelope shape.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// NewValidationError creates a 422 validation error with field-level details.
func NewValidationError(message string, details map[string]string) *APIError {
	return &APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       ErrorCodeValidationError,
		Message:    message,
		Details:    details,
	}
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse attempts to parse an HTTP error response into a typed
// *APIError. Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	// Fallback: create a generic error from the status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
