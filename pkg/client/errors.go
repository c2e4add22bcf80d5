package client

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned by the calendar endpoints
const (
	CodeIllegalArgument = "ILLEGAL_ARGUMENT"
	CodeIllegalTimeZone = "ILLEGAL_TIME_ZONE"
	CodeArithmetic      = "ARITHMETIC_FAILURE"
	CodeValidation      = "VALIDATION_ERROR"
	CodeRateLimited     = "RATE_LIMITED"
)

// APIError represents an error returned by the API
type APIError struct {
	StatusCode int             `json:"-"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	Details    json.RawMessage `json:"details,omitempty"`
	// RequestID identifies the failed request in the server log
	RequestID  string          `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("API error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("API error: %s (status: %d)", e.Message, e.StatusCode)
}

// IsNotFound returns true if the error is a 404 not found error
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsValidationError returns true if the request was rejected as malformed
func (e *APIError) IsValidationError() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsIllegalTimeZone returns true if the zone id was not recognised
func (e *APIError) IsIllegalTimeZone() bool {
	return e.Code == CodeIllegalTimeZone
}

// IsArithmetic returns true if the result is not representable
func (e *APIError) IsArithmetic() bool {
	return e.Code == CodeArithmetic
}

// IsRateLimited returns true if the server throttled the request
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// IsServerError returns true if the error is a 5xx server error
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}
