package utils

import (
	"encoding/json"
	"net/http"

	"github.com/pratik-mahalle/calendrical/internal/pkg/errors"
)

// requestIDHeader is set on the response by the request id middleware
// before any handler runs
const requestIDHeader = "X-Request-ID"

// SuccessResponse wraps the result of a calendar operation
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse carries a failed operation. RequestID matches the server log.
type ErrorResponse struct {
	Success   bool        `json:"success"`
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorDetail contains error details
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// WriteJSON writes a JSON response. Results depend on the zone database
// and the clock, so they are never cached.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(data)
}

// WriteSuccess writes a successful JSON response
func WriteSuccess(w http.ResponseWriter, status int, data interface{}) error {
	return WriteJSON(w, status, SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an AppError with its status code
func WriteError(w http.ResponseWriter, err *errors.AppError) error {
	return writeError(w, err.StatusCode, ErrorDetail{
		Code:    err.Code,
		Message: err.Message,
		Details: err.Details,
	})
}

// WriteDomainError maps a calendar service error and writes it
func WriteDomainError(w http.ResponseWriter, err error) error {
	return WriteError(w, errors.FromDomain(err))
}

// WriteStatus writes an error that has no AppError behind it, such as a
// routing failure
func WriteStatus(w http.ResponseWriter, status int, code, message string) error {
	return writeError(w, status, ErrorDetail{Code: code, Message: message})
}

func writeError(w http.ResponseWriter, status int, detail ErrorDetail) error {
	return WriteJSON(w, status, ErrorResponse{
		Success:   false,
		Error:     detail,
		RequestID: w.Header().Get(requestIDHeader),
	})
}
