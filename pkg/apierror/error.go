package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error status received from the backend, carrying the
// server-supplied message when the body was decodable.
type HTTPError struct {
	Status  int    `json:"statusCode"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned HTTP %d", e.Status)
}

// NetworkError indicates the request produced no response at all
// (connection refused, DNS failure, reset mid-flight).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError indicates the request exceeded the client's fixed deadline.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string { return "request timed out" }

func (e *TimeoutError) Unwrap() error { return e.Err }

// ValidationError is a client-side form validation failure. It never
// reaches the network.
type ValidationError struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError is a validation error for a specific form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string { return e.Message }

// WithFields adds field-level error details.
func (e *ValidationError) WithFields(fields ...FieldError) *ValidationError {
	e.Fields = fields
	return e
}

// Network wraps a transport failure.
func Network(err error) *NetworkError {
	return &NetworkError{Err: err}
}

// Timeout wraps a deadline failure.
func Timeout(err error) *TimeoutError {
	return &TimeoutError{Err: err}
}

// Validation creates a client-side validation error.
func Validation(message string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// FromResponse builds an HTTPError from a non-2xx response body. The
// backend sends {statusCode, message, details, traceId}; a body that
// fails to decode falls back to the standard text for the status.
func FromResponse(status int, body []byte) *HTTPError {
	apiErr := &HTTPError{}
	if len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}
	apiErr.Status = status
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// AsHTTP extracts an HTTPError from an error chain.
func AsHTTP(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an HTTPError with the given status.
func IsStatus(err error, status int) bool {
	httpErr, ok := AsHTTP(err)
	return ok && httpErr.Status == status
}

// IsTimeout reports whether err is a TimeoutError.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// UserMessage extracts a message suitable for display from any error
// produced by the client stack.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if httpErr, ok := AsHTTP(err); ok {
		return httpErr.Message
	}
	return err.Error()
}
