package mockapi

import (
	"encoding/json"
	"net/http"
	"time"
)

// apiError is the backend's error envelope.
type apiError struct {
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	TraceID    string    `json:"traceId,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	writeJSON(w, statusCode, apiError{
		StatusCode: statusCode,
		Message:    message,
		Timestamp:  time.Now().UTC(),
		TraceID:    r.Header.Get("X-Request-ID"),
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "corpo da requisição inválido")
		return false
	}
	return true
}
