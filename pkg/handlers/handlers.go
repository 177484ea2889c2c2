// Package handlers provides HTTP response utilities for JSON APIs.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
// Stage names the pipeline step that failed when one applies.
type ErrorBody struct {
	Error       string `json:"error"`
	Stage       string `json:"stage,omitempty"`
	Details     string `json:"details,omitempty"`
	RawResponse string `json:"rawResponse,omitempty"`
}

// RespondJSON writes a JSON response with the given status code and data.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes {"error": "<message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	RespondFailure(w, logger, status, ErrorBody{Error: err.Error()})
}

// RespondFailure logs and writes a structured error body.
func RespondFailure(w http.ResponseWriter, logger *slog.Logger, status int, body ErrorBody) {
	logger.Error("handler error", "error", body.Error, "stage", body.Stage, "status", status)
	RespondJSON(w, status, body)
}

// DecodeJSON decodes the request body into T.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}
