package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rapicredit/backoffice/internal/clients/core"
	"github.com/rapicredit/backoffice/internal/models"
)

// ErrorResponse is the standard error format for REST API responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteError writes a JSON error response.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteServiceError maps a service-layer error onto an HTTP response:
// validation failures are 400, refused decisions 409, upstream API
// errors keep their upstream status, anything else is a 502 since this
// service's own failures are panics handled elsewhere.
func WriteServiceError(w http.ResponseWriter, err error) {
	var invalid *models.ValidationError
	if errors.As(err, &invalid) {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: invalid.Message, Field: invalid.Field})
		return
	}

	var terminal *models.TerminalStateError
	if errors.As(err, &terminal) {
		WriteError(w, http.StatusConflict, terminal.Error())
		return
	}

	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		WriteError(w, apiErr.StatusCode, apiErr.Message)
		return
	}

	WriteError(w, http.StatusBadGateway, err.Error())
}

// RequireMethod validates the HTTP method and returns true if it matches.
// If it doesn't match, it writes a 405 response and returns false.
func RequireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", strings.Join(methods, ", "))
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	return false
}

// DecodeJSON reads and decodes JSON from the request body into v.
// Returns false and writes a 400 error if decoding fails.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if r.Body == nil {
		WriteError(w, http.StatusBadRequest, "Request body is required")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return false
	}
	return true
}

// PathParam extracts a path parameter from the URL path.
// For a pattern like /api/solicitudes/{id}/aprobar, calling
// PathParam(r, "/api/solicitudes/", "/aprobar") extracts the {id} part.
func PathParam(r *http.Request, prefix, suffix string) string {
	path := r.URL.Path
	if !strings.HasPrefix(path, prefix) {
		return ""
	}
	rest := path[len(prefix):]
	if suffix != "" {
		idx := strings.Index(rest, suffix)
		if idx < 0 {
			return rest
		}
		return rest[:idx]
	}
	// No suffix — return up to the next /
	if idx := strings.Index(rest, "/"); idx >= 0 {
		return rest[:idx]
	}
	return rest
}
