package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"bankfront/internal/shared/validation"
)

// ErrorResponse is the body of every non-2xx answer. The front-end shows
// Message to the user.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors,omitempty"`
}

const msgValidationFailed = "Validation Failed"

var errInvalidID = errors.New("invalid id")

// now is swapped in tests.
var now = time.Now

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Int("status", status).Str("message", message).Msg("request failed")
	}
	writeJSON(w, status, ErrorResponse{
		Timestamp: now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
	})
}

// writeValidationError answers 400 with one message per invalid field.
func writeValidationError(w http.ResponseWriter, fields validation.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Timestamp: now(),
		Status:    http.StatusBadRequest,
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   msgValidationFailed,
		Errors:    fields,
	})
}

// decodeBody reads a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("invalid request body")
		writeError(w, r, http.StatusBadRequest, "Malformed JSON request")
		return false
	}
	return true
}

// pathID reads a numeric route variable.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}
