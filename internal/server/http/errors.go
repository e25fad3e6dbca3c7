package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkhin/worldforge/internal/errs"
)

// errorResponse is the JSON error envelope returned on every failure.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeError translates sentinel errors into an HTTP status and a stable
// error code. Unknown errors become an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal"
	msg := ""

	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		status, code, msg = http.StatusBadRequest, "invalid_input", err.Error()
	case errors.Is(err, errs.ErrWeakPassword):
		status, code = http.StatusBadRequest, "weak_password"
		msg = "password must be at least 10 characters long and contain at least one lowercase letter, one uppercase letter, one digit, and one non-alphanumeric character"
	case errors.Is(err, errs.ErrUnauthorized):
		status, code = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, errs.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrQuotaExceeded):
		status, code = http.StatusConflict, "quota_exceeded"
		msg = "cannot create more than the allowed number of worlds"
	case errors.Is(err, errs.ErrAlreadyExists):
		status, code = http.StatusConflict, "already_exists"
	}

	writeJSON(w, status, errorResponse{Error: code, Message: msg})
}

// writeJSON serializes v with the given status. Encoding failures are
// ignored; the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
