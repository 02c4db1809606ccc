package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/auth/internal/core/domain"
)

const (
	msgUnauthorized    = "Unauthorized"
	msgUnauthenticated = "Unauthenticated."
	msgInvalidData     = "The given data was invalid."
	msgInvalidToken    = "This activation token is invalid."
	msgInternal        = "Internal server error."
	msgInvalidBoolean  = "must be true or false"
)

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("failed to encode response", "status", status, "error", err)
	}
}

func writeMessage(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, messageResponse{Message: message})
}

// writeError maps domain errors to their HTTP representation. Anything not
// recognized is logged and reported as a 500 without details.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, logger, http.StatusUnprocessableEntity, validationResponse{Message: msgInvalidData, Errors: verr.Fields})
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, logger, http.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, domain.ErrInvalidActivationToken):
		writeMessage(w, logger, http.StatusNotFound, msgInvalidToken)
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, logger, http.StatusNotFound, "Not found.")
	default:
		logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMessage(w, logger, http.StatusInternalServerError, msgInternal)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v)
}
