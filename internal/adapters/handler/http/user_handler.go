package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/auth/internal/core/ports"
)

type UserHandler struct {
	service ports.AuthService
	logger  *slog.Logger
}

func NewUserHandler(service ports.AuthService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeMessage(w, h.logger, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	user, err := h.service.CurrentUser(r.Context(), session)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, user)
}
