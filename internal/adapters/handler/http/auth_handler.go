package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

// expiresAtLayout renders token expiry as "YYYY-MM-DD HH:MM:SS" in UTC.
const expiresAtLayout = time.DateTime

type AuthHandler struct {
	authService ports.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService ports.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	RememberMe flexBool `json:"remember_me"`
}

// flexBool accepts true, false, 1, 0, "1" and "0". Any other value decodes
// without error and is reported as a validation failure instead.
type flexBool struct {
	value   bool
	invalid bool
}

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1", `"1"`:
		*b = flexBool{value: true}
	case "false", "0", `"0"`, "null":
		*b = flexBool{}
	default:
		*b = flexBool{invalid: true}
	}
	return nil
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expires_at"`
}

// Signup godoc
// @Summary      Registers a new user
// @Description  Creates an inactive user and sends an activation link to its email.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      422
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req ports.SignupInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.authService.Signup(r.Context(), req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeMessage(w, h.logger, http.StatusCreated, "Successfully created user!")
}

// Login godoc
// @Summary      Exchanges credentials for a bearer token
// @Description  remember_me extends the token lifetime to one week.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      401
// @Failure      422
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeMessage(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RememberMe.invalid {
		writeError(w, r, h.logger, domain.NewValidationError("remember_me", msgInvalidBoolean))
		return
	}

	result, err := h.authService.Login(r.Context(), ports.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe.value,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		ExpiresAt:   result.ExpiresAt.UTC().Format(expiresAtLayout),
	})
}

// Logout godoc
// @Summary      Logs the authenticated user out
// @Description  Revokes the bearer token used for this request.
// @Tags         auth
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		writeMessage(w, h.logger, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	if err := h.authService.Logout(r.Context(), session); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeMessage(w, h.logger, http.StatusOK, "Successfully logged out")
}

// Activate godoc
// @Summary      Confirms a user's email
// @Description  Redeems a one-time activation token and returns the activated user.
// @Tags         auth
// @Produce      json
// @Success      200
// @Failure      404
// @Router       /auth/signup/activate/{token} [get]
func (h *AuthHandler) Activate(w http.ResponseWriter, r *http.Request) {
	user, err := h.authService.Activate(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, user)
}
