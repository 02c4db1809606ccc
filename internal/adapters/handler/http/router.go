package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vncsmyrnk/auth/internal/core/ports"
	"github.com/vncsmyrnk/auth/internal/logging"
)

func NewHandler(authHandler *AuthHandler, userHandler *UserHandler, healthHandler *HealthHandler, authenticator ports.Authenticator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler.Check)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Get("/signup/activate/{token}", authHandler.Activate)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(authenticator, logger))
			r.Get("/logout", authHandler.Logout)
			r.Get("/user", userHandler.GetMe)
		})
	})

	return r
}
