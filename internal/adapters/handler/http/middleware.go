package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

type contextKey string

const SessionKey contextKey = "session"

// RequireAuth resolves the Authorization bearer token and stores the resulting
// domain.Session in the request context. Requests without a usable token are
// answered with 401.
func RequireAuth(authenticator ports.Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeMessage(w, logger, http.StatusUnauthorized, msgUnauthenticated)
				return
			}

			session, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					logger.ErrorContext(r.Context(), "failed to authenticate request", "error", err)
				}
				writeMessage(w, logger, http.StatusUnauthorized, msgUnauthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, *session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(SessionKey).(domain.Session)
	return session, ok
}

func bearerToken(r *http.Request) string {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
