package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vncsmyrnk/auth/internal/core/domain"
)

type stubAuthenticator struct {
	session *domain.Session
	err     error
	got     string
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	s.got = token
	return s.session, s.err
}

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return errors.New("connection refused") }

func TestBearerToken(t *testing.T) {
	tests := map[string]string{
		"Bearer abc":     "abc",
		"bearer abc":     "abc",
		"Bearer  abc ":   "abc",
		"Basic dXNlcjpw": "",
		"Bearer":         "",
		"":               "",
	}

	for header, want := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			r.Header.Set("Authorization", header)
		}
		assert.Equal(t, want, bearerToken(r), header)
	}
}

func TestRequireAuth_StoresSession(t *testing.T) {
	session := &domain.Session{UserID: uuid.New(), TokenID: uuid.New()}
	auth := &stubAuthenticator{session: session}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var got domain.Session
	h := RequireAuth(auth, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "tok", auth.got)
	assert.Equal(t, *session, got)
}

func TestRequireAuth_Rejects(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	for name, err := range map[string]error{
		"unauthorized": domain.ErrUnauthorized,
		"store down":   errors.New("connection reset"),
	} {
		t.Run(name, func(t *testing.T) {
			h := RequireAuth(&stubAuthenticator{err: err}, logger)(next)

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", "Bearer tok")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Unauthenticated."}`, rec.Body.String())
		})
	}
}

func TestSessionFromContext_Missing(t *testing.T) {
	_, ok := SessionFromContext(context.Background())
	assert.False(t, ok)
}

func TestWriteError_Internal(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := httptest.NewRecorder()

	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), logger, errors.New("db exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db exploded")
}

func TestHealth_DatabaseDown(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHealthHandler(failingPinger{}, slog.New(slog.NewTextHandler(io.Discard, nil))).Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
}
