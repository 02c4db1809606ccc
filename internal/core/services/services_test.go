package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vncsmyrnk/auth/internal/adapters/hasher"
	"github.com/vncsmyrnk/auth/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

const testSecret = "test-secret"

type sentActivation struct {
	user  domain.User
	token string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentActivation
	err  error
}

func (n *recordingNotifier) SendActivation(ctx context.Context, user *domain.User, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentActivation{user: *user, token: token})
	return n.err
}

func (n *recordingNotifier) last(t *testing.T) sentActivation {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.sent, "no activation was sent")
	return n.sent[len(n.sent)-1]
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	svc      *AuthService
	users    ports.UserRepository
	tokens   ports.AccessTokenRepository
	notifier *recordingNotifier
	clock    *fakeClock
	logs     *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithRandom(t, nil)
}

func newTestEnvWithRandom(t *testing.T, random io.Reader) *testEnv {
	t.Helper()
	return newTestEnvWith(t, memory.NewUserRepository(), random)
}

func newTestEnvWith(t *testing.T, users ports.UserRepository, random io.Reader) *testEnv {
	t.Helper()

	tokens := memory.NewAccessTokenRepository()
	clock := &fakeClock{now: time.Now().UTC()}
	notifier := &recordingNotifier{}
	logs := &bytes.Buffer{}

	issuer := NewTokenService(tokens, testSecret, time.Hour, WithClock(clock.Now))
	svc := NewAuthService(users, issuer, hasher.NewBcrypt(bcrypt.MinCost), notifier, AuthOptions{
		Random: random,
		Logger: slog.New(slog.NewTextHandler(logs, nil)),
	})

	return &testEnv{svc: svc, users: users, tokens: tokens, notifier: notifier, clock: clock, logs: logs}
}

func validSignup() ports.SignupInput {
	return ports.SignupInput{
		Name:                 "Dev",
		Email:                "d@x.com",
		Password:             "admin1234",
		PasswordConfirmation: "admin1234",
	}
}

// signupAndActivate registers the default user and redeems its activation token.
func (e *testEnv) signupAndActivate(t *testing.T) *domain.User {
	t.Helper()
	ctx := context.Background()

	_, err := e.svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	user, err := e.svc.Activate(ctx, e.notifier.last(t).token)
	require.NoError(t, err)
	return user
}

// lostRaceUserRepository behaves as if another signup claimed the email
// between the uniqueness check and the insert.
type lostRaceUserRepository struct {
	ports.UserRepository
}

func (lostRaceUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, nil
}

func (lostRaceUserRepository) Create(ctx context.Context, user *domain.User) error {
	return domain.ErrEmailTaken
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }
