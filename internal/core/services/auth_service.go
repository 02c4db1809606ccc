package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

const (
	activationTokenLength = 60
	DefaultRememberMeTTL  = 7 * 24 * time.Hour
)

type AuthOptions struct {
	// RememberMeTTL is the token lifetime granted when remember_me is set.
	RememberMeTTL time.Duration
	// Random feeds activation token generation. Defaults to crypto/rand.
	Random io.Reader
	Logger *slog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

type AuthService struct {
	userRepo      ports.UserRepository
	tokens        ports.TokenIssuer
	hasher        ports.PasswordHasher
	notifier      ports.Notifier
	random        io.Reader
	rememberMeTTL time.Duration
	logger        *slog.Logger
}

func NewAuthService(userRepo ports.UserRepository, tokens ports.TokenIssuer, hasher ports.PasswordHasher, notifier ports.Notifier, opts AuthOptions) *AuthService {
	if opts.RememberMeTTL <= 0 {
		opts.RememberMeTTL = DefaultRememberMeTTL
	}
	if opts.Random == nil {
		opts.Random = rand.Reader
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &AuthService{
		userRepo:      userRepo,
		tokens:        tokens,
		hasher:        hasher,
		notifier:      notifier,
		random:        opts.Random,
		rememberMeTTL: opts.RememberMeTTL,
		logger:        opts.Logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	if err := validateSignup(input); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		return nil, emailTakenError()
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	activationToken, err := randomString(s.random, activationTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate activation token: %w", err)
	}

	user := &domain.User{
		Name:            input.Name,
		Email:           input.Email,
		PasswordHash:    hash,
		ActivationToken: activationToken,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, emailTakenError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// The user is already committed, so delivery failures are only logged.
	if err := s.notifier.SendActivation(ctx, user, activationToken); err != nil {
		s.logger.ErrorContext(ctx, "failed to send activation notification", "user_id", user.ID, "error", err)
	}

	s.logger.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return user, nil
}

func (s *AuthService) Activate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidActivationToken
	}

	user, err := s.userRepo.ActivateByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to activate user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidActivationToken
	}

	s.logger.InfoContext(ctx, "user activated", "user_id", user.ID)
	return user, nil
}

// Login answers every credential failure with domain.ErrUnauthorized, whether
// the email is unknown, the account inactive or deleted, or the password wrong.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*domain.LoginResult, error) {
	input.Email = normalizeEmail(input.Email)
	if err := validateLogin(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.CanAuthenticate() {
		return nil, domain.ErrUnauthorized
	}
	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domain.ErrUnauthorized
	}

	var ttl time.Duration
	if input.RememberMe {
		ttl = s.rememberMeTTL
	}

	issued, err := s.tokens.Issue(ctx, user.ID, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &domain.LoginResult{
		AccessToken: issued.Token,
		TokenType:   domain.TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, session domain.Session) error {
	if err := s.tokens.Revoke(ctx, session.TokenID); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, session domain.Session) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, bearerToken string) (*domain.Session, error) {
	if bearerToken == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.tokens.Resolve(ctx, bearerToken)
}

func emailTakenError() error {
	return domain.NewValidationError("email", domain.ErrEmailTaken.Error())
}
