package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

const DefaultAccessTokenTTL = time.Hour

// TokenService issues HS256-signed bearer tokens whose jti points at a
// persisted access token. The signature proves origin; the stored row decides
// whether the token is still valid.
type TokenService struct {
	repo       ports.AccessTokenRepository
	secret     []byte
	defaultTTL time.Duration
	now        func() time.Time
}

type TokenOption func(*TokenService)

func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

var _ ports.TokenIssuer = (*TokenService)(nil)

func NewTokenService(repo ports.AccessTokenRepository, secret string, defaultTTL time.Duration, opts ...TokenOption) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = DefaultAccessTokenTTL
	}

	s := &TokenService{
		repo:       repo,
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID, ttl time.Duration) (*domain.IssuedToken, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	// JWT timestamps have second precision.
	now := s.now().UTC().Truncate(time.Second)
	expiresAt := now.Add(ttl)
	tokenID := uuid.New()

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ID:        tokenID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	record := &domain.AccessToken{
		ID:        tokenID,
		UserID:    userID,
		Name:      domain.PersonalAccessTokenName,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store access token: %w", err)
	}

	return &domain.IssuedToken{
		Token:     signed,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *TokenService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	tokenID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed token id", domain.ErrUnauthorized)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", domain.ErrUnauthorized)
	}

	record, err := s.repo.GetByID(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}
	if record == nil || record.UserID != userID {
		return nil, fmt.Errorf("%w: unknown access token", domain.ErrUnauthorized)
	}
	if !record.Usable(s.now()) {
		return nil, fmt.Errorf("%w: access token revoked or expired", domain.ErrUnauthorized)
	}

	return &domain.Session{
		UserID:    record.UserID,
		TokenID:   record.ID,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

func (s *TokenService) Revoke(ctx context.Context, tokenID uuid.UUID) error {
	if err := s.repo.Revoke(ctx, tokenID); err != nil {
		return fmt.Errorf("failed to revoke access token: %w", err)
	}
	return nil
}
