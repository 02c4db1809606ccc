package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/auth/internal/core/domain"
)

type AccessTokenRepository interface {
	Create(ctx context.Context, token *domain.AccessToken) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AccessToken, error)
	Revoke(ctx context.Context, id uuid.UUID) error
}

// TokenIssuer mints, resolves and revokes opaque bearer tokens.
// A ttl <= 0 passed to Issue selects the issuer's default lifetime.
type TokenIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID, ttl time.Duration) (*domain.IssuedToken, error)
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	Revoke(ctx context.Context, tokenID uuid.UUID) error
}
