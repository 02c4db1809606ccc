package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/auth/internal/core/domain"
)

// UserRepository persists users. Lookups ignore soft-deleted rows and return
// (nil, nil) when nothing matches. Create returns domain.ErrEmailTaken when
// another non-deleted user already owns the email. ActivateByToken marks the
// owner of token active and clears the token atomically, returning (nil, nil)
// when no live user holds it.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ActivateByToken(ctx context.Context, token string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type Notifier interface {
	SendActivation(ctx context.Context, user *domain.User, token string) error
}
