package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

type AccessTokenRepository struct {
	db *sql.DB
}

func NewAccessTokenRepository(db *sql.DB) ports.AccessTokenRepository {
	return &AccessTokenRepository{db: db}
}

func (r *AccessTokenRepository) Create(ctx context.Context, token *domain.AccessToken) error {
	query := `
		INSERT INTO access_tokens (id, user_id, name, revoked, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, token.ID, token.UserID, token.Name, token.Revoked, token.CreatedAt, token.ExpiresAt)
	return err
}

func (r *AccessTokenRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AccessToken, error) {
	query := `
		SELECT id, user_id, name, revoked, created_at, expires_at
		FROM access_tokens
		WHERE id = $1
	`
	token := &domain.AccessToken{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&token.ID,
		&token.UserID,
		&token.Name,
		&token.Revoked,
		&token.CreatedAt,
		&token.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

func (r *AccessTokenRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE access_tokens SET revoked = true WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
