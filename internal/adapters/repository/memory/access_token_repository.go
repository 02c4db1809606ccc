package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

type AccessTokenRepository struct {
	mu     sync.RWMutex
	tokens map[uuid.UUID]domain.AccessToken
}

func NewAccessTokenRepository() ports.AccessTokenRepository {
	return &AccessTokenRepository{tokens: make(map[uuid.UUID]domain.AccessToken)}
}

func (r *AccessTokenRepository) Create(ctx context.Context, token *domain.AccessToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tokens[token.ID]; ok {
		return fmt.Errorf("access token %s already exists", token.ID)
	}
	r.tokens[token.ID] = *token
	return nil
}

func (r *AccessTokenRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AccessToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[id]
	if !ok {
		return nil, nil
	}
	return &token, nil
}

func (r *AccessTokenRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if token, ok := r.tokens[id]; ok {
		token.Revoked = true
		r.tokens[id] = token
	}
	return nil
}
