// Package memory holds mutex-guarded, process-local implementations of the
// repository ports. They mirror the postgres adapters' semantics and back the
// STORAGE_DRIVER=memory mode.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/auth/internal/core/domain"
	"github.com/vncsmyrnk/auth/internal/core/ports"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

func NewUserRepository() ports.UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]domain.User)}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email }), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.ID == id }), nil
}

func (r *UserRepository) ActivateByToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.users {
		if u.DeletedAt != nil || u.ActivationToken != token {
			continue
		}
		u.Active = true
		u.ActivationToken = ""
		u.UpdatedAt = time.Now().UTC()
		r.users[id] = u
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.DeletedAt == nil && r.emailTakenLocked(user.Email, uuid.Nil) {
		return domain.ErrEmailTaken
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if _, ok := r.users[user.ID]; ok {
		return fmt.Errorf("user %s already exists", user.ID)
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("update user %s: %w", user.ID, domain.ErrNotFound)
	}
	if user.DeletedAt == nil && r.emailTakenLocked(user.Email, user.ID) {
		return domain.ErrEmailTaken
	}

	user.UpdatedAt = time.Now().UTC()
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) find(match func(domain.User) bool) *domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.DeletedAt == nil && match(u) {
			found := u
			return &found
		}
	}
	return nil
}

func (r *UserRepository) emailTakenLocked(email string, except uuid.UUID) bool {
	for id, u := range r.users {
		if id != except && u.DeletedAt == nil && u.Email == email {
			return true
		}
	}
	return false
}
