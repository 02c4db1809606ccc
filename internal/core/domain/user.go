package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	Active          bool       `json:"active"`
	ActivationToken string     `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// CanAuthenticate reports whether the user may exchange credentials for a token.
func (u *User) CanAuthenticate() bool {
	return u.Active && u.DeletedAt == nil
}
