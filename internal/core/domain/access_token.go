package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	TokenTypeBearer         = "Bearer"
	PersonalAccessTokenName = "Personal Access Token"
)

type AccessToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Usable reports whether the token can still authenticate requests at now.
func (t *AccessToken) Usable(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

// IssuedToken is the result of minting a new bearer token.
type IssuedToken struct {
	Token     string
	TokenID   uuid.UUID
	ExpiresAt time.Time
}

// Session is the authenticated context resolved from a bearer token.
type Session struct {
	UserID    uuid.UUID
	TokenID   uuid.UUID
	ExpiresAt time.Time
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
