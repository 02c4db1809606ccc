package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_CanAuthenticate(t *testing.T) {
	deleted := time.Now()

	tests := []struct {
		name string
		user User
		want bool
	}{
		{name: "active", user: User{Active: true}, want: true},
		{name: "inactive", user: User{Active: false}, want: false},
		{name: "soft deleted", user: User{Active: true, DeletedAt: &deleted}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.CanAuthenticate())
		})
	}
}

func TestAccessToken_Usable(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&AccessToken{ExpiresAt: now.Add(time.Minute)}).Usable(now))
	assert.False(t, (&AccessToken{ExpiresAt: now}).Usable(now))
	assert.False(t, (&AccessToken{ExpiresAt: now.Add(time.Hour), Revoked: true}).Usable(now))
}
