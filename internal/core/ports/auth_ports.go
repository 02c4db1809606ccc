package ports

import (
	"context"

	"github.com/vncsmyrnk/auth/internal/core/domain"
)

type SignupInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type LoginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (*domain.Session, error)
}

type AuthService interface {
	Authenticator
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Activate(ctx context.Context, token string) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*domain.LoginResult, error)
	Logout(ctx context.Context, session domain.Session) error
	CurrentUser(ctx context.Context, session domain.Session) (*domain.User, error)
}
