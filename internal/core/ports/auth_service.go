package ports

import (
	"context"

	"github.com/shopstack/commerce-api/internal/core/domain"
)

// RegisterInput is a validated registration payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Avatar   string
}

// AuthService orchestrates the session lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
