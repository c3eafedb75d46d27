package ports

import (
	"context"

	"github.com/shopstack/commerce-api/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
//
// Create must rely on a storage-level unique index on email and return
// domain.ErrEmailTaken on a duplicate; the service-level existence check is
// advisory only and does not close the check-then-act race.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
