package ports

import (
	"context"

	"github.com/shopstack/commerce-api/internal/core/domain"
)

// ProductPatch carries the fields of a partial update. Nil means "leave
// unchanged".
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
}

// ProductRepository defines persistence for catalog items. Lookups by an
// unknown or malformed id return domain.ErrProductNotFound.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
