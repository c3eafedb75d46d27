package ports

import (
	"context"

	"github.com/shopstack/commerce-api/internal/core/domain"
)

// CreateProductInput is a validated product-creation payload.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
}

// UpdateProductInput is a validated partial update. Nil fields are ignored.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int
}

// ProductService exposes catalog CRUD.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
