package handler

import "github.com/shopstack/commerce-api/internal/core/domain"

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=1"`
	Description string  `json:"description" validate:"required,min=1"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Quantity    int     `json:"quantity"    validate:"required,gte=1"`
}

// updateProductRequest is a partial update: every field optional, same
// per-field constraints when present. Pointers distinguish "absent" from
// zero values.
type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity"    validate:"omitempty,gte=1"`
}

type productResponse struct {
	Data *domain.Product `json:"data"`
}

type productCreatedResponse struct {
	Message string          `json:"message"`
	Data    *domain.Product `json:"data"`
}

type productListResponse struct {
	Data []domain.Product `json:"data"`
}
