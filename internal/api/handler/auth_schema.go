package handler

import "github.com/shopstack/commerce-api/internal/core/domain"

// errorResponse documents the standard error envelope for swagger only; the
// central error handler renders it.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin user manager"`
	Avatar   string `json:"avatar"   validate:"omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerResponse struct {
	Message string       `json:"message"`
	Data    *domain.User `json:"data"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	Data *domain.User `json:"data"`
}
