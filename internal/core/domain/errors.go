package domain

import "errors"

// Sentinel errors shared across services and repositories. The HTTP error
// handler maps each of these to a deterministic status code.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrProductNotFound    = errors.New("product not found")
)
