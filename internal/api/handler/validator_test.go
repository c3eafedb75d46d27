package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func assertValidationMessage(t *testing.T, err error, want string) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", he.Code)
	}
	if he.Message != want {
		t.Fatalf("expected message %q, got %v", want, he.Message)
	}
}

func TestValidator_Register(t *testing.T) {
	v := NewValidator()

	valid := registerRequest{Username: "alice", Email: "a@x.com", Password: "123456", Role: "user"}
	if err := v.Validate(&valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name string
		req  registerRequest
		want string
	}{
		{
			name: "missing username",
			req:  registerRequest{Email: "a@x.com", Password: "123456", Role: "user"},
			want: "Username is required",
		},
		{
			name: "bad email",
			req:  registerRequest{Username: "alice", Email: "nope", Password: "123456", Role: "user"},
			want: "Invalid email address",
		},
		{
			name: "short password",
			req:  registerRequest{Username: "alice", Email: "a@x.com", Password: "12345", Role: "user"},
			want: "Password must be at least 6 characters long",
		},
		{
			name: "unknown role",
			req:  registerRequest{Username: "alice", Email: "a@x.com", Password: "123456", Role: "root"},
			want: "Invalid role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidationMessage(t, v.Validate(&tt.req), tt.want)
		})
	}
}

func TestValidator_Register_ReportsFirstIssueOnly(t *testing.T) {
	v := NewValidator()

	// Several violations at once; only the first (username) is reported.
	req := registerRequest{Email: "nope", Password: "123", Role: "root"}
	assertValidationMessage(t, v.Validate(&req), "Username is required")
}

func TestValidator_Login_PasswordBoundary(t *testing.T) {
	v := NewValidator()

	short := loginRequest{Email: "a@x.com", Password: "12345"}
	assertValidationMessage(t, v.Validate(&short), "Password must be at least 6 characters long")

	ok := loginRequest{Email: "a@x.com", Password: "123456"}
	if err := v.Validate(&ok); err != nil {
		t.Fatalf("6-char password rejected: %v", err)
	}
}

func TestValidator_CreateProduct_QuantityBoundary(t *testing.T) {
	v := NewValidator()

	zero := createProductRequest{Name: "Keyboard", Description: "mechanical", Price: 10, Quantity: 0}
	assertValidationMessage(t, v.Validate(&zero), "Quantity must be a positive integer")

	one := createProductRequest{Name: "Keyboard", Description: "mechanical", Price: 10, Quantity: 1}
	if err := v.Validate(&one); err != nil {
		t.Fatalf("quantity 1 rejected: %v", err)
	}

	free := createProductRequest{Name: "Sticker", Description: "free", Price: 0, Quantity: 1}
	if err := v.Validate(&free); err != nil {
		t.Fatalf("zero price rejected: %v", err)
	}
}

func TestValidator_UpdateProduct_OptionalFields(t *testing.T) {
	v := NewValidator()

	empty := updateProductRequest{}
	if err := v.Validate(&empty); err != nil {
		t.Fatalf("empty patch rejected: %v", err)
	}

	price := -1.0
	negative := updateProductRequest{Price: &price}
	assertValidationMessage(t, v.Validate(&negative), "Price must be a positive number")

	quantity := 0
	zeroQty := updateProductRequest{Quantity: &quantity}
	assertValidationMessage(t, v.Validate(&zeroQty), "Quantity must be a positive integer")

	name := "Keyboard"
	partial := updateProductRequest{Name: &name}
	if err := v.Validate(&partial); err != nil {
		t.Fatalf("partial patch rejected: %v", err)
	}
}
