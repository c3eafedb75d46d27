package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. On failure it reports only
// the first violation, as a 400 with that field's human-readable message; the
// full issue list is deliberately not exposed.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return echo.NewHTTPError(http.StatusBadRequest, fieldError(ve[0]))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Username":
		if fe.Tag() == "max" {
			return "Username should not exceed 100 characters"
		}
		return "Username is required"
	case "Email":
		return "Invalid email address"
	case "Password":
		return "Password must be at least 6 characters long"
	case "Role":
		return "Invalid role"
	case "Name":
		return "Name is required"
	case "Description":
		return "Description is required"
	case "Price":
		return "Price must be a positive number"
	case "Quantity":
		return "Quantity must be a positive integer"
	}

	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
