package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/commerce-api/internal/api/metrics"
	"github.com/shopstack/commerce-api/internal/core/domain"
	"github.com/shopstack/commerce-api/internal/core/ports"
)

const (
	identityKey = "identity"
	tokenKey    = "auth_token"
)

// Auth is the request gate for protected routes. It extracts the bearer
// token, rejects blacklisted or invalid tokens, and injects the decoded
// identity into the request context. Every rejection is a 401 and terminates
// the chain; a blacklist lookup failure is propagated as-is (fail closed).
func Auth(verifier ports.TokenVerifier, blacklist ports.TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header missing")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
			}
			token := parts[1]

			blacklisted, err := blacklist.Contains(c.Request().Context(), token)
			if err != nil {
				return err
			}
			if blacklisted {
				metrics.AuthRejectionsTotal.WithLabelValues("blacklisted").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Token has been invalidated, login again")
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(identityKey, identity)
			c.Set(tokenKey, token)

			return next(c)
		}
	}
}

// IdentityFrom returns the identity injected by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(identityKey).(domain.Identity)
	return identity, ok
}

// TokenFrom returns the raw bearer token the request authenticated with.
func TokenFrom(c echo.Context) (string, bool) {
	token, ok := c.Get(tokenKey).(string)
	return token, ok && token != ""
}
