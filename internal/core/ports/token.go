package ports

import (
	"context"
	"time"

	"github.com/shopstack/commerce-api/internal/core/domain"
)

// TokenVerifier checks a signed session token and extracts its identity.
// Verification fails with domain.ErrInvalidToken when the token is malformed,
// carries a bad signature, or has expired.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// TokenBlacklist is the deny-list backing logout. Tokens on the list are
// rejected even while cryptographically valid.
//
// Add must be idempotent: re-blacklisting the same token is not an error.
// Contains must treat entries whose expiry has passed as absent.
type TokenBlacklist interface {
	Add(ctx context.Context, token string, expiresAt time.Time) error
	Contains(ctx context.Context, token string) (bool, error)
}
