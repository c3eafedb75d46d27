package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopstack/commerce-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// sessionClaims is the JWT payload for a session token.
type sessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 session tokens. The signing secret
// is injected at construction so tests can use their own.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user, valid for the configured TTL.
// It returns the compact token and its expiry.
func (m *TokenManager) Issue(userID, email string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := sessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify parses and validates a token, returning the identity it encodes.
// Any failure (bad signature, wrong algorithm, malformed, expired) yields
// domain.ErrInvalidToken.
func (m *TokenManager) Verify(token string) (domain.Identity, error) {
	claims, err := m.parse(token)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	return domain.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// ExpiresAt reports when the given token expires. When the token cannot be
// decoded the configured TTL from now is returned, so blacklist entries for
// garbage tokens still age out.
func (m *TokenManager) ExpiresAt(token string) time.Time {
	claims, err := m.parse(token)
	if err != nil || claims.RegisteredClaims.ExpiresAt == nil {
		return time.Now().UTC().Add(m.ttl)
	}
	return claims.RegisteredClaims.ExpiresAt.Time
}

func (m *TokenManager) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
