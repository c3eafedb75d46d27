package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopstack/commerce-api/internal/core/domain"
	"github.com/shopstack/commerce-api/internal/core/ports"
)

// AuthService implements registration, login, logout and current-user lookup.
type AuthService struct {
	users     ports.UserRepository
	blacklist ports.TokenBlacklist
	tokens    *TokenManager
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, blacklist ports.TokenBlacklist, tokens *TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, blacklist: blacklist, tokens: tokens, logger: logger}
}

// Register hashes the password and persists a new account. The FindByEmail
// check is advisory; the unique index on email is what actually prevents
// duplicates, and the repository maps its violation to the same
// domain.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	_, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Avatar:       input.Avatar,
		CreatedAt:    nowUTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password both surface as domain.ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, nil
}

// Logout blacklists the presented token until it would have expired anyway.
// The blacklist add is an upsert, so repeated logout with the same token
// succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	expiresAt := s.tokens.ExpiresAt(token)
	if err := s.blacklist.Add(ctx, token, expiresAt); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

// CurrentUser returns the account behind a verified identity.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
