package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/precify/pricing-api/internal/core/domain"
	"github.com/precify/pricing-api/internal/core/ports"
)

// AuthService implements the login exchange: credential lookup, password
// verification, token issuance.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Login verifies the credentials and returns a signed token plus the
// matched user. An unknown username and a wrong password both yield
// domain.ErrInvalidCredentials so callers cannot tell which one failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	s.logger.Debug().Str("username", username).Msg("login attempt")

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
