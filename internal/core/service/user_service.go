package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/precify/pricing-api/internal/core/domain"
	"github.com/precify/pricing-api/internal/core/ports"
)

// UserService implements the admin-only account management operations.
type UserService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// Create hashes the password and inserts the account. The role string is
// stored as given; nothing here restricts it to a known set. A duplicate
// username surfaces as domain.ErrUserExists from the store.
func (s *UserService) Create(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" || role == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

// List returns all accounts ordered by username. Password hashes never
// leave the service boundary in responses (json:"-" on the field).
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Delete removes the target account. Deleting the acting identity's own
// account is rejected before the store is touched.
func (s *UserService) Delete(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return domain.ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", targetID).Msg("user deleted")
	return nil
}
