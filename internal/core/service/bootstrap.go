package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/precify/pricing-api/internal/core/domain"
	"github.com/precify/pricing-api/internal/core/ports"
)

// Default administrator provisioned into an empty store. The password is
// well-known on purpose; operators are expected to replace the account
// after first login.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "1234"
)

// EnsureAdmin guarantees the credential store is never empty: when the
// user count is zero it inserts the default administrator. The count check
// is only a fast path — if a concurrent cold start inserts the admin
// first, the store's unique username index turns our insert into
// domain.ErrUserExists, which counts as success. Returns whether this
// call created the account.
func EnsureAdmin(ctx context.Context, repo ports.UserRepository, hasher *PasswordHasher, logger zerolog.Logger) (bool, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := hasher.Hash(defaultAdminPassword)
	if err != nil {
		return false, fmt.Errorf("hash default password: %w", err)
	}

	_, err = repo.Insert(ctx, &domain.User{
		Username:     defaultAdminUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			logger.Info().Msg("default admin already provisioned by a concurrent start")
			return false, nil
		}
		return false, fmt.Errorf("insert default admin: %w", err)
	}

	logger.Warn().
		Str("username", defaultAdminUsername).
		Msg("default admin created with well-known password, change it")
	return true, nil
}
