package ports

import (
	"context"

	"github.com/precify/pricing-api/internal/core/domain"
)

// UserService covers the admin-only account management operations.
type UserService interface {
	Create(ctx context.Context, username, password, role string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, actorID, targetID string) error
}
