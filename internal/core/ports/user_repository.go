package ports

import (
	"context"

	"github.com/precify/pricing-api/internal/core/domain"
)

// UserRepository defines the contract of the durable credential store.
// Username uniqueness is enforced by the store itself; Insert surfaces a
// violation as domain.ErrUserExists.
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.User, error)
}
