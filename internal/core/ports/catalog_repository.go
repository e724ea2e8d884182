package ports

import (
	"context"

	"github.com/precify/pricing-api/internal/core/domain"
)

// ProductRepository persists catalog products. List returns products
// ordered by name.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

// LocationRepository persists delivery locations. List returns locations
// ordered by name.
type LocationRepository interface {
	List(ctx context.Context) ([]domain.Location, error)
	Insert(ctx context.Context, location *domain.Location) (*domain.Location, error)
}
