package ports

import (
	"context"

	"github.com/precify/pricing-api/internal/core/domain"
)

// CatalogService exposes the product and location catalog operations.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateLocation(ctx context.Context, location domain.Location) (*domain.Location, error)
}
