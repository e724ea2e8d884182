package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/precify/pricing-api/internal/core/domain"
	"github.com/precify/pricing-api/internal/core/ports"
)

// CatalogService is thin pass-through persistence for products and
// locations. Beyond the required name, fields are stored as given and
// absent cost figures stay at zero.
type CatalogService struct {
	products  ports.ProductRepository
	locations ports.LocationRepository
	logger    zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, locations ports.LocationRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, locations: locations, logger: logger}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if product.Name == "" {
		return nil, domain.ErrMissingFields
	}

	created, err := s.products.Insert(ctx, &product)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("product", created.Name).Msg("product created")
	return created, nil
}

func (s *CatalogService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx)
}

func (s *CatalogService) CreateLocation(ctx context.Context, location domain.Location) (*domain.Location, error) {
	if location.Name == "" {
		return nil, domain.ErrMissingFields
	}

	created, err := s.locations.Insert(ctx, &location)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("location", created.Name).Msg("location created")
	return created, nil
}
