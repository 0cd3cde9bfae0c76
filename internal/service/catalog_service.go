package service

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"storefront-service/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// CatalogSource is a provider of categories and products. The menu
// service client is the primary source; the seeded local snapshot is
// the configured fallback.
type CatalogSource interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	Products(ctx context.Context, categoryID, search string) ([]entity.Product, error)
}

// CatalogService composes the primary menu source with an explicitly
// configured fallback. With no fallback configured a primary failure is
// surfaced to the caller, never papered over.
type CatalogService struct {
	primary  CatalogSource
	fallback CatalogSource
}

// NewCatalogService creates a new instance of CatalogService. fallback
// may be nil when no secondary provider is configured.
func NewCatalogService(primary, fallback CatalogSource) *CatalogService {
	return &CatalogService{primary: primary, fallback: fallback}
}

// Categories returns the category list.
func (s *CatalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.primary.Categories(ctx)
	if err == nil {
		return categories, nil
	}

	if s.fallback == nil {
		logger.Error().Err(err).Msg("Error fetching categories from menu service")
		return nil, err
	}

	logger.Warn().Err(err).Msg("Menu service unavailable, serving categories from fallback catalog")
	return s.fallback.Categories(ctx)
}

// Products returns the menu filtered by category and search term.
func (s *CatalogService) Products(ctx context.Context, categoryID, search string) ([]entity.Product, error) {
	products, err := s.primary.Products(ctx, categoryID, search)
	if err == nil {
		return products, nil
	}

	if s.fallback == nil {
		logger.Error().Err(err).Msg("Error fetching products from menu service")
		return nil, err
	}

	logger.Warn().Err(err).Msg("Menu service unavailable, serving products from fallback catalog")
	return s.fallback.Products(ctx, categoryID, search)
}
