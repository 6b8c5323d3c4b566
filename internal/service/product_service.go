package service

import (
	"context"

	"islet-durians/internal/catalog"
	"islet-durians/internal/checkout"
	"islet-durians/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService over an immutable catalogue.
type productService struct {
	resolver *checkout.Resolver
	issues   []catalog.Issue
	logger   zerolog.Logger
}

// NewProductService creates a new product service. issues are the
// reconciliation problems reported when the catalogue was built.
func NewProductService(resolver *checkout.Resolver, issues []catalog.Issue, logger zerolog.Logger) ProductService {
	return &productService{
		resolver: resolver,
		issues:   issues,
		logger:   logger.With().Str("service", "product").Logger(),
	}
}

// List returns every product with display prices.
func (s *productService) List(ctx context.Context) []model.ProductSummary {
	products := s.resolver.Summaries()

	s.logger.Debug().Int("count", len(products)).Msg("listed products")

	return products
}

// GetByID retrieves a single product by its slug ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.ProductSummary, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, ok := s.resolver.Summary(id)
	if !ok {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return &product, nil
}

// Issues returns a copy of the reconciliation issues.
func (s *productService) Issues(ctx context.Context) []catalog.Issue {
	out := make([]catalog.Issue, len(s.issues))
	copy(out, s.issues)
	return out
}
