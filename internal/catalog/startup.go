package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// LoadOrDefault loads the catalogue at location and builds it. When loading
// or building fails the built-in catalogue is used instead, so the shop keeps
// serving with known-good links. Issues are logged as warnings.
func LoadOrDefault(ctx context.Context, loader Loader, location string, logger zerolog.Logger) (*Catalog, []Issue, error) {
	logger = logger.With().Str("component", "catalog").Logger()

	c, issues, err := loadAndBuild(ctx, loader, location)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("location", location).
			Msg("failed to load catalogue, using built-in catalogue")

		c, issues, err = Build(Default())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build built-in catalogue: %w", err)
		}
	}

	for _, issue := range issues {
		logger.Warn().
			Str("product", issue.Product).
			Str("size", issue.Size).
			Str("kind", string(issue.Kind)).
			Str("detail", issue.Detail).
			Msg("catalogue issue")
	}

	logger.Info().
		Int("products", c.Len()).
		Int("issues", len(issues)).
		Msg("catalogue ready")

	return c, issues, nil
}

func loadAndBuild(ctx context.Context, loader Loader, location string) (*Catalog, []Issue, error) {
	if loader == nil {
		return nil, nil, fmt.Errorf("no catalogue loader configured")
	}

	src, err := loader.Load(ctx, location)
	if err != nil {
		return nil, nil, err
	}

	return Build(src)
}
