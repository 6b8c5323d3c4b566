package main

import (
	"context"

	"islet-durians/internal/catalog"
	"islet-durians/internal/config"
	"islet-durians/internal/database"
	"islet-durians/internal/repository"

	"github.com/rs/zerolog"
)

// newCatalogLoader returns the loader for the configured catalogue source and
// a function releasing its resources. Setup failures are logged and yield a
// nil loader, which makes catalog.LoadOrDefault use the built-in catalogue.
func newCatalogLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Loader, func()) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.SourceFile:
		logger.Info().Str("file", cfg.Catalog.Location).Msg("using local file system for catalogue")
		return catalog.NewFileLoader(logger), noop

	case config.SourceS3:
		fileLoader := catalog.NewFileLoader(logger)
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			return fileLoader, noop
		}
		return catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger), noop

	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger,
			database.ReadOnly(),
			database.StartupLoad(),
			database.ApplicationName("islet-durians-api"),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to connect to catalogue database")
			return nil, noop
		}
		return repository.NewCatalogRepository(pool, logger), pool.Close

	default:
		return catalog.NewBuiltinLoader(), noop
	}
}
