package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading catalogue sources.
type Loader interface {
	// Load reads the catalogue stored at location. What a location means is up
	// to the implementation: a file path, an object key, or a catalogue name.
	Load(ctx context.Context, location string) (*Source, error)
}

// fileLoader implements Loader for JSON catalogue files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalogue file. Files ending in .gz are gunzipped.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Source, error) {
	l.logger.Info().Str("file", filePath).Msg("loading catalogue file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", filePath, err)
	}
	defer file.Close()

	src, err := Decode(file, isCompressed(filePath))
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode catalogue file")
		return nil, fmt.Errorf("failed to read catalogue file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products", len(src.PaymentLinks)).
		Msg("catalogue file loaded successfully")

	return src, nil
}

// builtinLoader serves the catalogue compiled into the binary.
type builtinLoader struct{}

// NewBuiltinLoader returns a Loader that ignores location and returns Default().
func NewBuiltinLoader() Loader {
	return builtinLoader{}
}

func (builtinLoader) Load(ctx context.Context, _ string) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Default(), nil
}
