package repository

import (
	"context"
	"errors"

	"islet-durians/internal/catalog"
)

// ErrCatalogNotFound is returned when no catalogue is stored under a name.
var ErrCatalogNotFound = errors.New("catalogue not found")

// CatalogRepository defines the data access operations for stored catalogues.
// A catalogue is addressed by name, so a repository satisfies catalog.Loader
// with the name as location.
type CatalogRepository interface {
	catalog.Loader

	// EnsureSchema creates the catalogue tables when they do not exist.
	EnsureSchema(ctx context.Context) error

	// Seed replaces the catalogue stored under name with src in one transaction.
	Seed(ctx context.Context, name string, src *catalog.Source) error

	// Names lists the stored catalogue names in order.
	Names(ctx context.Context) ([]string, error)
}
