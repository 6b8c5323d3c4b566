package repository

import (
	"context"
	"testing"
	"time"

	"islet-durians/internal/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a repository with its schema in place.
func setupTestDB(t *testing.T) (CatalogRepository, *pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	repo := NewCatalogRepository(pool, zerolog.Nop())
	require.NoError(t, repo.EnsureSchema(ctx))

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return repo, pool, cleanup
}

func TestCatalogRepository_SeedAndLoadDefault(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	src := catalog.Default()

	require.NoError(t, repo.Seed(ctx, "islet", src))

	loaded, err := repo.Load(ctx, "islet")
	require.NoError(t, err)
	assert.Equal(t, src.PaymentLinks, loaded.PaymentLinks)
	assert.Equal(t, src.Prices, loaded.Prices)
	assert.Equal(t, src.Aliases, loaded.Aliases)

	c, issues, err := catalog.Build(loaded)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, 15, c.Len())
}

func TestCatalogRepository_PreservesMismatchedCells(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	src := &catalog.Source{
		PaymentLinks: map[string]map[string]string{
			"Capri": {"1kg": "https://buy.stripe.com/capri-1kg", "2kg": ""},
		},
		Prices: map[string]map[string]string{
			"Capri":  {"1kg": "RM50", "1.5kg": "RM75"},
			"Orphan": {"1kg": "RM10"},
		},
	}

	require.NoError(t, repo.Seed(ctx, "drafts", src))

	loaded, err := repo.Load(ctx, "drafts")
	require.NoError(t, err)
	assert.Equal(t, src.PaymentLinks, loaded.PaymentLinks)
	assert.Equal(t, src.Prices, loaded.Prices)
	assert.Nil(t, loaded.Aliases)
}

func TestCatalogRepository_SeedReplaces(t *testing.T) {
	repo, pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, repo.Seed(ctx, "islet", catalog.Default()))

	replacement := &catalog.Source{
		PaymentLinks: map[string]map[string]string{"Bulk Sales": {catalog.DefaultSizeKey: "https://buy.stripe.com/bulk"}},
		Prices:       map[string]map[string]string{},
	}
	require.NoError(t, repo.Seed(ctx, "islet", replacement))

	loaded, err := repo.Load(ctx, "islet")
	require.NoError(t, err)
	assert.Equal(t, replacement.PaymentLinks, loaded.PaymentLinks)
	assert.Empty(t, loaded.Prices)
	assert.Nil(t, loaded.Aliases)

	var sizes int
	require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM catalog_sizes WHERE catalog = 'islet'").Scan(&sizes))
	assert.Equal(t, 1, sizes)
}

func TestCatalogRepository_LoadNotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Load(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogNotFound)
}

func TestCatalogRepository_Names(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	names, err := repo.Names(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, repo.Seed(ctx, "season-2026", catalog.Default()))
	require.NoError(t, repo.Seed(ctx, "islet", catalog.Default()))

	names, err = repo.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"islet", "season-2026"}, names)
}

func TestCatalogRepository_EnsureSchemaIdempotent(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, repo.EnsureSchema(context.Background()))
}

func TestCatalogRepository_ImplementsLoader(t *testing.T) {
	var _ catalog.Loader = NewCatalogRepository(nil, zerolog.Nop())
}

func TestCatalogRepository_SeedNilSource(t *testing.T) {
	repo := NewCatalogRepository(nil, zerolog.Nop())

	err := repo.Seed(context.Background(), "islet", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}
