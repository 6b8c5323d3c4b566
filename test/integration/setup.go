package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"islet-durians/internal/catalog"
	"islet-durians/internal/checkout"
	"islet-durians/internal/config"
	"islet-durians/internal/database"
	"islet-durians/internal/handler"
	"islet-durians/internal/middleware"
	"islet-durians/internal/repository"
	"islet-durians/internal/router"
	"islet-durians/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestAPIKey protects the admin routes of servers built by NewTestServer.
const TestAPIKey = "test-api-key"

// TestFallbackURL is the checkout fallback link of servers built by NewTestServer.
const TestFallbackURL = "https://pay.example/fallback"

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	Repo      repository.CatalogRepository
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and the
// catalogue schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := postgresContainer.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	// Create connection pool
	dbConfig := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "testuser",
		Password:        "testpass",
		Database:        "testdb",
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPool(ctx, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	repo := repository.NewCatalogRepository(pool, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		Repo:      repo,
	}
}

// ServerOptions tweaks servers built by NewTestServer.
type ServerOptions struct {
	RateLimiter *middleware.RateLimiter
	NoAPIKey    bool
}

// NewTestServer wires the API the way cmd/api does, over the catalogue that
// loader returns for location.
func NewTestServer(t *testing.T, loader catalog.Loader, location string, opts ServerOptions) (http.Handler, []catalog.Issue) {
	t.Helper()

	logger := zerolog.Nop()

	cat, issues, err := catalog.LoadOrDefault(context.Background(), loader, location, logger)
	if err != nil {
		t.Fatalf("failed to load catalogue: %v", err)
	}

	resolver := checkout.NewResolver(cat)

	productService := service.NewProductService(resolver, issues, logger)
	checkoutService := service.NewCheckoutService(resolver, TestFallbackURL, time.Second, 2*time.Second, logger)
	contactService := service.NewContactService("60165568420", "Ivan Lee", "Islet Durians", logger)

	handlers := router.Handlers{
		Product:  handler.NewProductHandler(productService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Contact:  handler.NewContactHandler(contactService, logger),
		Admin:    handler.NewAdminHandler(productService, logger),
	}

	routerOpts := router.Options{
		APIKey:        TestAPIKey,
		AllowedOrigin: "*",
		RateLimiter:   opts.RateLimiter,
	}
	if opts.NoAPIKey {
		routerOpts.APIKey = ""
	}

	return router.New(handlers, routerOpts, logger), issues
}
