package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"islet-durians/internal/catalog"
	"islet-durians/internal/checkout"
	"islet-durians/internal/config"
	"islet-durians/internal/handler"
	"islet-durians/internal/middleware"
	"islet-durians/internal/router"
	"islet-durians/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("catalog_source", cfg.Catalog.Source).
		Msg("starting islet-durians API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the catalogue, falling back to the built-in one on failure
	loadCtx, loadCancel := context.WithTimeout(ctx, 30*time.Second)
	loader, closeLoader := newCatalogLoader(loadCtx, cfg, logger)
	cat, issues, err := catalog.LoadOrDefault(loadCtx, loader, cfg.Catalog.Location, logger)
	closeLoader()
	loadCancel()
	if err != nil {
		return fmt.Errorf("failed to initialise catalogue: %w", err)
	}

	resolver := checkout.NewResolver(cat)

	// Initialize services
	productService := service.NewProductService(resolver, issues, logger)
	checkoutService := service.NewCheckoutService(
		resolver,
		cfg.Checkout.FallbackURL,
		cfg.Checkout.SubmitDelay,
		cfg.Checkout.CloseDelay,
		logger,
	)
	contactService := service.NewContactService(cfg.Contact.Number, cfg.Contact.Name, cfg.Contact.ShopName, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:  handler.NewProductHandler(productService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Contact:  handler.NewContactHandler(contactService, logger),
		Admin:    handler.NewAdminHandler(productService, logger),
	}

	opts := router.Options{
		APIKey:        cfg.Auth.APIKey,
		AllowedOrigin: cfg.Server.AllowedOrigin,
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	if opts.APIKey == "" {
		logger.Info().Msg("API_KEY not set, admin routes disabled")
	}

	// Initialize router
	mux := router.New(handlers, opts, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Int("products", cat.Len()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
