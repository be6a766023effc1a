package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"appmart/internal/cache"
	"appmart/internal/catalog"
	"appmart/internal/config"
	"appmart/internal/database"
	"appmart/internal/handler"
	"appmart/internal/repository"
	"appmart/internal/router"
	"appmart/internal/service"
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
	logger.Info().Str("backend", cfg.Storage.Backend).Msg("starting appmart API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the backing store
	store, err := newStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer store.Close()

	// Seed the catalogue when it is empty
	loader, err := newSeedLoader(ctx, cfg.Seed, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize seed loader: %w", err)
	}
	if _, err := catalog.Bootstrap(ctx, store, loader, logger); err != nil {
		return fmt.Errorf("failed to bootstrap catalogue: %w", err)
	}

	// Initialize the optional product cache
	var productCache *cache.ProductCache
	if cfg.Cache.Enabled {
		productCache, err = cache.New(ctx, cfg.Cache, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to connect to redis, continuing without cache")
		} else {
			defer productCache.Close()
		}
	}

	// Initialize services
	productService := service.NewProductService(store, productCache, logger)
	orderService := service.NewOrderService(store, logger)
	authService := service.NewAuthService(store, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	// Initialize router
	mux := router.New(productHandler, orderHandler, authHandler, logger)

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

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newStore builds the configured Store implementation. The rest of the
// application is indifferent to which one is active.
func newStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Info().Msg("using in-memory store")
		return repository.NewMemoryStore(logger), nil

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return repository.NewPostgresStore(pool, logger), nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

// newSeedLoader builds the configured seed-catalogue loader.
func newSeedLoader(ctx context.Context, cfg config.SeedConfig, logger zerolog.Logger) (catalog.Loader, error) {
	switch cfg.Source {
	case config.SeedBuiltin:
		return catalog.NewBuiltinLoader(), nil

	case config.SeedFile:
		return catalog.NewFileLoader(cfg.Path, logger), nil

	case config.SeedS3:
		loader, err := catalog.NewS3Loader(ctx, cfg.Bucket, cfg.Path, cfg.Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 seed loader, falling back to built-in seed")
			return catalog.NewBuiltinLoader(), nil
		}
		return loader, nil

	default:
		return nil, fmt.Errorf("unknown seed source: %s", cfg.Source)
	}
}
