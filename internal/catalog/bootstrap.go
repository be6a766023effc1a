// Package catalog seeds the product catalogue at startup. Seeding is
// idempotent: it only runs when the catalogue is currently empty, so
// restarting the process never duplicates products.
package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"appmart/internal/repository"
)

// Bootstrap seeds the store with the loader's catalogue if, and only if,
// the store holds no products yet. It returns the number of products
// created (zero when the catalogue was already populated).
func Bootstrap(ctx context.Context, store repository.Store, loader Loader, logger zerolog.Logger) (int, error) {
	logger = logger.With().Str("component", "catalog-bootstrap").Logger()

	existing, err := store.GetProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check catalogue: %w", err)
	}

	if len(existing) > 0 {
		logger.Info().Int("count", len(existing)).Msg("catalogue already populated, skipping seed")
		return 0, nil
	}

	seed, err := loader.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load seed catalogue: %w", err)
	}

	for _, product := range seed {
		if _, err := store.CreateProduct(ctx, product); err != nil {
			return 0, fmt.Errorf("failed to seed product %q: %w", product.Name, err)
		}
	}

	logger.Info().Int("count", len(seed)).Msg("catalogue seeded")
	return len(seed), nil
}
