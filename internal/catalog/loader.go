package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"appmart/internal/model"
)

// Loader produces the products a catalogue should be seeded with.
type Loader interface {
	Load(ctx context.Context) ([]model.Product, error)
}

// builtinLoader serves the compiled-in sample catalogue.
type builtinLoader struct{}

// NewBuiltinLoader creates a loader that returns the built-in seed.
func NewBuiltinLoader() Loader {
	return builtinLoader{}
}

func (builtinLoader) Load(ctx context.Context) ([]model.Product, error) {
	return DefaultSeed(), nil
}

// fileLoader reads a JSON seed catalogue from the local file system.
type fileLoader struct {
	path   string
	logger zerolog.Logger
}

// NewFileLoader creates a loader that reads the seed catalogue from a JSON
// file containing an array of products.
func NewFileLoader(path string, logger zerolog.Logger) Loader {
	return &fileLoader{
		path:   path,
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

func (l *fileLoader) Load(ctx context.Context) ([]model.Product, error) {
	l.logger.Info().Str("file", l.path).Msg("loading seed catalogue")

	data, err := os.ReadFile(l.path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to read seed file")
		return nil, fmt.Errorf("failed to read seed file %s: %w", l.path, err)
	}

	products, err := decodeSeed(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", l.path).Msg("failed to decode seed file")
		return nil, fmt.Errorf("failed to decode seed file %s: %w", l.path, err)
	}

	l.logger.Info().Int("count", len(products)).Msg("seed catalogue loaded")
	return products, nil
}

func decodeSeed(data []byte) ([]model.Product, error) {
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}

	for i, p := range products {
		if p.Name == "" {
			return nil, fmt.Errorf("seed product %d has no name", i)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("seed product %q has a negative price", p.Name)
		}
	}
	return products, nil
}
