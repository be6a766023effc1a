package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"appmart/internal/cache"
	"appmart/internal/model"
	"appmart/internal/repository"
)

// productService implements ProductService over the store, with an optional
// Redis read-through cache in front of it.
type productService struct {
	store  repository.Store
	cache  *cache.ProductCache // nil when caching is disabled
	logger zerolog.Logger
}

// NewProductService creates a new product service. cache may be nil.
func NewProductService(store repository.Store, productCache *cache.ProductCache, logger zerolog.Logger) ProductService {
	return &productService{
		store:  store,
		cache:  productCache,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves the full catalogue.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx, cache.KeyAllProducts); ok {
			return products, nil
		}
	}

	products, err := s.store.GetProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	if s.cache != nil {
		s.cache.SetList(ctx, cache.KeyAllProducts, products)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products, nil
}

// GetByID retrieves a single product by id.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	if s.cache != nil {
		if product, ok := s.cache.GetProduct(ctx, id); ok {
			return product, nil
		}
	}

	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	if s.cache != nil {
		s.cache.SetProduct(ctx, *product)
	}

	return product, nil
}

// ListByCategory retrieves products in a category.
func (s *productService) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	key := cache.CategoryKey(category)
	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx, key); ok {
			return products, nil
		}
	}

	products, err := s.store.GetProductsByCategory(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list products by category")
		return nil, fmt.Errorf("failed to get products by category: %w", err)
	}

	if s.cache != nil {
		s.cache.SetList(ctx, key, products)
	}

	s.logger.Debug().Str("category", category).Int("count", len(products)).Msg("retrieved products by category")
	return products, nil
}

// ListFeatured retrieves featured products.
func (s *productService) ListFeatured(ctx context.Context) ([]model.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx, cache.KeyFeaturedProducts); ok {
			return products, nil
		}
	}

	products, err := s.store.GetFeaturedProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list featured products")
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}

	if s.cache != nil {
		s.cache.SetList(ctx, cache.KeyFeaturedProducts, products)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved featured products")
	return products, nil
}
