// Package cache provides an optional Redis read-through cache for the
// product catalogue. The catalogue only changes at startup seeding, so
// entries just age out by TTL; there is no invalidation path.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"appmart/internal/config"
	"appmart/internal/model"
)

// Cache keys for product listings.
const (
	KeyAllProducts      = "products:all"
	KeyFeaturedProducts = "products:featured"
	categoryKeyPrefix   = "products:category:"
	productKeyPrefix    = "product:"
)

// CategoryKey returns the cache key for a category listing.
func CategoryKey(category string) string {
	return categoryKeyPrefix + category
}

// ProductCache caches product listings in Redis. All methods degrade
// gracefully: a Redis failure is logged and treated as a miss, never
// surfaced to the caller.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, cfg config.CacheConfig, logger zerolog.Logger) (*ProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger = logger.With().Str("component", "product-cache").Logger()
	logger.Info().Str("addr", cfg.Address).Msg("connected to redis")

	return &ProductCache{
		client: client,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
		logger: logger,
	}, nil
}

// GetList returns a cached product listing, with ok reporting a hit.
func (c *ProductCache) GetList(ctx context.Context, key string) ([]model.Product, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, ignoring")
		return nil, false
	}

	return products, true
}

// SetList caches a product listing under the given key.
func (c *ProductCache) SetList(ctx context.Context, key string, products []model.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to encode cache entry")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// GetProduct returns a cached single product, with ok reporting a hit.
func (c *ProductCache) GetProduct(ctx context.Context, id int) (*model.Product, bool) {
	data, err := c.client.Get(ctx, productKeyPrefix+strconv.Itoa(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Int("product_id", id).Msg("cache read failed")
		}
		return nil, false
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		c.logger.Warn().Err(err).Int("product_id", id).Msg("cache entry corrupt, ignoring")
		return nil, false
	}

	return &product, true
}

// SetProduct caches a single product.
func (c *ProductCache) SetProduct(ctx context.Context, product model.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		c.logger.Warn().Err(err).Int("product_id", product.ID).Msg("failed to encode cache entry")
		return
	}

	key := productKeyPrefix + strconv.Itoa(product.ID)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Close closes the Redis connection.
func (c *ProductCache) Close() error {
	return c.client.Close()
}
