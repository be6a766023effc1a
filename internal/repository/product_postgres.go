package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"appmart/internal/model"
)

const productColumns = "id, name, description, price, image, category, featured, rating, review_count, badge"

// GetProducts returns the full catalogue.
func (s *PostgresStore) GetProducts(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetProductByID retrieves a single product by id.
func (s *PostgresStore) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	var p model.Product
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image,
		&p.Category, &p.Featured, &p.Rating, &p.ReviewCount, &p.Badge,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// GetProductsByCategory filters the catalogue by category. The "All Apps"
// sentinel returns everything.
func (s *PostgresStore) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if category == model.CategoryAll {
		return s.GetProducts(ctx)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category = $1
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to query products by category")
		return nil, fmt.Errorf("failed to query products by category: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// GetFeaturedProducts returns products with the featured flag set.
func (s *PostgresStore) GetFeaturedProducts(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE featured = 1
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query featured products")
		return nil, fmt.Errorf("failed to query featured products: %w", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// CreateProduct inserts a new product and returns it with its assigned id.
func (s *PostgresStore) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	query := `
		INSERT INTO products (name, description, price, image, category, featured, rating, review_count, badge)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := s.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Image,
		product.Category, product.Featured, product.Rating, product.ReviewCount, product.Badge,
	).Scan(&product.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Debug().Int("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Image,
			&p.Category, &p.Featured, &p.Rating, &p.ReviewCount, &p.Badge,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
