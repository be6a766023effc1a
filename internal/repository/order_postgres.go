package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"appmart/internal/model"
)

// CreateOrder inserts a single order outside any transaction.
func (s *PostgresStore) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	order = withOrderDefaults(order)

	query := `
		INSERT INTO orders (user_id, total, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.pool.QueryRow(ctx, query, order.UserID, order.Total, order.Status, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return model.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Debug().Int("order_id", order.ID).Msg("order created")
	return order, nil
}

// GetOrderByID retrieves an order by id.
func (s *PostgresStore) GetOrderByID(ctx context.Context, id int) (*model.Order, error) {
	query := `
		SELECT id, user_id, total, status, created_at
		FROM orders
		WHERE id = $1
	`

	var o model.Order
	err := s.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().Int("order_id", id).Msg("order not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return &o, nil
}

// CreateOrderItem inserts a single order item.
func (s *PostgresStore) CreateOrderItem(ctx context.Context, item model.OrderItem) (model.OrderItem, error) {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.pool.QueryRow(ctx, query, item.OrderID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID)
	if err != nil {
		s.logger.Error().Err(err).Int("order_id", item.OrderID).Int("product_id", item.ProductID).
			Msg("failed to create order item")
		return model.OrderItem{}, fmt.Errorf("failed to create order item: %w", err)
	}

	return item, nil
}

// GetOrderItemsByOrderID returns the items belonging to an order.
func (s *PostgresStore) GetOrderItemsByOrderID(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query, orderID)
	if err != nil {
		s.logger.Error().Err(err).Int("order_id", orderID).Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	items := make([]model.OrderItem, 0)
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

// CreateOrderWithItems inserts the order and every item inside one
// transaction; a failure at any point rolls the whole order back.
func (s *PostgresStore) CreateOrderWithItems(ctx context.Context, order model.Order, items []model.OrderItem) (model.Order, []model.OrderItem, error) {
	order = withOrderDefaults(order)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return model.Order{}, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	orderQuery := `
		INSERT INTO orders (user_id, total, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err = tx.QueryRow(ctx, orderQuery, order.UserID, order.Total, order.Status, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return model.Order{}, nil, fmt.Errorf("failed to create order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	created := make([]model.OrderItem, len(items))
	if len(items) > 0 {
		batch := &pgx.Batch{}
		for i := range items {
			items[i].OrderID = order.ID
			batch.Queue(itemQuery, order.ID, items[i].ProductID, items[i].Quantity, items[i].Price)
		}

		results := tx.SendBatch(ctx, batch)
		for i := range items {
			created[i] = items[i]
			if err = results.QueryRow().Scan(&created[i].ID); err != nil {
				results.Close()
				s.logger.Error().Err(err).Int("order_id", order.ID).Msg("failed to create order item")
				return model.Order{}, nil, fmt.Errorf("failed to create order item: %w", err)
			}
		}
		if err = results.Close(); err != nil {
			return model.Order{}, nil, fmt.Errorf("failed to close batch: %w", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int("order_id", order.ID).Msg("failed to commit transaction")
		return model.Order{}, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Debug().
		Int("order_id", order.ID).
		Int("item_count", len(created)).
		Msg("order created with items")

	return order, created, nil
}

func withOrderDefaults(order model.Order) model.Order {
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	order.CreatedAt = time.Now().UTC()
	return order
}
