package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"appmart/internal/model"
	"appmart/internal/pricing"
	"appmart/internal/repository"
)

// orderService implements OrderService.
type orderService struct {
	store  repository.Store
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(store repository.Store, logger zerolog.Logger) OrderService {
	return &orderService{
		store:  store,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder turns a checkout payload into a persisted order. Nothing is
// written unless the payload validates, every referenced product exists
// and the client's totals agree with the server's own computation. The
// order and all of its items are committed as one unit.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.CheckoutRequest) (*model.OrderConfirmation, error) {
	if req == nil {
		return nil, model.NewValidationError("checkout payload is required")
	}

	if err := model.Validate(req); err != nil {
		s.logger.Warn().Err(err).Msg("checkout payload rejected")
		return nil, err
	}

	for _, line := range req.Items {
		product, err := s.store.GetProductByID(ctx, line.ID)
		if err != nil {
			s.logger.Error().Err(err).Int("product_id", line.ID).Msg("failed to verify cart product")
			return nil, fmt.Errorf("failed to verify products: %w", err)
		}
		if product == nil {
			s.logger.Warn().Int("product_id", line.ID).Msg("cart references unknown product")
			return nil, model.NewValidationError(fmt.Sprintf("product %d does not exist", line.ID))
		}
	}

	// Client-side tax math runs in binary floats, so totals are compared
	// at cent precision. The exact decimal value is what gets persisted.
	totals := pricing.Compute(req.Items)
	if !totals.Total.Round(2).Equal(req.Total.Round(2)) {
		s.logger.Warn().
			Str("submitted_total", req.Total.String()).
			Str("computed_total", totals.Total.String()).
			Msg("submitted total does not match computed total")
		return nil, model.NewDomainError(model.ErrCodeTotalMismatch, "submitted total does not match the cart contents")
	}

	order := model.Order{
		UserID: nil,
		Total:  totals.Total,
		Status: model.OrderStatusCompleted,
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, line := range req.Items {
		items[i] = model.OrderItem{
			ProductID: line.ID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		}
	}

	created, createdItems, err := s.store.CreateOrderWithItems(ctx, order, items)
	if err != nil {
		s.logger.Error().Err(err).Int("item_count", len(items)).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int("order_id", created.ID).
		Int("item_count", len(createdItems)).
		Str("total", created.Total.String()).
		Msg("order placed")

	return &model.OrderConfirmation{
		OrderID: created.ID,
		Status:  created.Status,
		Total:   created.Total,
	}, nil
}

// GetByID retrieves an order together with its items.
func (s *orderService) GetByID(ctx context.Context, id int) (*model.OrderDetail, error) {
	order, err := s.store.GetOrderByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Int("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	items, err := s.store.GetOrderItemsByOrderID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to get order items")
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	return &model.OrderDetail{
		Order: *order,
		Items: items,
	}, nil
}
