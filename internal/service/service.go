package service

import (
	"context"

	"appmart/internal/model"
)

// ProductService defines read operations over the product catalogue.
type ProductService interface {
	// List retrieves the full catalogue.
	List(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by id.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// ListByCategory retrieves products in a category; the "All Apps"
	// sentinel returns the full catalogue.
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)

	// ListFeatured retrieves products flagged for promotional display.
	ListFeatured(ctx context.Context) ([]model.Product, error)
}

// OrderService defines order placement and retrieval.
type OrderService interface {
	// PlaceOrder validates a checkout payload, recomputes its totals and
	// persists the order with all of its items atomically.
	PlaceOrder(ctx context.Context, req *model.CheckoutRequest) (*model.OrderConfirmation, error)

	// GetByID retrieves an order together with its items.
	GetByID(ctx context.Context, id int) (*model.OrderDetail, error)
}

// AuthService defines account registration and credential verification.
type AuthService interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, creds *model.Credentials) (model.User, error)

	// Login verifies a username/password pair and returns the account.
	Login(ctx context.Context, creds *model.Credentials) (model.User, error)
}
