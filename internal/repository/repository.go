package repository

import (
	"context"

	"appmart/internal/model"
)

// Store is the uniform contract over the four entities. Two interchangeable
// implementations exist: an ephemeral in-process store and a PostgreSQL
// store. Callers may depend on nothing beyond this interface; the backend
// is selected once at startup by configuration.
//
// Lookup methods return (nil, nil) when the entity is absent; the service
// layer maps absence to domain errors.
type Store interface {
	// User methods. CreateUser fails with model.ErrUsernameTaken when the
	// username is already registered; uniqueness is enforced by the store
	// itself, not pre-checked by callers.
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)

	// Product methods. GetProductsByCategory treats model.CategoryAll as
	// "no filter". CreateProduct assigns the id; zero-valued featured,
	// rating and reviewCount and a nil badge are the documented defaults.
	GetProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id int) (*model.Product, error)
	GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	GetFeaturedProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (model.Product, error)

	// Order methods. CreateOrder assigns the id and creation timestamp and
	// defaults the status to "pending" when unset. CreateOrderWithItems
	// persists an order and all of its items as a single atomic unit:
	// either everything is written or nothing is.
	CreateOrder(ctx context.Context, order model.Order) (model.Order, error)
	GetOrderByID(ctx context.Context, id int) (*model.Order, error)
	CreateOrderItem(ctx context.Context, item model.OrderItem) (model.OrderItem, error)
	GetOrderItemsByOrderID(ctx context.Context, orderID int) ([]model.OrderItem, error)
	CreateOrderWithItems(ctx context.Context, order model.Order, items []model.OrderItem) (model.Order, []model.OrderItem, error)

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close()
}
