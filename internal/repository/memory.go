package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"appmart/internal/model"
)

// MemoryStore is the ephemeral in-process Store implementation. All state
// lives behind one mutex, including the id counters, so concurrent writers
// can never hand out the same id twice. Listings preserve insertion order.
type MemoryStore struct {
	mu sync.RWMutex

	users      []model.User
	products   []model.Product
	orders     []model.Order
	orderItems []model.OrderItem

	userID      int
	productID   int
	orderID     int
	orderItemID int

	logger zerolog.Logger
}

// NewMemoryStore creates an empty in-memory store. The catalogue is seeded
// at startup through the same bootstrap path as the PostgreSQL store.
func NewMemoryStore(logger zerolog.Logger) *MemoryStore {
	return &MemoryStore{
		logger: logger.With().Str("store", "memory").Logger(),
	}
}

// GetUser retrieves a user by id.
func (s *MemoryStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// GetUserByUsername retrieves a user by username.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// CreateUser stores a new user, enforcing username uniqueness.
func (s *MemoryStore) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return model.User{}, model.ErrUsernameTaken
		}
	}

	s.userID++
	user.ID = s.userID
	s.users = append(s.users, user)

	s.logger.Debug().Int("user_id", user.ID).Str("username", user.Username).Msg("user created")
	return user, nil
}

// GetProducts returns the full catalogue in insertion order.
func (s *MemoryStore) GetProducts(ctx context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, len(s.products))
	copy(products, s.products)
	return products, nil
}

// GetProductByID retrieves a single product by id.
func (s *MemoryStore) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, nil
}

// GetProductsByCategory filters the catalogue by category. The "All Apps"
// sentinel returns everything.
func (s *MemoryStore) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if category == model.CategoryAll {
		return s.GetProducts(ctx)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}

// GetFeaturedProducts returns products with the featured flag set.
func (s *MemoryStore) GetFeaturedProducts(ctx context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0)
	for _, p := range s.products {
		if p.Featured == 1 {
			products = append(products, p)
		}
	}
	return products, nil
}

// CreateProduct stores a new product and assigns its id.
func (s *MemoryStore) CreateProduct(ctx context.Context, product model.Product) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productID++
	product.ID = s.productID
	s.products = append(s.products, product)

	s.logger.Debug().Int("product_id", product.ID).Str("name", product.Name).Msg("product created")
	return product, nil
}

// CreateOrder stores a new order, assigning its id and creation timestamp.
func (s *MemoryStore) CreateOrder(ctx context.Context, order model.Order) (model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createOrderLocked(order), nil
}

func (s *MemoryStore) createOrderLocked(order model.Order) model.Order {
	s.orderID++
	order.ID = s.orderID
	order.CreatedAt = time.Now().UTC()
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	s.orders = append(s.orders, order)
	return order
}

// GetOrderByID retrieves an order by id.
func (s *MemoryStore) GetOrderByID(ctx context.Context, id int) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, nil
}

// CreateOrderItem stores a new order item and assigns its id.
func (s *MemoryStore) CreateOrderItem(ctx context.Context, item model.OrderItem) (model.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createOrderItemLocked(item), nil
}

func (s *MemoryStore) createOrderItemLocked(item model.OrderItem) model.OrderItem {
	s.orderItemID++
	item.ID = s.orderItemID
	s.orderItems = append(s.orderItems, item)
	return item
}

// GetOrderItemsByOrderID returns the items belonging to an order, in
// creation order.
func (s *MemoryStore) GetOrderItemsByOrderID(ctx context.Context, orderID int) ([]model.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.OrderItem, 0)
	for _, item := range s.orderItems {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	return items, nil
}

// CreateOrderWithItems writes the order and all of its items under a single
// lock acquisition, so no reader ever observes the order without its items.
func (s *MemoryStore) CreateOrderWithItems(ctx context.Context, order model.Order, items []model.OrderItem) (model.Order, []model.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.createOrderLocked(order)

	createdItems := make([]model.OrderItem, len(items))
	for i, item := range items {
		item.OrderID = created.ID
		createdItems[i] = s.createOrderItemLocked(item)
	}

	s.logger.Debug().
		Int("order_id", created.ID).
		Int("item_count", len(createdItems)).
		Msg("order created with items")

	return created, createdItems, nil
}

// Ping always succeeds for the in-memory store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() {}
