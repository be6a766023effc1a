// Package cart maintains a shopper's working set of selected products and
// derives its monetary totals. The full line-item set is the unit of
// durability: it is saved through a Store after every mutation and loaded
// once when the cart is opened.
package cart

import (
	"sync"

	"github.com/rs/zerolog"

	"appmart/internal/model"
	"appmart/internal/pricing"
)

// Store persists cart snapshots between sessions.
type Store interface {
	// Load returns the saved line items, or an empty set when nothing
	// usable was saved.
	Load() ([]model.CartLine, error)

	// Save replaces the saved line items with the given set.
	Save(items []model.CartLine) error
}

// Cart is a shopper's in-progress selection. Line order is stable: existing
// lines keep their position and new lines append at the end.
type Cart struct {
	mu     sync.Mutex
	items  []model.CartLine
	store  Store
	logger zerolog.Logger
}

// New opens a cart backed by the given store. A missing or corrupt saved
// snapshot is treated as an empty cart, never as an error.
func New(store Store, logger zerolog.Logger) *Cart {
	c := &Cart{
		store:  store,
		logger: logger.With().Str("component", "cart").Logger(),
	}

	items, err := store.Load()
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to load saved cart, starting empty")
		items = nil
	}
	c.items = items

	return c
}

// AddItem adds a product to the cart. If a line with the same product id
// already exists its quantity increases by one; otherwise a new line with
// quantity 1 is appended. The quantity on the incoming item is ignored.
func (c *Cart) AddItem(item model.CartLine) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.persist()
			return
		}
	}

	item.Quantity = 1
	c.items = append(c.items, item)
	c.persist()
}

// RemoveItem deletes the line with the given product id. Removing an absent
// id leaves the cart unchanged.
func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist()
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []model.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.CartLine, len(c.items))
	copy(items, c.items)
	return items
}

// Totals recomputes subtotal, tax and total from the current lines. It is
// never cached; lines can change between calls.
func (c *Cart) Totals() pricing.Totals {
	c.mu.Lock()
	defer c.mu.Unlock()

	return pricing.Compute(c.items)
}

// persist saves the full line-item set. Callers hold the lock.
func (c *Cart) persist() {
	if err := c.store.Save(c.items); err != nil {
		c.logger.Warn().Err(err).Msg("failed to save cart")
	}
}
