package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Order represents a customer order. UserID is nil for anonymous checkouts.
type Order struct {
	ID        int             `json:"id" db:"id"`
	UserID    *int            `json:"userId" db:"user_id"`
	Total     decimal.Decimal `json:"total" db:"total"`
	Status    string          `json:"status" db:"status"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// OrderItem represents a line item in an order. Price is the unit price at
// the time of purchase, deliberately decoupled from the live product price.
type OrderItem struct {
	ID        int             `json:"id" db:"id"`
	OrderID   int             `json:"orderId" db:"order_id"`
	ProductID int             `json:"productId" db:"product_id"`
	Quantity  int             `json:"quantity" db:"quantity"`
	Price     decimal.Decimal `json:"price" db:"price"`
}

// CartLine is a single cart entry as submitted by the client at checkout.
type CartLine struct {
	ID       int             `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Image    string          `json:"image"`
}

// CheckoutRequest represents the checkout payload: billing fields, the cart
// lines and the client-computed totals. Card details are captured but never
// charged. Totals are recomputed server-side and compared, never trusted.
type CheckoutRequest struct {
	FirstName  string          `json:"firstName" validate:"required"`
	LastName   string          `json:"lastName" validate:"required"`
	Email      string          `json:"email" validate:"required,email"`
	CardNumber string          `json:"cardNumber" validate:"required,min=13,max=19"`
	ExpDate    string          `json:"expDate" validate:"required,min=4"`
	CVV        string          `json:"cvv" validate:"required,min=3,max=4"`
	Items      []CartLine      `json:"items" validate:"dive"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
}

// OrderConfirmation is the response payload for a placed order.
type OrderConfirmation struct {
	OrderID int             `json:"orderId"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total"`
}

// OrderDetail is the response payload for retrieving an order with its items.
type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}
