// Package pricing computes cart monetary totals. The same computation runs
// on the client-side cart and on the server before an order is persisted,
// so the two can never drift.
package pricing

import (
	"github.com/shopspring/decimal"

	"appmart/internal/model"
)

// TaxRate is the flat sales tax applied to every order (7%).
var TaxRate = decimal.NewFromFloat(0.07)

// Totals holds the derived monetary amounts for a set of cart lines.
// All values are exact decimals; nothing is rounded.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Compute derives subtotal, tax and total from the given lines:
// subtotal = sum(price * quantity), tax = subtotal * TaxRate,
// total = subtotal + tax.
func Compute(lines []model.CartLine) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
