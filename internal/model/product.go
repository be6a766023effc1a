package model

import "github.com/shopspring/decimal"

// CategoryAll is the sentinel category meaning "no filter".
const CategoryAll = "All Apps"

// Product represents an app listing in the catalogue.
//
// Price is numeric(10,2) and Rating numeric(3,1); both are carried as
// exact decimals end-to-end and marshal as quoted strings on the wire.
type Product struct {
	ID          int             `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Price       decimal.Decimal `json:"price" db:"price"`
	Image       string          `json:"image" db:"image"`
	Category    string          `json:"category" db:"category"`
	Featured    int             `json:"featured" db:"featured"`
	Rating      decimal.Decimal `json:"rating" db:"rating"`
	ReviewCount int             `json:"reviewCount" db:"review_count"`
	Badge       *string         `json:"badge" db:"badge"`
}
