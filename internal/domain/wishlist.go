package domain

import "github.com/shopspring/decimal"

// WishlistItem is a favorited product. Wishlists have set semantics:
// at most one entry per product ID.
type WishlistItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Rating   float64         `json:"rating,omitempty"`
}
