package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// StoreDomain distinguishes the two product catalogs the storefront sells.
type StoreDomain string

const (
	DomainGrocery StoreDomain = "grocery"
	DomainAlcohol StoreDomain = "alcohol"
)

var ErrUnknownDomain = errors.New("unknown store domain")

// ParseStoreDomain validates a catalog domain string.
func ParseStoreDomain(s string) (StoreDomain, error) {
	switch StoreDomain(s) {
	case DomainGrocery, DomainAlcohol:
		return StoreDomain(s), nil
	}
	return "", ErrUnknownDomain
}

type Category struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Image  string      `json:"image"`
	Domain StoreDomain `json:"domain"`
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Domain      StoreDomain     `json:"domain"`
	Rating      float64         `json:"rating,omitempty"`
	InStock     bool            `json:"in_stock"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
}

// AsCartItem converts a product to a cart line with the given quantity.
func (p Product) AsCartItem(quantity int) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: quantity,
	}
}

// AsWishlistItem converts a product to a wishlist entry.
func (p Product) AsWishlistItem() WishlistItem {
	return WishlistItem{
		ID:       p.ID,
		Name:     p.Name,
		Image:    p.Image,
		Price:    p.Price,
		Category: p.Category,
		Rating:   p.Rating,
	}
}
