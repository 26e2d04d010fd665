// Package store holds the in-process storefront state containers. The stores
// are pure state: no method performs IO, and all remote synchronization is
// layered on top by the storefront services.
package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

// Cart is an ordered collection of cart lines keyed by product ID.
// There is at most one line per product; quantities stay >= 1 (callers
// convert a decrement-to-zero into a removal).
//
// A single Cart instance is shared for the lifetime of the process and is
// safe for concurrent use.
type Cart struct {
	mu    sync.RWMutex
	items []domain.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add merges an item into the cart. If a line with the same product ID
// already exists its quantity is incremented by item.Quantity; otherwise a
// new line is appended. A non-positive quantity defaults to 1.
func (c *Cart) Add(item domain.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove deletes the line with the given product ID. Removing an absent ID
// is a no-op.
func (c *Cart) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity on the matching line directly, with no
// floor or ceiling. No-op when the ID is absent. Callers enforce the
// quantity >= 1 rule and call Remove instead of setting zero.
func (c *Cart) SetQuantity(id int64, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart. Used after a confirmed checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Replace swaps the entire cart contents for a server-fetched snapshot.
func (c *Cart) Replace(items []domain.CartItem) {
	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = snapshot
}

// Get returns the line for a product ID, if present.
func (c *Cart) Get(id int64) (domain.CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.CartItem{}, false
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make([]domain.CartItem, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Total returns the sum of all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return domain.CartTotal(c.items)
}
