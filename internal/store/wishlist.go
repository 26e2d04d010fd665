package store

import (
	"sync"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

// Wishlist is the set of favorited products, keyed by product ID.
// Adding an ID that is already present is a no-op (first write wins).
type Wishlist struct {
	mu    sync.RWMutex
	items []domain.WishlistItem
}

func NewWishlist() *Wishlist {
	return &Wishlist{}
}

// Add inserts an item unless one with the same ID is already present.
func (w *Wishlist) Add(item domain.WishlistItem) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, existing := range w.items {
		if existing.ID == item.ID {
			return
		}
	}
	w.items = append(w.items, item)
}

// Remove deletes the entry with the given product ID, if present.
func (w *Wishlist) Remove(id int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.items {
		if w.items[i].ID == id {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return
		}
	}
}

// Replace swaps the entire wishlist for a server-fetched snapshot.
func (w *Wishlist) Replace(items []domain.WishlistItem) {
	snapshot := make([]domain.WishlistItem, len(items))
	copy(snapshot, items)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = snapshot
}

// Clear empties the wishlist.
func (w *Wishlist) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = nil
}

// Has reports whether the product ID is favorited.
func (w *Wishlist) Has(id int64) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, item := range w.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Get returns the entry for a product ID, if present.
func (w *Wishlist) Get(id int64) (domain.WishlistItem, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, item := range w.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.WishlistItem{}, false
}

// Items returns a copy of the wishlist in insertion order.
func (w *Wishlist) Items() []domain.WishlistItem {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snapshot := make([]domain.WishlistItem, len(w.items))
	copy(snapshot, w.items)
	return snapshot
}

// Len returns the number of favorited products.
func (w *Wishlist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}
