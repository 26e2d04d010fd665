package storefront

import (
	"context"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/optimistic"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/store"
)

// WishlistBackend is the slice of the backend client the wishlist service needs.
type WishlistBackend interface {
	AddFavorite(ctx context.Context, id int64) error
	RemoveFavorite(ctx context.Context, id int64) error
	FetchFavorites(ctx context.Context) ([]domain.WishlistItem, error)
}

// WishlistService mirrors wishlist toggles on the backend optimistically.
type WishlistService struct {
	wishlist *store.Wishlist
	backend  WishlistBackend
	sessions SessionSource
	notifier notify.Notifier
}

func NewWishlistService(wishlist *store.Wishlist, backend WishlistBackend, sessions SessionSource, notifier notify.Notifier) *WishlistService {
	return &WishlistService{wishlist: wishlist, backend: backend, sessions: sessions, notifier: notifier}
}

func (s *WishlistService) requireIdentity() error {
	if s.sessions.Current().LoggedIn() {
		return nil
	}
	notify.Errorf(s.notifier, "sign in to manage your wishlist")
	return ErrNotLoggedIn
}

// Add favorites a product. Adding an already-favorited product is a no-op
// with no backend call.
func (s *WishlistService) Add(ctx context.Context, item domain.WishlistItem) error {
	if err := s.requireIdentity(); err != nil {
		return err
	}
	if s.wishlist.Has(item.ID) {
		return nil
	}

	return optimistic.Run(ctx, s.notifier, optimistic.Op{
		Label: "adding " + item.Name + " to wishlist",
		Apply: func() { s.wishlist.Add(item) },
		Revert: func() { s.wishlist.Remove(item.ID) },
		Call: func(ctx context.Context) error {
			return s.backend.AddFavorite(ctx, item.ID)
		},
	})
}

// Remove unfavorites a product. Removing an absent product is a no-op.
func (s *WishlistService) Remove(ctx context.Context, id int64) error {
	if err := s.requireIdentity(); err != nil {
		return err
	}

	prior, ok := s.wishlist.Get(id)
	if !ok {
		return nil
	}

	return optimistic.Run(ctx, s.notifier, optimistic.Op{
		Label: "removing " + prior.Name + " from wishlist",
		Apply: func() { s.wishlist.Remove(id) },
		Revert: func() { s.wishlist.Add(prior) },
		Call: func(ctx context.Context) error {
			return s.backend.RemoveFavorite(ctx, id)
		},
	})
}

// Toggle adds the item when absent and removes it when present.
func (s *WishlistService) Toggle(ctx context.Context, item domain.WishlistItem) error {
	if s.wishlist.Has(item.ID) {
		return s.Remove(ctx, item.ID)
	}
	return s.Add(ctx, item)
}

// Refresh hydrates the local wishlist from the backend snapshot
// (fetch-then-populate).
func (s *WishlistService) Refresh(ctx context.Context) error {
	if err := s.requireIdentity(); err != nil {
		return err
	}

	items, err := s.backend.FetchFavorites(ctx)
	if err != nil {
		notify.Errorf(s.notifier, "refreshing wishlist failed: %v", err)
		return err
	}
	s.wishlist.Replace(items)
	return nil
}
