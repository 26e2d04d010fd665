// Package storefront is the layer between the UI and the state containers:
// it applies every cart and wishlist mutation optimistically against the
// backend and enforces the rules the pure stores leave to their callers.
package storefront

import (
	"context"
	"errors"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/optimistic"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/session"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/store"
)

var (
	ErrNotLoggedIn   = errors.New("sign in to continue")
	ErrItemNotInCart = errors.New("item is not in the cart")
)

// SessionSource exposes the current session snapshot.
type SessionSource interface {
	Current() session.Session
}

// CartBackend is the slice of the backend client the cart service needs.
type CartBackend interface {
	AddCartItem(ctx context.Context, id int64, quantity int) error
	UpdateCartItem(ctx context.Context, id int64, quantity int) error
	RemoveCartItem(ctx context.Context, id int64) error
	ClearCart(ctx context.Context) error
	FetchCart(ctx context.Context) ([]domain.CartItem, error)
}

// CartService mutates the local cart store optimistically and mirrors every
// change on the backend, reverting on failure.
type CartService struct {
	cart     *store.Cart
	backend  CartBackend
	sessions SessionSource
	notifier notify.Notifier
}

func NewCartService(cart *store.Cart, backend CartBackend, sessions SessionSource, notifier notify.Notifier) *CartService {
	return &CartService{cart: cart, backend: backend, sessions: sessions, notifier: notifier}
}

// requireIdentity blocks the action with a notification when no user is
// signed in. Actions never panic on a missing identity.
func (s *CartService) requireIdentity() error {
	if s.sessions.Current().LoggedIn() {
		return nil
	}
	notify.Errorf(s.notifier, "sign in to manage your cart")
	return ErrNotLoggedIn
}

// Add merges an item into the cart. A non-positive quantity defaults to 1.
func (s *CartService) Add(ctx context.Context, item domain.CartItem) error {
	if err := s.requireIdentity(); err != nil {
		return err
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	prior, existed := s.cart.Get(item.ID)
	return optimistic.Run(ctx, s.notifier, optimistic.Op{
		Label: "adding " + item.Name + " to cart",
		Apply: func() { s.cart.Add(item) },
		Revert: func() {
			if existed {
				s.cart.SetQuantity(item.ID, prior.Quantity)
			} else {
				s.cart.Remove(item.ID)
			}
		},
		Call: func(ctx context.Context) error {
			return s.backend.AddCartItem(ctx, item.ID, item.Quantity)
		},
	})
}

// Increment raises a line's quantity by one.
func (s *CartService) Increment(ctx context.Context, id int64) error {
	if err := s.requireIdentity(); err != nil {
		return err
	}

	prior, ok := s.cart.Get(id)
	if !ok {
		return ErrItemNotInCart
	}
	next := prior.Quantity + 1

	return optimistic.Run(ctx, s.notifier, optimistic.Op{
		Label: "updating " + prior.Name,
		Apply: func() { s.cart.SetQuantity(id, next) },
		Revert: func() { s.cart.SetQuantity(id, prior.Quantity) },
		Call: func(ctx context.Context) error {
			return s.backend.UpdateCartItem(ctx, id, next)
		},
	})
}

// Decrement lowers a line's quantity by one. At quantity 1 the decrement is
// a full removal: the quantity in the cart store never reaches zero, and the
// backend never sees an update below 1.
func (s *CartService) Decrement(ctx context.Context, id int64) error {
	if err := s.requireIdentity(); err != nil {
		return err
	}

	prior, ok := s.cart.Get(id)
	if !ok {
		return ErrItemNotInCart
	}
	if prior.Quantity <= 1 {
		return s.Remove(ctx, id)
	}
	next := prior.Quantity - 1

	return optimistic.Run(ctx, s.notifier, optimistic.Op{
		Label: "updating " + prior.Name,
		Apply: func() { s.cart.SetQuantity(id, next) },
		Revert: func() { s.cart.SetQuantity(id, prior.Quantity) },
		Call: func(ctx context.Context) error {
			return s.backend.UpdateCartItem(ctx, id, next)
		},
	})
}

// Remove deletes a line. Removing an absent line is a no-op.
func (s *CartService) Remove(ctx context.Context, id int64) error {
	if err := s.requireIdentity(); err != nil {
		return err
	}

	prior, ok := s.cart.Get(id)
	if !ok {
		return nil
	}

	return optimistic.Run(ctx, s.notifier, optimistic.Op{
		Label: "removing " + prior.Name + " from cart",
		Apply: func() { s.cart.Remove(id) },
		Revert: func() { s.cart.Add(prior) },
		Call: func(ctx context.Context) error {
			return s.backend.RemoveCartItem(ctx, id)
		},
	})
}

// Clear empties the cart locally and on the backend.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.requireIdentity(); err != nil {
		return err
	}

	snapshot := s.cart.Items()
	return optimistic.Run(ctx, s.notifier, optimistic.Op{
		Label: "clearing cart",
		Apply: func() { s.cart.Clear() },
		Revert: func() { s.cart.Replace(snapshot) },
		Call: func(ctx context.Context) error {
			return s.backend.ClearCart(ctx)
		},
	})
}

// Refresh replaces the local cart with the backend's snapshot. This is the
// recovery path for the known interleaved-request race: no per-request
// sequencing exists, a full resync wins.
func (s *CartService) Refresh(ctx context.Context) error {
	if err := s.requireIdentity(); err != nil {
		return err
	}

	items, err := s.backend.FetchCart(ctx)
	if err != nil {
		notify.Errorf(s.notifier, "refreshing cart failed: %v", err)
		return err
	}
	s.cart.Replace(items)
	return nil
}
