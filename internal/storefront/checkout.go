package storefront

import (
	"context"
	"errors"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/client"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/notify"
	"github.com/wealthZoneai/benjour-customer-sub000/internal/store"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutBackend is the slice of the backend client checkout needs.
type CheckoutBackend interface {
	CreateCheckoutSession(ctx context.Context) (client.CheckoutSession, error)
	ClearCart(ctx context.Context) error
}

// Checkout hands the cart to the external checkout provider. Payment never
// touches this codebase: Begin opens a hosted session, Confirm runs after
// the provider reports success.
type Checkout struct {
	cart     *store.Cart
	backend  CheckoutBackend
	sessions SessionSource
	notifier notify.Notifier
}

func NewCheckout(cart *store.Cart, backend CheckoutBackend, sessions SessionSource, notifier notify.Notifier) *Checkout {
	return &Checkout{cart: cart, backend: backend, sessions: sessions, notifier: notifier}
}

// Begin opens a checkout session for the current cart. The cart is left
// untouched; it is cleared only on confirmation.
func (c *Checkout) Begin(ctx context.Context) (client.CheckoutSession, error) {
	if !c.sessions.Current().LoggedIn() {
		notify.Errorf(c.notifier, "sign in to check out")
		return client.CheckoutSession{}, ErrNotLoggedIn
	}
	if c.cart.Len() == 0 {
		notify.Errorf(c.notifier, "your cart is empty")
		return client.CheckoutSession{}, ErrEmptyCart
	}

	cs, err := c.backend.CreateCheckoutSession(ctx)
	if err != nil {
		notify.Errorf(c.notifier, "starting checkout failed: %v", err)
		return client.CheckoutSession{}, err
	}
	return cs, nil
}

// Confirm clears the cart after the checkout provider confirmed the order.
// The local clear is unconditional; a failed backend clear is notified and
// reconciled by the next Refresh.
func (c *Checkout) Confirm(ctx context.Context) error {
	c.cart.Clear()

	if err := c.backend.ClearCart(ctx); err != nil {
		notify.Errorf(c.notifier, "clearing cart after checkout failed: %v", err)
		return err
	}
	notify.Infof(c.notifier, "order placed, thank you")
	return nil
}
