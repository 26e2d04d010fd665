package client

import (
	"context"
	"fmt"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

// AddCartItem mirrors a local cart add on the backend.
func (c *Client) AddCartItem(ctx context.Context, id int64, quantity int) error {
	body := map[string]any{"id": id, "quantity": quantity}
	return c.do(ctx, "POST", "/cart/items", body, nil)
}

// UpdateCartItem sets the quantity of a cart line on the backend. Callers
// never pass a quantity below 1; a decrement to zero goes through
// RemoveCartItem instead.
func (c *Client) UpdateCartItem(ctx context.Context, id int64, quantity int) error {
	body := map[string]any{"quantity": quantity}
	return c.do(ctx, "PUT", fmt.Sprintf("/cart/items/%d", id), body, nil)
}

// RemoveCartItem deletes a cart line on the backend.
func (c *Client) RemoveCartItem(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/cart/items/%d", id), nil, nil)
}

// ClearCart empties the backend cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, "DELETE", "/cart", nil, nil)
}

// FetchCart returns the backend's cart snapshot for full resync.
func (c *Client) FetchCart(ctx context.Context) ([]domain.CartItem, error) {
	var resp cartDTO
	if err := c.do(ctx, "GET", "/cart", nil, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(resp.Items))
	for _, d := range resp.Items {
		item, err := mapCartItem(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
