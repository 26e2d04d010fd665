package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

// ListOrdersByStatus fetches all orders in one lifecycle state. Used by the
// admin order watch to poll for newly placed orders.
func (c *Client) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	path := "/orders?status=" + url.QueryEscape(string(status))

	var resp []orderDTO
	if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(resp))
	for _, d := range resp {
		order, err := mapOrder(d)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// ListMyOrders fetches the authenticated user's own orders.
func (c *Client) ListMyOrders(ctx context.Context) ([]domain.Order, error) {
	var resp []orderDTO
	if err := c.do(ctx, "GET", "/orders/mine", nil, &resp); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(resp))
	for _, d := range resp {
		order, err := mapOrder(d)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// UpdateOrderStatus transitions an order to a new lifecycle state
// (admin only). The backend enforces transition validity; the client
// rejects states it does not know.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	if _, err := domain.ParseOrderStatus(string(status)); err != nil {
		return err
	}
	body := map[string]string{"status": string(status)}
	return c.do(ctx, "PATCH", fmt.Sprintf("/orders/%d/status", orderID), body, nil)
}
