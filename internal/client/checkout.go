package client

import "context"

// CheckoutSession points at the external checkout provider's hosted page.
// Payment itself is entirely the provider's concern.
type CheckoutSession struct {
	ID  string
	URL string
}

// CreateCheckoutSession asks the backend to open a checkout session for the
// current cart contents.
func (c *Client) CreateCheckoutSession(ctx context.Context) (CheckoutSession, error) {
	var resp checkoutSessionDTO
	if err := c.do(ctx, "POST", "/checkout/session", nil, &resp); err != nil {
		return CheckoutSession{}, err
	}
	if resp.SessionID == nil || resp.URL == nil {
		return CheckoutSession{}, &MappingError{Resource: "checkout session", Field: "session_id"}
	}
	return CheckoutSession{ID: *resp.SessionID, URL: *resp.URL}, nil
}
