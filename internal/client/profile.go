package client

import (
	"context"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (domain.User, error) {
	var resp profileDTO
	if err := c.do(ctx, "GET", "/profile", nil, &resp); err != nil {
		return domain.User{}, err
	}
	return mapProfile(resp)
}

// ProfileParams are the user-editable profile fields.
type ProfileParams struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// UpdateProfile updates the authenticated user's profile.
func (c *Client) UpdateProfile(ctx context.Context, params ProfileParams) (domain.User, error) {
	var resp profileDTO
	if err := c.do(ctx, "PUT", "/profile", params, &resp); err != nil {
		return domain.User{}, err
	}
	return mapProfile(resp)
}
