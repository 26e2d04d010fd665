package client

import (
	"context"
	"fmt"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

// AddFavorite marks a product as favorited on the backend.
func (c *Client) AddFavorite(ctx context.Context, id int64) error {
	body := map[string]any{"id": id}
	return c.do(ctx, "POST", "/favorites", body, nil)
}

// RemoveFavorite unmarks a favorited product on the backend.
func (c *Client) RemoveFavorite(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/favorites/%d", id), nil, nil)
}

// FetchFavorites returns the backend's wishlist snapshot, used to hydrate
// the local wishlist store.
func (c *Client) FetchFavorites(ctx context.Context) ([]domain.WishlistItem, error) {
	var resp []favoriteDTO
	if err := c.do(ctx, "GET", "/favorites", nil, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.WishlistItem, 0, len(resp))
	for _, d := range resp {
		item, err := mapFavorite(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
