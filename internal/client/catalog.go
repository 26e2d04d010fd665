package client

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

// ListCategories fetches the categories of one store domain.
func (c *Client) ListCategories(ctx context.Context, dom domain.StoreDomain) ([]domain.Category, error) {
	var resp []categoryDTO
	if err := c.do(ctx, "GET", fmt.Sprintf("/%s/categories", dom), nil, &resp); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(resp))
	for _, d := range resp {
		cat, err := mapCategory(d)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// ListItems fetches the items of one store domain, optionally filtered by
// category (zero means all).
func (c *Client) ListItems(ctx context.Context, dom domain.StoreDomain, categoryID int64) ([]domain.Product, error) {
	path := fmt.Sprintf("/%s/items", dom)
	if categoryID != 0 {
		path += "?category=" + strconv.FormatInt(categoryID, 10)
	}

	var resp []itemDTO
	if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.Product, 0, len(resp))
	for _, d := range resp {
		item, err := mapItem(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// GetItem fetches a single item.
func (c *Client) GetItem(ctx context.Context, dom domain.StoreDomain, id int64) (domain.Product, error) {
	var resp itemDTO
	if err := c.do(ctx, "GET", fmt.Sprintf("/%s/items/%d", dom, id), nil, &resp); err != nil {
		return domain.Product{}, err
	}
	return mapItem(resp)
}

// ItemParams are the writable fields of a catalog item (admin only).
type ItemParams struct {
	Name        string
	Description string
	Price       string // decimal string, e.g. "12.50"
	CategoryID  int64
}

func (p ItemParams) fields() map[string]string {
	return map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category_id": strconv.FormatInt(p.CategoryID, 10),
	}
}

// CreateItem creates a catalog item, uploading its image as multipart form
// data. A nil image sends the fields alone.
func (c *Client) CreateItem(ctx context.Context, dom domain.StoreDomain, params ItemParams, imageName string, image io.Reader) (domain.Product, error) {
	var resp itemDTO
	if err := c.upload(ctx, "POST", fmt.Sprintf("/%s/items", dom), params.fields(), "image", imageName, image, &resp); err != nil {
		return domain.Product{}, err
	}
	return mapItem(resp)
}

// UpdateItem updates a catalog item, optionally replacing its image.
func (c *Client) UpdateItem(ctx context.Context, dom domain.StoreDomain, id int64, params ItemParams, imageName string, image io.Reader) (domain.Product, error) {
	var resp itemDTO
	if err := c.upload(ctx, "PUT", fmt.Sprintf("/%s/items/%d", dom, id), params.fields(), "image", imageName, image, &resp); err != nil {
		return domain.Product{}, err
	}
	return mapItem(resp)
}

// DeleteItem removes a catalog item.
func (c *Client) DeleteItem(ctx context.Context, dom domain.StoreDomain, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/%s/items/%d", dom, id), nil, nil)
}

// CreateCategory creates a category with its banner image.
func (c *Client) CreateCategory(ctx context.Context, dom domain.StoreDomain, name, imageName string, image io.Reader) (domain.Category, error) {
	var resp categoryDTO
	fields := map[string]string{"name": name}
	if err := c.upload(ctx, "POST", fmt.Sprintf("/%s/categories", dom), fields, "image", imageName, image, &resp); err != nil {
		return domain.Category{}, err
	}
	return mapCategory(resp)
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, dom domain.StoreDomain, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/%s/categories/%d", dom, id), nil, nil)
}
