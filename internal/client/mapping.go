package client

import (
	"github.com/shopspring/decimal"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

func mapCategory(d categoryDTO) (domain.Category, error) {
	if d.ID == nil {
		return domain.Category{}, &MappingError{Resource: "category", Field: "id"}
	}
	if d.Name == nil {
		return domain.Category{}, &MappingError{Resource: "category", Field: "name"}
	}
	return domain.Category{
		ID:     *d.ID,
		Name:   *d.Name,
		Image:  d.Image,
		Domain: domain.StoreDomain(d.Domain),
	}, nil
}

func mapItem(d itemDTO) (domain.Product, error) {
	if d.ID == nil {
		return domain.Product{}, &MappingError{Resource: "item", Field: "id"}
	}
	if d.Name == nil {
		return domain.Product{}, &MappingError{Resource: "item", Field: "name"}
	}
	if d.Price == nil || *d.Price < 0 {
		return domain.Product{}, &MappingError{Resource: "item", Field: "price"}
	}
	return domain.Product{
		ID:          *d.ID,
		Name:        *d.Name,
		Description: d.Description,
		Price:       decimal.NewFromFloat(*d.Price),
		Image:       d.Image,
		Category:    d.Category,
		Domain:      domain.StoreDomain(d.Domain),
		Rating:      d.Rating,
		InStock:     d.InStock,
	}, nil
}

func mapCartItem(d cartItemDTO) (domain.CartItem, error) {
	if d.ID == nil {
		return domain.CartItem{}, &MappingError{Resource: "cart item", Field: "id"}
	}
	if d.Name == nil {
		return domain.CartItem{}, &MappingError{Resource: "cart item", Field: "name"}
	}
	if d.Price == nil || *d.Price < 0 {
		return domain.CartItem{}, &MappingError{Resource: "cart item", Field: "price"}
	}
	if d.Quantity == nil || *d.Quantity < 1 {
		return domain.CartItem{}, &MappingError{Resource: "cart item", Field: "quantity"}
	}
	return domain.CartItem{
		ID:       *d.ID,
		Name:     *d.Name,
		Price:    decimal.NewFromFloat(*d.Price),
		Image:    d.Image,
		Quantity: *d.Quantity,
	}, nil
}

func mapFavorite(d favoriteDTO) (domain.WishlistItem, error) {
	if d.ID == nil {
		return domain.WishlistItem{}, &MappingError{Resource: "favorite", Field: "id"}
	}
	if d.Name == nil {
		return domain.WishlistItem{}, &MappingError{Resource: "favorite", Field: "name"}
	}
	if d.Price == nil || *d.Price < 0 {
		return domain.WishlistItem{}, &MappingError{Resource: "favorite", Field: "price"}
	}
	return domain.WishlistItem{
		ID:       *d.ID,
		Name:     *d.Name,
		Image:    d.Image,
		Price:    decimal.NewFromFloat(*d.Price),
		Category: d.Category,
		Rating:   d.Rating,
	}, nil
}

func mapOrder(d orderDTO) (domain.Order, error) {
	if d.ID == nil {
		return domain.Order{}, &MappingError{Resource: "order", Field: "id"}
	}
	if d.Status == nil {
		return domain.Order{}, &MappingError{Resource: "order", Field: "status"}
	}
	status, err := domain.ParseOrderStatus(*d.Status)
	if err != nil {
		return domain.Order{}, &MappingError{Resource: "order", Field: "status"}
	}
	if d.Total == nil || *d.Total < 0 {
		return domain.Order{}, &MappingError{Resource: "order", Field: "total"}
	}

	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, item := range d.Items {
		if item.ProductID == nil || item.Quantity == nil || item.Price == nil {
			return domain.Order{}, &MappingError{Resource: "order", Field: "items"}
		}
		items = append(items, domain.OrderItem{
			ProductID: *item.ProductID,
			Name:      item.Name,
			Quantity:  *item.Quantity,
			Price:     decimal.NewFromFloat(*item.Price),
		})
	}

	return domain.Order{
		ID:       *d.ID,
		UserID:   d.UserID,
		Items:    items,
		Total:    decimal.NewFromFloat(*d.Total),
		Status:   status,
		PlacedAt: d.PlacedAt,
	}, nil
}

func mapProfile(d profileDTO) (domain.User, error) {
	if d.ID == nil {
		return domain.User{}, &MappingError{Resource: "profile", Field: "id"}
	}
	return domain.User{
		ID:    *d.ID,
		Name:  d.Name,
		Email: d.Email,
		Phone: d.Phone,
		Role:  d.Role,
	}, nil
}
