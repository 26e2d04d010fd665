package client

import "time"

// Wire representations of backend resources. Required fields are pointers
// so a missing key is distinguishable from a zero value and can be rejected
// with a MappingError rather than mapped silently.

type categoryDTO struct {
	ID     *int64  `json:"id"`
	Name   *string `json:"name"`
	Image  string  `json:"image"`
	Domain string  `json:"domain"`
}

type itemDTO struct {
	ID          *int64   `json:"id"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Domain      string   `json:"domain"`
	Rating      float64  `json:"rating"`
	InStock     bool     `json:"in_stock"`
}

type cartItemDTO struct {
	ID       *int64   `json:"id"`
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Image    string   `json:"image"`
	Quantity *int     `json:"quantity"`
}

type cartDTO struct {
	Items []cartItemDTO `json:"items"`
}

type favoriteDTO struct {
	ID       *int64   `json:"id"`
	Name     *string  `json:"name"`
	Image    string   `json:"image"`
	Price    *float64 `json:"price"`
	Category string   `json:"category"`
	Rating   float64  `json:"rating"`
}

type orderItemDTO struct {
	ProductID *int64   `json:"product_id"`
	Name      string   `json:"name"`
	Quantity  *int     `json:"quantity"`
	Price     *float64 `json:"price"`
}

type orderDTO struct {
	ID       *int64         `json:"id"`
	UserID   string         `json:"user_id"`
	Items    []orderItemDTO `json:"items"`
	Total    *float64       `json:"total"`
	Status   *string        `json:"status"`
	PlacedAt time.Time      `json:"placed_at"`
}

type authDTO struct {
	Token    *string `json:"token"`
	Role     string  `json:"role"`
	UserName string  `json:"user_name"`
}

type checkoutSessionDTO struct {
	SessionID *string `json:"session_id"`
	URL       *string `json:"url"`
}

type profileDTO struct {
	ID    *string `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone string  `json:"phone"`
	Role  string  `json:"role"`
}
