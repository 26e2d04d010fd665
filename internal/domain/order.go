package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order as reported by the backend.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

var (
	ErrInvalidStatus  = errors.New("invalid order status transition")
	ErrOrderDelivered = errors.New("order is already delivered")
	ErrOrderCancelled = errors.New("order is already cancelled")
	ErrUnknownStatus  = errors.New("unknown order status")
)

// validTransitions defines allowed state transitions
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPlaced:         {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered},
	StatusDelivered:      {}, // terminal state
	StatusCancelled:      {}, // terminal state
}

// ParseOrderStatus validates a status string from the backend.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPlaced, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// CanTransitionTo checks if an order in status s may move to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionError returns an appropriate error for an invalid transition.
func (s OrderStatus) TransitionError(target OrderStatus) error {
	switch s {
	case StatusDelivered:
		return ErrOrderDelivered
	case StatusCancelled:
		return ErrOrderCancelled
	default:
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidStatus, s, target)
	}
}

type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type Order struct {
	ID       int64           `json:"id"`
	UserID   string          `json:"user_id"`
	Items    []OrderItem     `json:"items"`
	Total    decimal.Decimal `json:"total"`
	Status   OrderStatus     `json:"status"`
	PlacedAt time.Time       `json:"placed_at"`
}
