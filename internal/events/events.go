// Package events defines the integration events emitted by the order
// orchestrator and the Publisher port they leave through.
package events

import (
	"context"

	"github.com/google/uuid"
)

// OrderCreated is published after an order has been committed to the store.
// Consumers get a denormalized snapshot; they never need to call back.
type OrderCreated struct {
	EventID     string      `json:"event_id"`
	OrderID     int64       `json:"order_id"`
	UserID      string      `json:"user_id"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"created_at"`
}

// OrderItem is one resolved line of the order snapshot.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int32   `json:"quantity"`
	Price     float64 `json:"price"`
}

// NewOrderCreated assigns a fresh event ID to the given snapshot.
func NewOrderCreated(orderID int64, userID string, items []OrderItem, total float64, status, createdAt string) OrderCreated {
	return OrderCreated{
		EventID:     uuid.NewString(),
		OrderID:     orderID,
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

// Publisher is the port for emitting integration events.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreated) error
	Close() error
}
