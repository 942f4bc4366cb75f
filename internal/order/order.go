// Package order implements the order orchestrator: the one component that
// composes the user directory and the product catalog. It validates every
// reference against its owning service, computes the order total from
// per-item pricing, and keeps the assembled orders in an in-memory store
// with unique, monotonically increasing IDs.
package order

// Status is the lifecycle state of an order.
type Status string

// StatusCreated is the initial (and currently only) order status.
const StatusCreated Status = "CREATED"

// LineItem is one input line of a create-order request: a product reference
// plus the requested quantity.
type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

// ItemDetail is one resolved line of a stored order. Name and price are
// snapshots taken at order time; later catalog changes never touch them.
type ItemDetail struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int32   `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// Order is a fully assembled, immutable order record. Items keep the input
// order; TotalAmount is the sum of the item subtotals.
type Order struct {
	ID          int64        `json:"id"`
	UserID      string       `json:"user_id"`
	Items       []ItemDetail `json:"items"`
	TotalAmount float64      `json:"total_amount"`
	Status      Status       `json:"status"`
	CreatedAt   string       `json:"created_at"`
}
