// Package auditlog defines the domain types for the order audit trail.
//
// The trail is a durable, append-only record of order lifecycle events. It
// exists for observability: each row carries the trace identifiers of the
// request that produced it, so an operator can jump from a row straight to
// the distributed trace. The order store itself stays in memory; the trail
// never feeds back into business logic.
package auditlog

import (
	"context"
	"time"
)

// Event names an order lifecycle transition.
type Event string

const (
	// EventOrderCreated is written once per successful order creation.
	EventOrderCreated Event = "ORDER_CREATED"
)

// Entry is a single row in the audit trail.
type Entry struct {
	// OrderID joins the row with the in-memory order record.
	OrderID int64

	// UserID is the order's owner at the time of the event.
	UserID string

	// Event is the lifecycle transition being recorded.
	Event Event

	// TotalAmount is the order total at the time of the event.
	TotalAmount float64

	// TraceID and SpanID locate the originating request in the tracing
	// backend. Empty when no span was active (e.g. in tests).
	TraceID string
	SpanID  string

	// CreatedAt is when the entry was written.
	CreatedAt time.Time
}

// Repository is the port for persisting audit entries. The orchestrator
// depends on this abstraction, not on SQLite directly.
type Repository interface {
	// Save appends one entry. The trail is append-only, never an upsert.
	Save(ctx context.Context, entry *Entry) error

	// ByOrder returns the entries recorded for one order, oldest first.
	ByOrder(ctx context.Context, orderID int64) ([]Entry, error)
}
