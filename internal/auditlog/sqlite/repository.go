// Package sqlite provides a SQLite-backed implementation of
// auditlog.Repository.
//
// WAL mode is enabled on Open so that readers never block writers and vice
// versa — the orchestrator writes on every order creation while an operator
// may be querying the trail.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/microshop/services/internal/auditlog"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// keeping the Docker build simple.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS order_audit (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id    INTEGER NOT NULL,
    user_id     TEXT    NOT NULL,
    event       TEXT    NOT NULL,
    total       REAL    NOT NULL DEFAULT 0,
    trace_id    TEXT    NOT NULL DEFAULT '',
    span_id     TEXT    NOT NULL DEFAULT '',
    created_at  TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_audit_order_id ON order_audit (order_id);
`

// Repository persists audit entries in a SQLite database file.
type Repository struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return &Repository{db: db}, nil
}

// Save appends one entry.
func (r *Repository) Save(ctx context.Context, entry *auditlog.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_audit (order_id, user_id, event, total, trace_id, span_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.OrderID,
		entry.UserID,
		string(entry.Event),
		entry.TotalAmount,
		entry.TraceID,
		entry.SpanID,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save audit entry: %w", err)
	}
	return nil
}

// ByOrder returns the entries recorded for one order, oldest first.
func (r *Repository) ByOrder(ctx context.Context, orderID int64) ([]auditlog.Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT order_id, user_id, event, total, trace_id, span_id, created_at
		FROM order_audit
		WHERE order_id = ?
		ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: query audit entries: %w", err)
	}
	defer rows.Close()

	var out []auditlog.Entry
	for rows.Next() {
		var (
			e         auditlog.Entry
			event     string
			createdAt string
		)
		if err := rows.Scan(&e.OrderID, &e.UserID, &event, &e.TotalAmount, &e.TraceID, &e.SpanID, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite: scan audit entry: %w", err)
		}
		e.Event = auditlog.Event(event)
		t, err := parseRFC3339(createdAt)
		if err != nil {
			return nil, err
		}
		e.CreatedAt = t
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (r *Repository) Close() error {
	return r.db.Close()
}
