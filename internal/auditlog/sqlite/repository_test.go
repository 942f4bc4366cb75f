package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/microshop/services/internal/auditlog"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndQueryByOrder(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	createdAt := time.Date(2025, time.June, 2, 10, 30, 0, 0, time.UTC)
	entry := &auditlog.Entry{
		OrderID:     1,
		UserID:      "user-1",
		Event:       auditlog.EventOrderCreated,
		TotalAmount: 36.50,
		TraceID:     "0af7651916cd43dd8448eb211c80319c",
		SpanID:      "b7ad6b7169203331",
		CreatedAt:   createdAt,
	}
	if err := repo.Save(ctx, entry); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, &auditlog.Entry{OrderID: 2, UserID: "user-2", Event: auditlog.EventOrderCreated}); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := repo.ByOrder(ctx, 1)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry for order 1, got %d", len(entries))
	}
	got := entries[0]
	if got.UserID != "user-1" || got.Event != auditlog.EventOrderCreated {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if got.TotalAmount != 36.50 {
		t.Fatalf("expected total 36.50, got %v", got.TotalAmount)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected created_at %v, got %v", createdAt, got.CreatedAt)
	}
	if got.TraceID != entry.TraceID || got.SpanID != entry.SpanID {
		t.Fatalf("trace identifiers lost: %+v", got)
	}
}

func TestByOrderEmptyForUnknownOrder(t *testing.T) {
	repo := openTestRepo(t)

	entries, err := repo.ByOrder(context.Background(), 99)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestSaveDefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	if err := repo.Save(ctx, &auditlog.Entry{OrderID: 7, UserID: "user-1", Event: auditlog.EventOrderCreated}); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := repo.ByOrder(ctx, 7)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(entries) != 1 || entries[0].CreatedAt.IsZero() {
		t.Fatalf("expected defaulted timestamp, got %+v", entries)
	}
}
