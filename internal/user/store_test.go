package user

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	u, err := s.Create(ctx, "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID != "user-1" {
		t.Fatalf("expected id user-1, got %s", u.ID)
	}

	got, err := s.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Alice" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	second, err := s.Create(ctx, "Bob", "bob@example.com")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != "user-2" {
		t.Fatalf("expected id user-2, got %s", second.ID)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()

	_, err := s.Get(context.Background(), "user-404")
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}
