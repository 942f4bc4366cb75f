package catalog

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	p, err := s.Create(ctx, "Laptop", "15-inch laptop", 799.99)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID != "product-1" {
		t.Fatalf("expected id product-1, got %s", p.ID)
	}

	got, err := s.Get(ctx, "product-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Laptop" || got.Price != 799.99 {
		t.Fatalf("unexpected product: %+v", got)
	}

	second, err := s.Create(ctx, "Monitor", "", 199.99)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != "product-2" {
		t.Fatalf("expected id product-2, got %s", second.ID)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()

	_, err := s.Get(context.Background(), "product-404")
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if list, _ := s.List(ctx); len(list) != 0 {
		t.Fatalf("expected empty catalog, got %d products", len(list))
	}

	if _, err := s.Create(ctx, "Laptop", "", 799.99); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, "Monitor", "", 199.99); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list))
	}
}
