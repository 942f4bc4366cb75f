package catalog

import (
	"context"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/microshop/services/internal/pkg/upstream"
)

func startServer(t *testing.T) *Client {
	t.Helper()
	server := httptest.NewServer(NewRouter(NewHandler(NewStore())))
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestClientCreateGetAndList(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	created, err := client.CreateProduct(ctx, "Tablet", "10-inch tablet", 349.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "product-1" || created.Price != 349.99 {
		t.Fatalf("unexpected product: %+v", created)
	}

	got, err := client.GetProduct(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != created {
		t.Fatalf("fetched product differs: %+v vs %+v", got, created)
	}

	if _, err := client.CreateProduct(ctx, "Keyboard", "", 79.99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := client.ListProducts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 products, got %d", len(list))
	}
}

func TestClientMissingProductTaggedNotFound(t *testing.T) {
	client := startServer(t)

	_, err := client.GetProduct(context.Background(), "product-404")
	if !upstream.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestClientValidationErrors(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	if _, err := client.CreateProduct(ctx, "", "", 1.00); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for empty name, got %v", status.Code(err))
	}
	if _, err := client.CreateProduct(ctx, "Laptop", "", -1.00); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for negative price, got %v", status.Code(err))
	}
}

func TestClientUnreachableCatalogTaggedUnavailable(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close()
	client := NewClient(server.URL)

	_, err := client.GetProduct(context.Background(), "product-1")
	if !upstream.IsUnavailable(err) {
		t.Fatalf("expected Unavailable for closed server, got %v", status.Code(err))
	}
}
