package order

import (
	"context"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/microshop/services/internal/catalog"
	"github.com/microshop/services/internal/user"
)

// startServer runs the full HTTP surface against stub upstreams and returns
// a client pointed at it.
func startServer(t *testing.T) *Client {
	t.Helper()

	svc := newTestService(t, ServiceDeps{
		Users: &stubDirectory{users: map[string]user.User{
			"user-1": {ID: "user-1", Name: "Alice"},
		}},
		Products: &stubCatalog{products: map[string]catalog.Product{
			"product-1": {ID: "product-1", Name: "Laptop", Price: 799.99},
			"product-2": {ID: "product-2", Name: "Monitor", Price: 199.99},
		}},
	})

	server := httptest.NewServer(NewRouter(NewHandler(svc)))
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestClientCreateAndFetchOrder(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	o, err := client.CreateOrder(ctx, "user-1", []LineItem{
		{ProductID: "product-1", Quantity: 1},
		{ProductID: "product-2", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.ID != 1 {
		t.Fatalf("expected id 1, got %d", o.ID)
	}
	if want := 1199.97; o.TotalAmount != want {
		t.Fatalf("expected total %v, got %v", want, o.TotalAmount)
	}
	if len(o.Items) != 2 || o.Items[0].ProductID != "product-1" {
		t.Fatalf("unexpected items: %+v", o.Items)
	}

	fetched, err := client.GetOrder(ctx, o.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.TotalAmount != o.TotalAmount || fetched.CreatedAt != o.CreatedAt {
		t.Fatalf("fetched order differs from created: %+v vs %+v", fetched, o)
	}

	orders, err := client.GetUserOrders(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}

func TestClientErrorCodesSurviveRoundTrip(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	_, err := client.GetOrder(ctx, 42)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound over the wire, got %v", status.Code(err))
	}

	_, err = client.CreateOrder(ctx, "user-99", nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument over the wire, got %v", status.Code(err))
	}

	_, err = client.GetUserOrders(ctx, "user-99")
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument over the wire, got %v", status.Code(err))
	}
}

func TestClientRequestValidation(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	_, err := client.CreateOrder(ctx, "", nil)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for missing user_id, got %v", status.Code(err))
	}

	_, err = client.CreateOrder(ctx, "user-1", []LineItem{{ProductID: "product-1", Quantity: 0}})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for non-positive quantity, got %v", status.Code(err))
	}
}

func TestClientUnreachableServiceTaggedUnavailable(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close()
	client := NewClient(server.URL)

	_, err := client.GetOrder(context.Background(), 1)
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("expected Unavailable for closed server, got %v", status.Code(err))
	}
}
