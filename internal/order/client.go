package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/microshop/services/internal/pkg/httpx"
)

// Client talks to a remote order orchestrator. Used by the demonstration
// client; errors follow the same status tagging as the other adapters.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient returns a Client for the orchestrator at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// CreateOrder submits a create-order request.
func (c *Client) CreateOrder(ctx context.Context, userID string, items []LineItem) (Order, error) {
	body, err := json.Marshal(CreateOrderRequest{UserID: userID, Items: items})
	if err != nil {
		return Order{}, status.Errorf(codes.Internal, "encode order request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return Order{}, status.Errorf(codes.Internal, "build order request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.propagateRequestID(ctx, req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Order{}, status.Errorf(codes.Unavailable, "order service unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return Order{}, httpx.ErrorFromResponse(resp)
	}

	var o Order
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		return Order{}, status.Errorf(codes.Internal, "decode order response: %v", err)
	}
	return o, nil
}

// GetOrder fetches one order by ID.
func (c *Client) GetOrder(ctx context.Context, id int64) (Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/orders/%d", c.baseURL, id), nil)
	if err != nil {
		return Order{}, status.Errorf(codes.Internal, "build order request: %v", err)
	}
	c.propagateRequestID(ctx, req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Order{}, status.Errorf(codes.Unavailable, "order service unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Order{}, httpx.ErrorFromResponse(resp)
	}

	var o Order
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		return Order{}, status.Errorf(codes.Internal, "decode order response: %v", err)
	}
	return o, nil
}

// GetUserOrders fetches every order belonging to userID.
func (c *Client) GetUserOrders(ctx context.Context, userID string) ([]Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+url.PathEscape(userID)+"/orders", nil)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build order request: %v", err)
	}
	c.propagateRequestID(ctx, req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "order service unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpx.ErrorFromResponse(resp)
	}

	var list OrderListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, status.Errorf(codes.Internal, "decode order list response: %v", err)
	}
	return list.Orders, nil
}

func (c *Client) propagateRequestID(ctx context.Context, req *http.Request) {
	if rid := middleware.GetReqID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}
}
