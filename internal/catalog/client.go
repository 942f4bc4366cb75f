package catalog

import (
	"bytes"
	"context"
	"encoding/json"
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

// Client talks to a remote product catalog. Every error it returns is a
// status error: NotFound when the catalog reports the product missing,
// Unavailable when the call itself fails.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient returns a Client for the catalog at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GetProduct resolves a product reference.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/"+url.PathEscape(id), nil)
	if err != nil {
		return Product{}, status.Errorf(codes.Internal, "build product request: %v", err)
	}
	propagateRequestID(ctx, req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Product{}, status.Errorf(codes.Unavailable, "product catalog unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Product{}, httpx.ErrorFromResponse(resp)
	}

	var p Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Product{}, status.Errorf(codes.Internal, "decode product response: %v", err)
	}
	return p, nil
}

// CreateProduct registers a new product. Used by the demonstration client.
func (c *Client) CreateProduct(ctx context.Context, name, description string, price float64) (Product, error) {
	body, err := json.Marshal(CreateProductRequest{Name: name, Description: description, Price: price})
	if err != nil {
		return Product{}, status.Errorf(codes.Internal, "encode product request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/products", bytes.NewReader(body))
	if err != nil {
		return Product{}, status.Errorf(codes.Internal, "build product request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	propagateRequestID(ctx, req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Product{}, status.Errorf(codes.Unavailable, "product catalog unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return Product{}, httpx.ErrorFromResponse(resp)
	}

	var p Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Product{}, status.Errorf(codes.Internal, "decode product response: %v", err)
	}
	return p, nil
}

// ListProducts returns every product in the catalog.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "build product request: %v", err)
	}
	propagateRequestID(ctx, req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "product catalog unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpx.ErrorFromResponse(resp)
	}

	var list ProductListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, status.Errorf(codes.Internal, "decode product list response: %v", err)
	}
	return list.Products, nil
}

func propagateRequestID(ctx context.Context, req *http.Request) {
	if rid := middleware.GetReqID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}
}
