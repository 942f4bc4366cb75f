package user

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

// Client talks to a remote user directory. Every error it returns is a
// status error: NotFound when the directory reports the user missing,
// Unavailable when the call itself fails.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient returns a Client for the directory at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout:   5 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GetUser resolves a user reference.
func (c *Client) GetUser(ctx context.Context, id string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+url.PathEscape(id), nil)
	if err != nil {
		return User{}, status.Errorf(codes.Internal, "build user request: %v", err)
	}
	propagateRequestID(ctx, req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return User{}, status.Errorf(codes.Unavailable, "user directory unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return User{}, httpx.ErrorFromResponse(resp)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return User{}, status.Errorf(codes.Internal, "decode user response: %v", err)
	}
	return u, nil
}

// CreateUser registers a new user. Used by the demonstration client.
func (c *Client) CreateUser(ctx context.Context, name, email string) (User, error) {
	body, err := json.Marshal(CreateUserRequest{Name: name, Email: email})
	if err != nil {
		return User{}, status.Errorf(codes.Internal, "encode user request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return User{}, status.Errorf(codes.Internal, "build user request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	propagateRequestID(ctx, req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return User{}, status.Errorf(codes.Unavailable, "user directory unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return User{}, httpx.ErrorFromResponse(resp)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return User{}, status.Errorf(codes.Internal, "decode user response: %v", err)
	}
	return u, nil
}

func propagateRequestID(ctx context.Context, req *http.Request) {
	if rid := middleware.GetReqID(ctx); rid != "" {
		req.Header.Set("X-Request-Id", rid)
	}
}
