package order

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/microshop/services/internal/pkg/httpx"
	"github.com/microshop/services/internal/pkg/middlewares"
)

// Handler exposes the orchestrator over HTTP.
type Handler struct {
	service *Service
}

// NewHandler wraps the given service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateOrderRequest is the POST /orders body.
type CreateOrderRequest struct {
	UserID string     `json:"user_id"`
	Items  []LineItem `json:"items"`
}

// OrderListResponse is the GET /users/{userID}/orders body.
type OrderListResponse struct {
	Orders []Order `json:"orders"`
}

// CreateOrder handles POST /orders.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteStatusError(w, status.Errorf(codes.InvalidArgument, "invalid request body: %v", err))
		return
	}
	if req.UserID == "" {
		httpx.WriteStatusError(w, status.Error(codes.InvalidArgument, "user_id is required"))
		return
	}
	for _, item := range req.Items {
		if item.ProductID == "" {
			httpx.WriteStatusError(w, status.Error(codes.InvalidArgument, "product_id is required on every item"))
			return
		}
		if item.Quantity <= 0 {
			httpx.WriteStatusError(w, status.Errorf(codes.InvalidArgument,
				"quantity for product %s must be positive", item.ProductID))
			return
		}
	}

	o, err := h.service.CreateOrder(r.Context(), req.UserID, req.Items)
	if err != nil {
		httpx.WriteStatusError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, o)
}

// GetOrder handles GET /orders/{id}.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.WriteStatusError(w, status.Errorf(codes.InvalidArgument, "invalid order id %q", chi.URLParam(r, "id")))
		return
	}

	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		httpx.WriteStatusError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, o)
}

// GetUserOrders handles GET /users/{userID}/orders.
func (h *Handler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetUserOrders(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		httpx.WriteStatusError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, OrderListResponse{Orders: orders})
}

// NewRouter builds the orchestrator's HTTP surface. createMiddlewares are
// applied to the create route only (e.g. idempotency replay).
func NewRouter(h *Handler, createMiddlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)

	r.With(createMiddlewares...).Post("/orders", h.CreateOrder)
	r.Get("/orders/{id}", h.GetOrder)
	r.Get("/users/{userID}/orders", h.GetUserOrders)
	return r
}
