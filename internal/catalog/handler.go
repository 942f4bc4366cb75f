package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/microshop/services/internal/pkg/httpx"
	"github.com/microshop/services/internal/pkg/middlewares"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	store *Store
}

// NewHandler wraps the given store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// CreateProductRequest is the POST /products body.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProductListResponse is the GET /products body.
type ProductListResponse struct {
	Products []Product `json:"products"`
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteStatusError(w, status.Errorf(codes.InvalidArgument, "invalid request body: %v", err))
		return
	}
	if req.Name == "" {
		httpx.WriteStatusError(w, status.Error(codes.InvalidArgument, "name is required"))
		return
	}
	if req.Price < 0 {
		httpx.WriteStatusError(w, status.Error(codes.InvalidArgument, "price must not be negative"))
		return
	}

	p, err := h.store.Create(r.Context(), req.Name, req.Description, req.Price)
	if err != nil {
		httpx.WriteStatusError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, p)
}

// GetProduct handles GET /products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteStatusError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.List(r.Context())
	if err != nil {
		httpx.WriteStatusError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ProductListResponse{Products: products})
}

// NewRouter builds the catalog's HTTP surface.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Post("/products", h.CreateProduct)
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	return r
}
