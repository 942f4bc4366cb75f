package user

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

// Handler exposes the directory over HTTP.
type Handler struct {
	store *Store
}

// NewHandler wraps the given store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// CreateUserRequest is the POST /users body.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteStatusError(w, status.Errorf(codes.InvalidArgument, "invalid request body: %v", err))
		return
	}
	if req.Name == "" {
		httpx.WriteStatusError(w, status.Error(codes.InvalidArgument, "name is required"))
		return
	}

	u, err := h.store.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		httpx.WriteStatusError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

// GetUser handles GET /users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteStatusError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// NewRouter builds the directory's HTTP surface.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Post("/users", h.CreateUser)
	r.Get("/users/{id}", h.GetUser)
	return r
}
