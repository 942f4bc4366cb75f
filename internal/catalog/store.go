package catalog

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store holds product records in memory. IDs are derived from the current
// store size, which is safe only because the mutex serialises creation.
type Store struct {
	mu       sync.Mutex
	products map[string]Product
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{products: make(map[string]Product)}
}

// Create adds a product and returns the stored record.
func (s *Store) Create(ctx context.Context, name, description string, price float64) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:          fmt.Sprintf("product-%d", len(s.products)+1),
		Name:        name,
		Description: description,
		Price:       price,
	}
	s.products[p.ID] = p
	return p, nil
}

// Get returns the product with the given ID, or a NotFound status error.
func (s *Store) Get(ctx context.Context, id string) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.products[id]
	if !exists {
		return Product{}, status.Errorf(codes.NotFound, "product with ID %s not found", id)
	}
	return p, nil
}

// List returns all products.
func (s *Store) List(ctx context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}
