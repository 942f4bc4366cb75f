package user

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store holds user records in memory. The mutex serialises creation so the
// size-derived IDs stay unique.
type Store struct {
	mu    sync.Mutex
	users map[string]User
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{users: make(map[string]User)}
}

// Create adds a user and returns the stored record.
func (s *Store) Create(ctx context.Context, name, email string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{
		ID:    fmt.Sprintf("user-%d", len(s.users)+1),
		Name:  name,
		Email: email,
	}
	s.users[u.ID] = u
	return u, nil
}

// Get returns the user with the given ID, or a NotFound status error.
func (s *Store) Get(ctx context.Context, id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[id]
	if !exists {
		return User{}, status.Errorf(codes.NotFound, "user with ID %s not found", id)
	}
	return u, nil
}
