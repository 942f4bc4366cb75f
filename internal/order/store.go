package order

import (
	"sort"
	"sync"
)

// Store owns every created order, keyed by order ID. IDs are allocated and
// the order inserted inside a single critical section, so the sequence
// 1, 2, 3, ... has no gaps or repeats no matter how creations interleave.
// A failed creation never reaches Add and therefore never consumes an ID.
type Store struct {
	mu     sync.RWMutex
	orders map[int64]Order
	nextID int64
}

// NewStore returns an empty Store; the first order gets ID 1.
func NewStore() *Store {
	return &Store{
		orders: make(map[int64]Order),
		nextID: 1,
	}
}

// Add allocates the next ID, stamps it on o, and inserts the order.
// It returns the stored record.
func (s *Store) Add(o Order) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextID
	s.nextID++
	s.orders[o.ID] = o
	return o
}

// Get returns the order with the given ID.
func (s *Store) Get(id int64) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	return o, ok
}

// ListByUser returns all orders belonging to userID, sorted ascending by ID
// for deterministic output.
func (s *Store) ListByUser(userID string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
