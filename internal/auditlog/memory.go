package auditlog

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository for tests and single-process
// runs where durability is not wanted.
type MemoryRepository struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryRepository returns an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save appends one entry.
func (m *MemoryRepository) Save(ctx context.Context, entry *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *entry)
	return nil
}

// ByOrder returns the entries recorded for one order, oldest first.
func (m *MemoryRepository) ByOrder(ctx context.Context, orderID int64) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Entry
	for _, e := range m.entries {
		if e.OrderID == orderID {
			out = append(out, e)
		}
	}
	return out, nil
}

// All returns every entry in insertion order.
func (m *MemoryRepository) All() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
