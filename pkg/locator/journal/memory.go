package journal

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory journal store for testing and development.
// Records are lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	recs   []Record
	closed bool
}

// NewMemoryStore creates a new in-memory journal store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements Store.
func (m *MemoryStore) Append(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.recs = append(m.recs, rec)
	return nil
}

// List implements Store. Records are returned newest first, relying on
// Append order.
func (m *MemoryStore) List(ctx context.Context, limit int) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	out := make([]Record, 0, len(m.recs))
	for i := len(m.recs) - 1; i >= 0; i-- {
		out = append(out, m.recs[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// ListByCapability implements Store.
func (m *MemoryStore) ListByCapability(ctx context.Context, capability string, limit int) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	var out []Record
	for i := len(m.recs) - 1; i >= 0; i-- {
		if m.recs[i].Capability != capability {
			continue
		}
		out = append(out, m.recs[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Count implements Store.
func (m *MemoryStore) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrStoreClosed
	}
	return len(m.recs), nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.recs = nil
	return nil
}
