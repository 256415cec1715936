// Package journal provides best-effort audit storage for registry mutations.
//
// The journal is a diagnostic sink: the registry's live state stays
// in-memory and is never reconstructed from records. Wire a Store into a
// registry with locator.WithJournal to keep a queryable history of which
// capabilities were bound, swapped, and removed, and when.
package journal

import (
	"context"
	"errors"
	"time"
)

// Record describes one registry mutation.
type Record struct {
	// ID uniquely identifies the mutation.
	ID string

	// Op is the mutation kind: "registered", "replaced", or "unregistered".
	Op string

	// Capability is the fully qualified capability name.
	Capability string

	// At is when the mutation was recorded.
	At time.Time
}

// Store persists mutation records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Append stores a record.
	Append(ctx context.Context, rec Record) error

	// List returns records, newest first.
	// A non-positive limit returns all records.
	List(ctx context.Context, limit int) ([]Record, error)

	// ListByCapability returns records for one capability, newest first.
	// A non-positive limit returns all matching records.
	ListByCapability(ctx context.Context, capability string, limit int) ([]Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close releases any resources (connections, files).
	Close() error
}

// ErrStoreClosed indicates the store has been closed.
var ErrStoreClosed = errors.New("journal store closed")
