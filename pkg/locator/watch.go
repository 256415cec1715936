package locator

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/locator/pkg/locator/journal"
	"github.com/randalmurphal/locator/pkg/locator/observability"
)

// ChangeKind identifies the kind of registry mutation a Change describes.
type ChangeKind int

const (
	// ServiceRegistered indicates a capability went from absent to present.
	ServiceRegistered ChangeKind = iota

	// ServiceReplaced indicates an existing entry was atomically swapped.
	ServiceReplaced

	// ServiceUnregistered indicates a capability went from present to absent.
	ServiceUnregistered
)

// String returns the kind name.
func (k ChangeKind) String() string {
	switch k {
	case ServiceRegistered:
		return "registered"
	case ServiceReplaced:
		return "replaced"
	case ServiceUnregistered:
		return "unregistered"
	default:
		return "unknown"
	}
}

// Change describes a single mutation of a Registry. Changes are delivered
// synchronously to WithOnChange hooks on the mutating goroutine, after the
// mutation is visible and with no locks held. Hooks should return quickly.
type Change struct {
	// ID uniquely identifies this mutation.
	ID string

	// Kind is the mutation kind.
	Kind ChangeKind

	// Capability is the affected capability identity.
	Capability Capability

	// At is when the mutation was recorded.
	At time.Time
}

// emit reports a completed mutation to the logger, the journal, and the
// change hooks. Journal appends are best-effort: a failure is logged and the
// mutation stands.
func (r *Registry) emit(ch Change) {
	ch.ID = uuid.New().String()
	ch.At = time.Now()

	switch ch.Kind {
	case ServiceRegistered:
		observability.LogRegistered(r.cfg.logger, ch.Capability.String(), ch.ID)
	case ServiceReplaced:
		observability.LogReplaced(r.cfg.logger, ch.Capability.String(), ch.ID)
	case ServiceUnregistered:
		observability.LogUnregistered(r.cfg.logger, ch.Capability.String(), ch.ID)
	}

	if r.cfg.journal != nil {
		rec := journal.Record{
			ID:         ch.ID,
			Op:         ch.Kind.String(),
			Capability: ch.Capability.String(),
			At:         ch.At,
		}
		if err := r.cfg.journal.Append(context.Background(), rec); err != nil {
			observability.LogJournalError(r.cfg.logger, ch.Capability.String(), err)
		}
	}

	for _, fn := range r.cfg.onChange {
		fn(ch)
	}
}
