package locator

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/randalmurphal/locator/pkg/locator/observability"
)

// entry binds a capability to its currently registered instance.
type entry struct {
	instance     any
	registeredAt time.Time
}

// Registry is a concurrency-safe store mapping capability identities to
// registered service instances, with at most one instance per capability.
// It uses sync.RWMutex for read-heavy lookup workloads.
//
// The zero value is not usable; create a Registry with New.
type Registry struct {
	mu      sync.RWMutex
	entries map[Capability]entry
	sealed  atomic.Bool

	cfg config
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{
		entries: make(map[Capability]entry),
		cfg:     cfg,
	}
}

// Register binds instance as the implementation of capability c.
//
// It fails with a *DuplicateServiceError if c already has an entry (the
// existing entry is left untouched), with ErrSealed on a sealed registry,
// and with an *InvalidArgumentError when c is zero, instance is nil, the
// instance does not implement c, or c is not declared in the configured
// catalog.
func (r *Registry) Register(c Capability, instance any) error {
	if r.Sealed() {
		r.cfg.metrics.RecordRegistration(context.Background(), c.String(), ErrSealed)
		return ErrSealed
	}
	if err := r.validate(c, instance); err != nil {
		r.cfg.metrics.RecordRegistration(context.Background(), c.String(), err)
		return err
	}

	r.mu.Lock()
	if _, exists := r.entries[c]; exists {
		r.mu.Unlock()
		err := &DuplicateServiceError{Capability: c}
		r.cfg.metrics.RecordRegistration(context.Background(), c.String(), err)
		return err
	}
	r.entries[c] = entry{instance: instance, registeredAt: time.Now()}
	r.mu.Unlock()

	r.cfg.metrics.RecordRegistration(context.Background(), c.String(), nil)
	r.emit(Change{Kind: ServiceRegistered, Capability: c})
	return nil
}

// Unregister removes the entry for c if present and reports whether an entry
// was actually removed. Removing an absent capability is a no-op.
//
// If the removed instance implements io.Closer its Close is invoked after
// the map lock is released; failures (including panics) are reported through
// the configured logger and metrics, never propagated, so a broken teardown
// cannot keep a stale entry alive.
func (r *Registry) Unregister(c Capability) bool {
	r.mu.Lock()
	e, ok := r.entries[c]
	if ok {
		delete(r.entries, c)
	}
	r.mu.Unlock()
	if !ok {
		return false
	}

	r.cfg.metrics.RecordRemoval(context.Background(), c.String())
	r.dispose(c, e.instance)
	r.emit(Change{Kind: ServiceUnregistered, Capability: c})
	return true
}

// Get returns the instance registered for c, or a *NotFoundError when no
// entry exists. The registry never fabricates a default or null-object
// implementation; registering an explicit no-op implementation is a caller
// strategy.
func (r *Registry) Get(c Capability) (any, error) {
	done := observability.TimedOperation()
	r.mu.RLock()
	e, ok := r.entries[c]
	r.mu.RUnlock()
	r.cfg.metrics.RecordLookup(context.Background(), c.String(), ok, done())
	if !ok {
		return nil, &NotFoundError{Capability: c}
	}
	return e.instance, nil
}

// Has reports whether c currently has a registered service. It never fails,
// so expected-absence checks on hot paths need not go through error returns.
func (r *Registry) Has(c Capability) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[c]
	return ok
}

// Replace atomically swaps the entry for c to instance, registering it if c
// was absent. Unlike Unregister followed by Register, concurrent getters
// never observe an absence window. A displaced instance is disposed after
// the lock is released.
//
// Replace applies the same validation and sealing rules as Register.
func (r *Registry) Replace(c Capability, instance any) error {
	if r.Sealed() {
		r.cfg.metrics.RecordRegistration(context.Background(), c.String(), ErrSealed)
		return ErrSealed
	}
	if err := r.validate(c, instance); err != nil {
		r.cfg.metrics.RecordRegistration(context.Background(), c.String(), err)
		return err
	}

	r.mu.Lock()
	old, existed := r.entries[c]
	r.entries[c] = entry{instance: instance, registeredAt: time.Now()}
	r.mu.Unlock()

	r.cfg.metrics.RecordRegistration(context.Background(), c.String(), nil)
	if existed {
		r.dispose(c, old.instance)
		r.emit(Change{Kind: ServiceReplaced, Capability: c})
		return nil
	}
	r.emit(Change{Kind: ServiceRegistered, Capability: c})
	return nil
}

// Seal prevents further Register and Replace calls; lookups and removals
// continue to work. Sealing is idempotent and safe for concurrent use.
// Returns true if this call changed the state from unsealed to sealed.
func (r *Registry) Seal() bool { return !r.sealed.Swap(true) }

// Sealed reports whether the registry is sealed.
func (r *Registry) Sealed() bool { return r.sealed.Load() }

// Len returns the number of registered services.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Capabilities returns all registered capability identities in lexicographic
// order of their fully qualified names.
func (r *Registry) Capabilities() []Capability {
	r.mu.RLock()
	caps := make([]Capability, 0, len(r.entries))
	for c := range r.entries {
		caps = append(caps, c)
	}
	r.mu.RUnlock()

	sort.Slice(caps, func(i, j int) bool { return caps[i].String() < caps[j].String() })
	return caps
}

// Range iterates over a snapshot of the registry, so it is safe to call
// Register or Unregister from fn without affecting the current iteration.
// If fn returns false, iteration stops.
func (r *Registry) Range(fn func(Capability, any) bool) {
	r.mu.RLock()
	snapshot := make(map[Capability]any, len(r.entries))
	for c, e := range r.entries {
		snapshot[c] = e.instance
	}
	r.mu.RUnlock()

	for c, instance := range snapshot {
		if !fn(c, instance) {
			return
		}
	}
}

// MissingRequired returns the fully qualified names of catalog declarations
// marked required that have no registered service yet, in lexicographic
// order. It returns nil when no catalog is configured. Intended as a
// bootstrap completeness check before sealing.
func (r *Registry) MissingRequired() []string {
	if r.cfg.catalog == nil {
		return nil
	}

	r.mu.RLock()
	registered := make(map[string]bool, len(r.entries))
	for c := range r.entries {
		registered[c.String()] = true
	}
	r.mu.RUnlock()

	var missing []string
	for _, d := range r.cfg.catalog.Required() {
		if !registered[d.Name] {
			missing = append(missing, d.Name)
		}
	}
	return missing
}

// Close removes and disposes every registered service. The registry remains
// usable afterwards; Close exists for explicit process teardown. It always
// returns nil: disposal failures are contained, not propagated.
func (r *Registry) Close() error {
	r.mu.Lock()
	drained := r.entries
	r.entries = make(map[Capability]entry)
	r.mu.Unlock()

	for c, e := range drained {
		r.cfg.metrics.RecordRemoval(context.Background(), c.String())
		r.dispose(c, e.instance)
		r.emit(Change{Kind: ServiceUnregistered, Capability: c})
	}
	return nil
}

// validate applies the registration contract shared by Register and Replace.
func (r *Registry) validate(c Capability, instance any) error {
	if c.IsZero() {
		return &InvalidArgumentError{Reason: "zero capability"}
	}
	if isNil(instance) {
		return &InvalidArgumentError{Capability: c, Reason: "nil instance"}
	}
	if !c.implementedBy(instance) {
		return &InvalidArgumentError{
			Capability: c,
			Reason:     fmt.Sprintf("%T does not implement %s", instance, c),
		}
	}
	if r.cfg.catalog != nil && !r.cfg.catalog.Allows(c.String()) {
		return &InvalidArgumentError{Capability: c, Reason: "capability not declared in catalog"}
	}
	return nil
}

// dispose releases a removed instance if it exposes io.Closer. Runs with no
// locks held: a slow or failing teardown must not stall unrelated lookups or
// prevent removal of the entry.
func (r *Registry) dispose(c Capability, instance any) {
	closer, ok := instance.(io.Closer)
	if !ok {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			err := fmt.Errorf("panic in Close: %v", p)
			observability.LogDisposalError(r.cfg.logger, c.String(), err)
			r.cfg.metrics.RecordDisposal(context.Background(), c.String(), err)
		}
	}()

	err := closer.Close()
	if err != nil {
		observability.LogDisposalError(r.cfg.logger, c.String(), err)
	}
	r.cfg.metrics.RecordDisposal(context.Background(), c.String(), err)
}

// isNil reports whether instance is nil, including typed-nil values boxed in
// an interface.
func isNil(instance any) bool {
	if instance == nil {
		return true
	}
	v := reflect.ValueOf(instance)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
