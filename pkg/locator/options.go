package locator

import (
	"log/slog"

	"github.com/randalmurphal/locator/pkg/locator/catalog"
	"github.com/randalmurphal/locator/pkg/locator/journal"
	"github.com/randalmurphal/locator/pkg/locator/observability"
)

// config holds registry construction settings.
type config struct {
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	catalog  *catalog.Catalog
	journal  journal.Store
	onChange []func(Change)
}

// defaultConfig returns the default registry configuration: slog.Default()
// for the disposal/journal side channels and no-op metrics.
func defaultConfig() config {
	return config{
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
	}
}

// Option configures a Registry.
type Option func(*config)

// WithLogger sets the logger used for change records and for reporting
// best-effort failures (disposal hooks, journal appends). A nil logger
// keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder for registry operations.
// Use observability.NewMetricsRecorder() for OpenTelemetry metrics.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithCatalog restricts registration to capability identities declared in
// cat. Register and Replace reject undeclared identities with an
// *InvalidArgumentError, and MissingRequired reports required declarations
// that have no service yet.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *config) {
		c.catalog = cat
	}
}

// WithJournal records every registry mutation to store. Appends are
// best-effort and never block map mutation beyond the call itself; failures
// are logged and dropped. The caller owns the store's lifecycle - the
// registry never closes it.
func WithJournal(store journal.Store) Option {
	return func(c *config) {
		c.journal = store
	}
}

// WithOnChange appends fn to the change hooks. Hooks run synchronously on
// the mutating goroutine, in registration order, after the mutation is
// visible. This is a fixed diagnostic tap configured at construction, not a
// pub/sub surface.
func WithOnChange(fn func(Change)) Option {
	return func(c *config) {
		if fn != nil {
			c.onChange = append(c.onChange, fn)
		}
	}
}
