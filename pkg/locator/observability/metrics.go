package observability

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry operation metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRegistration records a register or replace attempt and its outcome.
	RecordRegistration(ctx context.Context, capability string, err error)

	// RecordLookup records a get with its hit/miss outcome and latency.
	RecordLookup(ctx context.Context, capability string, hit bool, durationMs float64)

	// RecordRemoval records a successful unregister.
	RecordRemoval(ctx context.Context, capability string)

	// RecordDisposal records a disposal hook invocation and its outcome.
	RecordDisposal(ctx context.Context, capability string, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	registrations      metric.Int64Counter
	registrationErrors metric.Int64Counter
	lookups            metric.Int64Counter
	lookupLatency      metric.Float64Histogram
	removals           metric.Int64Counter
	disposals          metric.Int64Counter
	disposalErrors     metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global OTel
// meter provider. Configure the provider before recording:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() (MetricsRecorder, error) {
	m, err := getDefaultMetrics()
	if err != nil {
		return nil, err
	}
	return m, nil
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("locator")

	registrations, err := meter.Int64Counter("locator.registrations",
		metric.WithDescription("Number of successful service registrations"),
	)
	if err != nil {
		return nil, err
	}

	registrationErrors, err := meter.Int64Counter("locator.registration.errors",
		metric.WithDescription("Number of rejected registration attempts"),
	)
	if err != nil {
		return nil, err
	}

	lookups, err := meter.Int64Counter("locator.lookups",
		metric.WithDescription("Number of service lookups"),
	)
	if err != nil {
		return nil, err
	}

	lookupLatency, err := meter.Float64Histogram("locator.lookup.latency_ms",
		metric.WithDescription("Service lookup latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	removals, err := meter.Int64Counter("locator.removals",
		metric.WithDescription("Number of service removals"),
	)
	if err != nil {
		return nil, err
	}

	disposals, err := meter.Int64Counter("locator.disposals",
		metric.WithDescription("Number of disposal hook invocations"),
	)
	if err != nil {
		return nil, err
	}

	disposalErrors, err := meter.Int64Counter("locator.disposal.errors",
		metric.WithDescription("Number of failed disposal hooks"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		registrations:      registrations,
		registrationErrors: registrationErrors,
		lookups:            lookups,
		lookupLatency:      lookupLatency,
		removals:           removals,
		disposals:          disposals,
		disposalErrors:     disposalErrors,
	}, nil
}

// RecordRegistration implements MetricsRecorder.
func (m *otelMetrics) RecordRegistration(ctx context.Context, capability string, err error) {
	attrs := metric.WithAttributes(attribute.String("capability", capability))
	if err != nil {
		m.registrationErrors.Add(ctx, 1, attrs)
		return
	}
	m.registrations.Add(ctx, 1, attrs)
}

// RecordLookup implements MetricsRecorder.
func (m *otelMetrics) RecordLookup(ctx context.Context, capability string, hit bool, durationMs float64) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("capability", capability),
		attribute.Bool("hit", hit),
	))
	m.lookupLatency.Record(ctx, durationMs, metric.WithAttributes(
		attribute.String("capability", capability),
	))
}

// RecordRemoval implements MetricsRecorder.
func (m *otelMetrics) RecordRemoval(ctx context.Context, capability string) {
	m.removals.Add(ctx, 1, metric.WithAttributes(attribute.String("capability", capability)))
}

// RecordDisposal implements MetricsRecorder.
func (m *otelMetrics) RecordDisposal(ctx context.Context, capability string, err error) {
	attrs := metric.WithAttributes(attribute.String("capability", capability))
	m.disposals.Add(ctx, 1, attrs)
	if err != nil {
		m.disposalErrors.Add(ctx, 1, attrs)
	}
}
