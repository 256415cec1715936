package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled.
type NoopMetrics struct{}

// RecordRegistration implements MetricsRecorder.
func (NoopMetrics) RecordRegistration(context.Context, string, error) {}

// RecordLookup implements MetricsRecorder.
func (NoopMetrics) RecordLookup(context.Context, string, bool, float64) {}

// RecordRemoval implements MetricsRecorder.
func (NoopMetrics) RecordRemoval(context.Context, string) {}

// RecordDisposal implements MetricsRecorder.
func (NoopMetrics) RecordDisposal(context.Context, string, error) {}

// noopTracer produces non-recording spans.
var noopTracer = noop.NewTracerProvider().Tracer("locator")

// NoopSpanManager is a SpanManager that produces non-recording spans.
// Use when tracing is disabled.
type NoopSpanManager struct{}

// StartRegisterSpan implements SpanManager.
func (NoopSpanManager) StartRegisterSpan(ctx context.Context, capability string) (context.Context, trace.Span) {
	return noopTracer.Start(ctx, "locator.register")
}

// StartLookupSpan implements SpanManager.
func (NoopSpanManager) StartLookupSpan(ctx context.Context, capability string) (context.Context, trace.Span) {
	return noopTracer.Start(ctx, "locator.lookup")
}

// EndSpanWithError implements SpanManager.
func (NoopSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	span.End()
}

// AddSpanEvent implements SpanManager.
func (NoopSpanManager) AddSpanEvent(context.Context, string, ...attribute.KeyValue) {}
