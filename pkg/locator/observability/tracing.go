package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the locator tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("locator")

// SpanManager handles trace span lifecycle around registry operations.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
//
// The registry itself does not open spans: its operations are constant-time
// in-memory map accesses. Callers that want bootstrap or lookup visibility
// wrap the calls themselves.
type SpanManager interface {
	// StartRegisterSpan starts a span covering a registration.
	StartRegisterSpan(ctx context.Context, capability string) (context.Context, trace.Span)

	// StartLookupSpan starts a span covering a lookup.
	StartLookupSpan(ctx context.Context, capability string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRegisterSpan starts a span covering a registration.
func (m *otelSpanManager) StartRegisterSpan(ctx context.Context, capability string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "locator.register",
		trace.WithAttributes(attribute.String("capability", capability)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartLookupSpan starts a span covering a lookup.
func (m *otelSpanManager) StartLookupSpan(ctx context.Context, capability string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "locator.lookup",
		trace.WithAttributes(attribute.String("capability", capability)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// Convenience functions that operate on the global tracer.
// These are useful for simple cases where you don't need the interface.

// StartRegisterSpan starts a span covering a registration.
// Uses the global OTel tracer.
func StartRegisterSpan(ctx context.Context, capability string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "locator.register",
		trace.WithAttributes(attribute.String("capability", capability)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartLookupSpan starts a span covering a lookup.
// Uses the global OTel tracer.
func StartLookupSpan(ctx context.Context, capability string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "locator.lookup",
		trace.WithAttributes(attribute.String("capability", capability)),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
