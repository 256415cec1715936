// Package observability provides structured logging, metrics, and tracing
// helpers for locator registries.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// LogRegistered logs a new capability binding.
func LogRegistered(logger *slog.Logger, capability, changeID string) {
	if logger == nil {
		return
	}
	logger.Debug("service registered",
		slog.String("capability", capability),
		slog.String("change_id", changeID),
	)
}

// LogReplaced logs an atomic swap of an existing binding.
func LogReplaced(logger *slog.Logger, capability, changeID string) {
	if logger == nil {
		return
	}
	logger.Debug("service replaced",
		slog.String("capability", capability),
		slog.String("change_id", changeID),
	)
}

// LogUnregistered logs removal of a binding.
func LogUnregistered(logger *slog.Logger, capability, changeID string) {
	if logger == nil {
		return
	}
	logger.Debug("service unregistered",
		slog.String("capability", capability),
		slog.String("change_id", changeID),
	)
}

// LogDisposalError logs a disposal hook failure (non-fatal).
func LogDisposalError(logger *slog.Logger, capability string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("service disposal failed",
		slog.String("capability", capability),
		slog.String("error", err.Error()),
	)
}

// LogJournalError logs a journal append failure (non-fatal).
func LogJournalError(logger *slog.Logger, capability string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal append failed",
		slog.String("capability", capability),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
