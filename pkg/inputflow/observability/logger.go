// Package observability provides logging, metrics, and tracing for
// inputflow playback.
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

// EnrichLogger adds playback context to a logger.
// Returns a new logger with run_id and simulator fields. The Log*
// helpers below expect an enriched logger and do not repeat those fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "run-123", "recorder")
//	enriched.Info("replaying") // includes run_id, simulator
func EnrichLogger(logger *slog.Logger, runID, simulator string) *slog.Logger {
	if logger == nil {
		return nil
	}
	attrs := make([]any, 0, 2)
	if runID != "" {
		attrs = append(attrs, slog.String("run_id", runID))
	}
	attrs = append(attrs, slog.String("simulator", simulator))
	return logger.With(attrs...)
}

// LogPlayStart logs the start of a playback run.
func LogPlayStart(logger *slog.Logger, description string) {
	if logger == nil {
		return
	}
	logger.Info("playback starting", slog.String("event", description))
}

// LogPlayComplete logs successful playback completion.
// recorded is the number of events the simulator reported, when it keeps a trace.
func LogPlayComplete(logger *slog.Logger, elapsed time.Duration, recorded int) {
	if logger == nil {
		return
	}
	logger.Info("playback completed",
		durationAttr(elapsed),
		slog.Int("events_recorded", recorded),
	)
}

// LogPlayError logs playback failure.
func LogPlayError(logger *slog.Logger, err error, elapsed time.Duration) {
	if logger == nil {
		return
	}
	logger.Error("playback failed",
		slog.String("error", err.Error()),
		durationAttr(elapsed),
	)
}

// LogUnsupported logs an event a simulator rejected on the fallible path.
func LogUnsupported(logger *slog.Logger, event string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("event not supported",
		slog.String("event", event),
		slog.String("error", err.Error()),
	)
}

// LogEvent logs a single atomic event as a simulator realizes it.
func LogEvent(logger *slog.Logger, simulator, event string) {
	if logger == nil {
		return
	}
	logger.Debug("event simulated",
		slog.String("simulator", simulator),
		slog.String("event", event),
	)
}

// LogJournal logs a journal entry being written.
func LogJournal(logger *slog.Logger, sequence, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("playback journaled",
		slog.Int("sequence", sequence),
		slog.Int("size_bytes", sizeBytes),
	)
}

// LogJournalError logs journal failure (non-fatal).
func LogJournalError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal failed",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

func durationAttr(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d)/float64(time.Millisecond))
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the time elapsed since
// TimedOperation was called.
//
// Example:
//
//	elapsed := TimedOperation()
//	// ... play ...
//	LogPlayComplete(logger, elapsed(), n)
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
