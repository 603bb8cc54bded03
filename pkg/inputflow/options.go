package inputflow

import (
	"log/slog"

	"github.com/randalmurphal/inputflow/pkg/inputflow/journal"
	"github.com/randalmurphal/inputflow/pkg/inputflow/observability"
)

// runConfig holds configuration for an observed playback.
type runConfig struct {
	logger              *slog.Logger
	metrics             observability.MetricsRecorder
	spans               observability.SpanManager
	tracingEnabled      bool
	journal             journal.Store
	journalFailureFatal bool
	runID               string
	simulatorName       string
}

// defaultRunConfig returns the default playback configuration.
// Metrics and tracing are off; the logger falls back to the Context's.
func defaultRunConfig() runConfig {
	return runConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// RunOption configures playback behavior.
type RunOption func(*runConfig)

// WithRunID sets the run identifier, overriding the Context's.
func WithRunID(id string) RunOption {
	return func(c *runConfig) {
		c.runID = id
	}
}

// WithObservabilityLogger sets the logger for playback lifecycle events.
func WithObservabilityLogger(logger *slog.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = logger
	}
}

// WithMetrics enables or disables OpenTelemetry metrics.
// Metrics use the global meter provider.
func WithMetrics(enabled bool) RunOption {
	return func(c *runConfig) {
		if enabled {
			c.metrics = observability.NewMetricsRecorder()
		} else {
			c.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables or disables OpenTelemetry spans.
// Spans use the global tracer provider.
func WithTracing(enabled bool) RunOption {
	return func(c *runConfig) {
		c.tracingEnabled = enabled
		if enabled {
			c.spans = observability.NewSpanManager()
		} else {
			c.spans = observability.NoopSpanManager{}
		}
	}
}

// WithJournal records each playback to store.
//
// Example:
//
//	store, _ := journal.NewSQLiteStore("./playback.db")
//	defer store.Close()
//	err := inputflow.Run(ctx, flow, rec, inputflow.WithJournal(store))
func WithJournal(store journal.Store) RunOption {
	return func(c *runConfig) {
		c.journal = store
	}
}

// WithJournalFailureFatal makes journal failures fail the run.
// By default they are logged and playback reports success.
func WithJournalFailureFatal(fatal bool) RunOption {
	return func(c *runConfig) {
		c.journalFailureFatal = fatal
	}
}

// WithSimulatorName sets the simulator name used in logs and spans.
// Defaults to the simulator's Go type.
func WithSimulatorName(name string) RunOption {
	return func(c *runConfig) {
		c.simulatorName = name
	}
}
