package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records inputflow metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordPlayback records a completed playback run.
	RecordPlayback(ctx context.Context, simulator string, success bool, duration time.Duration)

	// RecordUnsupported records an event rejected on the fallible path.
	RecordUnsupported(ctx context.Context, simulator string)

	// RecordJournal records a journal entry write.
	RecordJournal(ctx context.Context, sizeBytes int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	playbackRuns    metric.Int64Counter
	playbackLatency metric.Float64Histogram
	unsupported     metric.Int64Counter
	journalSize     metric.Int64Histogram
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

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("inputflow")

	playbackRuns, err := meter.Int64Counter("inputflow.playback.runs",
		metric.WithDescription("Number of playback runs"),
	)
	if err != nil {
		return nil, err
	}

	playbackLatency, err := meter.Float64Histogram("inputflow.playback.latency_ms",
		metric.WithDescription("Playback latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	unsupported, err := meter.Int64Counter("inputflow.playback.unsupported",
		metric.WithDescription("Number of events rejected by a simulator"),
	)
	if err != nil {
		return nil, err
	}

	journalSize, err := meter.Int64Histogram("inputflow.journal.size_bytes",
		metric.WithDescription("Journal entry size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		playbackRuns:    playbackRuns,
		playbackLatency: playbackLatency,
		unsupported:     unsupported,
		journalSize:     journalSize,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before the first call:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordPlayback records a playback run.
func (m *otelMetrics) RecordPlayback(ctx context.Context, simulator string, success bool, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("simulator", simulator),
		attribute.Bool("success", success),
	)
	m.playbackRuns.Add(ctx, 1, attrs)
	m.playbackLatency.Record(ctx, float64(duration.Milliseconds()), attrs)
}

// RecordUnsupported records a rejected event.
func (m *otelMetrics) RecordUnsupported(ctx context.Context, simulator string) {
	m.unsupported.Add(ctx, 1, metric.WithAttributes(attribute.String("simulator", simulator)))
}

// RecordJournal records a journal write.
func (m *otelMetrics) RecordJournal(ctx context.Context, sizeBytes int64) {
	m.journalSize.Record(ctx, sizeBytes)
}
