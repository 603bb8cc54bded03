package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics discards every measurement. It is the default when
// metrics are off.
type NoopMetrics struct{}

func (NoopMetrics) RecordPlayback(context.Context, string, bool, time.Duration) {}
func (NoopMetrics) RecordUnsupported(context.Context, string) {}
func (NoopMetrics) RecordJournal(context.Context, int64) {}

// NoopSpanManager starts no spans. It is the default when tracing is off.
type NoopSpanManager struct{}

// StartPlaySpan returns ctx unchanged and a span that records nothing.
func (NoopSpanManager) StartPlaySpan(ctx context.Context, _ PlaySpan) (context.Context, trace.Span) {
	return ctx, noop.Span{}
}

func (NoopSpanManager) MarkUnsupported(context.Context, string) {}
func (NoopSpanManager) EndPlaySpan(trace.Span, int, error) {}

var (
	_ MetricsRecorder = NoopMetrics{}
	_ SpanManager     = NoopSpanManager{}
)
