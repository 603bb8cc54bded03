package observability

import (
	"context"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("inputflow")

// Span attribute keys.
const (
	AttrSimulator   = attribute.Key("inputflow.simulator")
	AttrRunID       = attribute.Key("inputflow.run_id")
	AttrDescription = attribute.Key("inputflow.description")
	AttrEvents      = attribute.Key("inputflow.events")
	AttrEvent       = attribute.Key("inputflow.event")
)

// maxDescription caps the description attribute; long compositions
// display as thousands of characters.
const maxDescription = 256

// PlaySpan identifies the playback a span covers.
type PlaySpan struct {
	Simulator   string
	RunID       string
	Description string
}

// SpanManager handles the span of one playback run.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartPlaySpan opens the span covering a playback run.
	StartPlaySpan(ctx context.Context, play PlaySpan) (context.Context, trace.Span)

	// MarkUnsupported notes an event the simulator rejected on the span in ctx.
	MarkUnsupported(ctx context.Context, event string)

	// EndPlaySpan records how many events the simulator realized and the
	// outcome, then ends span.
	EndPlaySpan(span trace.Span, events int, err error)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager backed by the global tracer
// provider. Configure it with otel.SetTracerProvider.
func NewSpanManager() SpanManager {
	return otelSpanManager{}
}

func (otelSpanManager) StartPlaySpan(ctx context.Context, play PlaySpan) (context.Context, trace.Span) {
	return StartPlaySpan(ctx, play)
}

func (otelSpanManager) MarkUnsupported(ctx context.Context, event string) {
	MarkUnsupported(ctx, event)
}

func (otelSpanManager) EndPlaySpan(span trace.Span, events int, err error) {
	EndPlaySpan(span, events, err)
}

// StartPlaySpan starts an "inputflow.play" span on the global tracer.
func StartPlaySpan(ctx context.Context, play PlaySpan) (context.Context, trace.Span) {
	return tracer.Start(ctx, "inputflow.play",
		trace.WithAttributes(
			AttrSimulator.String(play.Simulator),
			AttrRunID.String(play.RunID),
			AttrDescription.String(truncate(play.Description, maxDescription)),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// MarkUnsupported adds an "unsupported event" event to the span in ctx.
func MarkUnsupported(ctx context.Context, event string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent("unsupported event", trace.WithAttributes(AttrEvent.String(event)))
}

// EndPlaySpan sets the realized event count and status, then ends span.
// A nil span is ignored.
func EndPlaySpan(span trace.Span, events int, err error) {
	if span == nil {
		return
	}
	span.SetAttributes(AttrEvents.Int(events))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
