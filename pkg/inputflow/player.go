package inputflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/randalmurphal/inputflow/pkg/inputflow/journal"
	"github.com/randalmurphal/inputflow/pkg/inputflow/observability"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is implemented by simulators that keep a log of what they
// realized. When present, Run copies the lines produced by the run into
// the journal entry.
type Tracer interface {
	Trace() []string
}

// Run plays event against sim with logging, optional tracing, metrics,
// and journaling around it.
//
// Playback itself is synchronous and never interrupted: ctx is checked
// once before the first event, and a done ctx returns a
// *CancellationError without touching sim. A panic raised by sim is
// recovered and returned as a *PanicError.
//
// Example:
//
//	ctx := inputflow.NewContext(context.Background())
//	err := inputflow.Run(ctx, flow, rec,
//	    inputflow.WithTracing(true),
//	    inputflow.WithJournal(store))
func Run[S any](ctx Context, event Event[S], sim S, opts ...RunOption) error {
	if ctx == nil {
		return ErrNilContext
	}
	if event == nil {
		return ErrNilEvent
	}
	return run(ctx, fmt.Sprint(event), sim, func(func(*UnsupportedError)) error {
		event.Play(sim)
		return nil
	}, opts)
}

// RunPacks plays packs in order through the same pipeline as Run.
func RunPacks(ctx Context, packs Packs, opts ...RunOption) error {
	opts = append([]RunOption{WithSimulatorName("packs")}, opts...)
	return Run[struct{}](ctx, packsEvent{packs: packs}, struct{}{}, opts...)
}

// TryRun plays a dynamically typed list through the same pipeline as
// Run, dispatching each event as TryPlay does. Every unsupported event is
// logged and counted; policy decides whether it stops the list. The
// returned error is what TryPlayAll would return, and is journaled.
func TryRun[S any](ctx Context, sim S, events []any, policy Policy, opts ...RunOption) error {
	description := fmt.Sprintf("%d dynamic events (%v)", len(events), policy)
	return run(ctx, description, sim, func(unsupported func(*UnsupportedError)) error {
		var skipped []error
		for _, event := range events {
			err := TryPlay(event, sim)
			if err == nil {
				continue
			}
			var ue *UnsupportedError
			if errors.As(err, &ue) {
				unsupported(ue)
			}
			if policy == AbortOnUnsupported {
				return err
			}
			skipped = append(skipped, err)
		}
		return errors.Join(skipped...)
	}, opts)
}

// run is the observed pipeline shared by Run and TryRun.
func run(ctx Context, description string, sim any, play func(unsupported func(*UnsupportedError)) error, opts []RunOption) (runErr error) {
	if ctx == nil {
		return ErrNilContext
	}

	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := cfg.runID
	if runID == "" {
		runID = ctx.RunID()
	}
	if cfg.journal != nil && runID == "" {
		return ErrRunIDRequired
	}

	logger := cfg.logger
	if logger == nil {
		logger = ctx.Logger()
	}
	simName := cfg.simulatorName
	if simName == "" {
		simName = simulatorName(sim)
	}

	select {
	case <-ctx.Done():
		return &CancellationError{RunID: runID, Description: description, Cause: ctx.Err()}
	default:
	}

	elapsed := observability.TimedOperation()
	logger = observability.EnrichLogger(logger, runID, simName)
	observability.LogPlayStart(logger, description)

	var lines []string
	var spanCtx context.Context = ctx
	var span trace.Span
	if cfg.tracingEnabled {
		spanCtx, span = cfg.spans.StartPlaySpan(ctx, observability.PlaySpan{
			Simulator:   simName,
			RunID:       runID,
			Description: description,
		})
		defer func() {
			cfg.spans.EndPlaySpan(span, len(lines), runErr)
		}()
	}

	tracer, traced := sim.(Tracer)
	before := 0
	if traced {
		before = len(tracer.Trace())
	}

	unsupported := func(ue *UnsupportedError) {
		observability.LogUnsupported(logger, fmt.Sprint(ue.Event), ue)
		cfg.metrics.RecordUnsupported(spanCtx, simName)
		cfg.spans.MarkUnsupported(spanCtx, fmt.Sprint(ue.Event))
	}
	runErr = playRecovered(runID, func() error { return play(unsupported) })

	duration := elapsed()

	if traced {
		if all := tracer.Trace(); len(all) >= before {
			lines = all[before:]
		}
	}

	cfg.metrics.RecordPlayback(spanCtx, simName, runErr == nil, duration)

	if runErr != nil {
		observability.LogPlayError(logger, runErr, duration)
	} else {
		observability.LogPlayComplete(logger, duration, len(lines))
	}

	if cfg.journal != nil {
		if err := appendJournal(spanCtx, &cfg, logger, runID, simName, description, lines, duration, runErr); err != nil && runErr == nil {
			runErr = err
		}
	}

	return runErr
}

// playRecovered calls play and converts a simulator panic into an error.
func playRecovered(runID string, play func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{
				RunID: runID,
				Value: r,
				Stack: string(debug.Stack()),
			}
		}
	}()
	return play()
}

// appendJournal writes the playback record. Failures are logged unless
// the run was configured to treat them as fatal.
func appendJournal(ctx context.Context, cfg *runConfig, logger *slog.Logger, runID, simName, description string, lines []string, duration time.Duration, playErr error) error {
	entry := journal.New(runID, simName, description, lines, duration, playErr)
	data, err := entry.Marshal()
	if err != nil {
		if cfg.journalFailureFatal {
			return &JournalError{RunID: runID, Op: "serialize", Err: err}
		}
		observability.LogJournalError(logger, "serialize", err)
		return nil
	}

	seq, err := cfg.journal.Append(runID, data)
	if err != nil {
		if cfg.journalFailureFatal {
			return &JournalError{RunID: runID, Op: "append", Err: err}
		}
		observability.LogJournalError(logger, "append", err)
		return nil
	}

	cfg.metrics.RecordJournal(ctx, int64(len(data)))
	observability.LogJournal(logger, seq, len(data))
	return nil
}
