// Package recorder provides a simulator that records the events it is
// asked to realize instead of injecting them.
//
// A Recorder keeps one display line per atomic event, in arrival order.
// It can forward every event to a second simulator, turning it into an
// event log in front of a real backend.
package recorder

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
	"github.com/randalmurphal/inputflow/pkg/inputflow/inputs"
	"github.com/randalmurphal/inputflow/pkg/inputflow/observability"
)

// Recorder records catalogue events as display lines.
// It is safe for concurrent use.
type Recorder struct {
	name    string
	forward inputs.Simulator
	logger  *slog.Logger

	mu    sync.Mutex
	lines []string
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithName sets the name reported in errors and logs. Default "recorder".
func WithName(name string) Option {
	return func(r *Recorder) {
		if name != "" {
			r.name = name
		}
	}
}

// WithForward passes every catalogue event on to sim after recording it.
func WithForward(sim inputs.Simulator) Option {
	return func(r *Recorder) {
		r.forward = sim
	}
}

// WithLogger logs every recorded event at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// New creates an empty Recorder.
func New(opts ...Option) *Recorder {
	r := &Recorder{name: "recorder"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the recorder's name.
func (r *Recorder) Name() string {
	return r.name
}

// SimulateKey implements inputs.KeySimulator.
func (r *Recorder) SimulateKey(e inputs.KeyEvent) {
	r.record(e)
	if r.forward != nil {
		r.forward.SimulateKey(e)
	}
}

// SimulateButton implements inputs.ButtonSimulator.
func (r *Recorder) SimulateButton(e inputs.ButtonEvent) {
	r.record(e)
	if r.forward != nil {
		r.forward.SimulateButton(e)
	}
}

// SimulateChar implements inputs.CharSimulator.
func (r *Recorder) SimulateChar(e inputs.CharEvent) {
	r.record(e)
	if r.forward != nil {
		r.forward.SimulateChar(e)
	}
}

// SimulateMoveTo implements inputs.PointerSimulator.
func (r *Recorder) SimulateMoveTo(e inputs.MoveToEvent) {
	r.record(e)
	if r.forward != nil {
		r.forward.SimulateMoveTo(e)
	}
}

// SimulateMoveBy implements inputs.PointerSimulator.
func (r *Recorder) SimulateMoveBy(e inputs.MoveByEvent) {
	r.record(e)
	if r.forward != nil {
		r.forward.SimulateMoveBy(e)
	}
}

// SimulateScroll implements inputs.ScrollSimulator.
func (r *Recorder) SimulateScroll(e inputs.ScrollEvent) {
	r.record(e)
	if r.forward != nil {
		r.forward.SimulateScroll(e)
	}
}

// TrySimulate implements inputflow.TrySimulator for catalogue events.
// Events the forward target would reject are not recorded.
func (r *Recorder) TrySimulate(event any) error {
	if !r.Supports(event) {
		return fmt.Errorf("%w: %T", inputflow.ErrUnsupported, event)
	}
	switch e := event.(type) {
	case inputs.KeyEvent:
		r.SimulateKey(e)
	case inputs.ButtonEvent:
		r.SimulateButton(e)
	case inputs.CharEvent:
		r.SimulateChar(e)
	case inputs.MoveToEvent:
		r.SimulateMoveTo(e)
	case inputs.MoveByEvent:
		r.SimulateMoveBy(e)
	case inputs.ScrollEvent:
		r.SimulateScroll(e)
	}
	return nil
}

// Supports implements inputflow.Supporter. With a forward target that
// is itself a Supporter, the target must accept the event too.
func (r *Recorder) Supports(event any) bool {
	switch event.(type) {
	case inputs.KeyEvent, inputs.ButtonEvent, inputs.CharEvent,
		inputs.MoveToEvent, inputs.MoveByEvent, inputs.ScrollEvent:
	default:
		return false
	}
	if sup, ok := r.forward.(inputflow.Supporter); ok {
		return sup.Supports(event)
	}
	return true
}

// Record records any printable atomic event. Use it to bind event types
// outside the catalogue:
//
//	inputflow.Bind(myEvent, recorder.Record[MyEvent])
func Record[E fmt.Stringer](r *Recorder, e E) {
	r.record(e)
}

// Trace returns a copy of the recorded lines.
func (r *Recorder) Trace() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

// Reset discards every recorded line.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

// String returns the recorded lines, one per line.
func (r *Recorder) String() string {
	return strings.Join(r.Trace(), "\n")
}

func (r *Recorder) record(e fmt.Stringer) {
	line := e.String()
	r.mu.Lock()
	r.lines = append(r.lines, line)
	r.mu.Unlock()
	observability.LogEvent(r.logger, r.name, line)
}

// Compile-time interface checks.
var (
	_ inputs.Simulator       = (*Recorder)(nil)
	_ inputflow.TrySimulator = (*Recorder)(nil)
	_ inputflow.Supporter    = (*Recorder)(nil)
	_ inputflow.Tracer       = (*Recorder)(nil)
)
