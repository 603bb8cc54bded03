package script

import (
	"fmt"
	"time"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
	"github.com/randalmurphal/inputflow/pkg/inputflow/config"
	"github.com/randalmurphal/inputflow/pkg/inputflow/inputs"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	precision string
	threshold time.Duration
}

// WithPrecision selects how sleeps are played: config.PrecisionSleep
// (the default) or config.PrecisionSpin.
func WithPrecision(precision string) BuildOption {
	return func(c *buildConfig) {
		c.precision = precision
	}
}

// WithSpinThreshold sets the busy-wait tail of spin sleeps.
func WithSpinThreshold(d time.Duration) BuildOption {
	return func(c *buildConfig) {
		c.threshold = d
	}
}

// FromSettings applies the playback section of s.
func FromSettings(s config.Settings) BuildOption {
	return func(c *buildConfig) {
		c.precision = s.Playback.Precision
		c.threshold = s.Playback.SpinThreshold
	}
}

// Build turns s into a flow over simulators of type S. The script is
// validated first; Build never panics on bad input.
func Build[S inputs.Simulator](s *Script, opts ...BuildOption) (inputflow.Flow[S], error) {
	if s == nil {
		return inputflow.Flow[S]{}, fmt.Errorf("%w: script is nil", ErrInvalidScript)
	}
	cfg := buildConfig{precision: config.PrecisionSleep, threshold: inputflow.DefaultSpinThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.precision {
	case config.PrecisionSleep, config.PrecisionSpin:
	default:
		return inputflow.Flow[S]{}, fmt.Errorf("unknown sleep precision %q", cfg.precision)
	}
	if err := s.Validate(); err != nil {
		return inputflow.Flow[S]{}, err
	}

	b := builder[S]{cfg: cfg}
	flow := inputflow.From[S](b.steps(s.Steps))
	if s.Repeat > 1 {
		flow = flow.Repeat(s.Repeat)
	}
	return flow, nil
}

// builder assumes a validated script, so name lookups cannot fail.
type builder[S inputs.Simulator] struct {
	cfg buildConfig
	kb  inputs.Keyboard[S]
	m   inputs.Mouse[S]
	t   inputs.Typist[S]
}

func (b builder[S]) steps(steps []Step) inputflow.Seq[S] {
	seq := make(inputflow.Seq[S], 0, len(steps))
	for _, st := range steps {
		seq = append(seq, b.step(st))
	}
	return seq
}

func (b builder[S]) step(st Step) inputflow.Event[S] {
	switch {
	case st.Down != "":
		return b.kb.Down(key(st.Down))
	case st.Up != "":
		return b.kb.Up(key(st.Up))
	case st.Click != "":
		mods := make([]inputs.Key, len(st.With))
		for i, name := range st.With {
			mods[i] = key(name)
		}
		return b.kb.Press(key(st.Click), mods...)
	case st.Press != "":
		return b.m.Down(button(st.Press))
	case st.Release != "":
		return b.m.Up(button(st.Release))
	case st.Tap != "":
		return b.m.Click(button(st.Tap))
	case st.MoveTo != nil:
		return b.m.MoveTo(st.MoveTo.X, st.MoveTo.Y)
	case st.MoveBy != nil:
		return b.m.MoveBy(st.MoveBy.X, st.MoveBy.Y)
	case st.Scroll != nil:
		return b.m.Scroll(st.Scroll.X, st.Scroll.Y)
	case st.Type != nil:
		return b.t.Type(*st.Type)
	case st.Sleep != nil:
		return b.sleep(time.Duration(*st.Sleep))
	case st.Repeat != nil:
		return inputflow.From[S](b.steps(st.Repeat.Do)).Repeat(st.Repeat.Times)
	case st.Hold != nil:
		body := inputflow.From[S](b.steps(st.Hold.Do))
		if st.Hold.Key != "" {
			return body.During(b.kb.Down(key(st.Hold.Key)))
		}
		return body.During(b.m.Down(button(st.Hold.Button)))
	case st.OnlyIf != nil:
		return inputflow.From[S](b.steps(st.OnlyIf.Do)).OnlyIf(st.OnlyIf.Cond)
	}
	return inputflow.Seq[S]{}
}

func (b builder[S]) sleep(d time.Duration) inputflow.Event[S] {
	if b.cfg.precision == config.PrecisionSpin {
		return inputflow.SpinSleep[S]{Duration: d, Threshold: b.cfg.threshold}
	}
	return inputflow.Sleep[S]{Duration: d}
}

func key(name string) inputs.Key {
	k, _ := inputs.ParseKey(name)
	return k
}

func button(name string) inputs.MouseButton {
	b, _ := inputs.ParseButton(name)
	return b
}
