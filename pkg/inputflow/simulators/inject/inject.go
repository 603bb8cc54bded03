// Package inject adapts catalogue events onto a low-level input injector.
//
// The injector speaks in virtual-key codes, button numbers, and relative
// pointer deltas. Platform backends implement Injector; Simulator does
// the translation, tracks the logical pointer position and modifier
// state, and collects injection failures so that playback never stops
// halfway through a composition.
package inject

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
	"github.com/randalmurphal/inputflow/pkg/inputflow/inputs"
)

// Injector delivers raw input to the system.
type Injector interface {
	// InjectMouseMove moves the pointer by (dx, dy).
	InjectMouseMove(dx, dy int) error

	// InjectMouseButton presses or releases a button.
	// 1 is left, 2 right, 3 middle, 4 and 5 the side buttons.
	InjectMouseButton(button int, pressed bool) error

	// InjectKey presses or releases a virtual-key code with the given
	// modifier bits held.
	InjectKey(keyCode uint16, pressed bool, modifiers uint16) error
}

// AbsoluteInjector can place the pointer at absolute coordinates.
// Without it, MoveTo is sent as a delta from the tracked position.
type AbsoluteInjector interface {
	InjectMouseTo(x, y int) error
}

// ScrollInjector can scroll the wheel.
type ScrollInjector interface {
	InjectScroll(dx, dy int) error
}

// UnicodeInjector can type arbitrary characters.
// Without it, only ASCII letters, digits, and whitespace can be typed.
type UnicodeInjector interface {
	InjectUnicode(r rune, pressed bool) error
}

// ErrInjectorRequired is returned by New when no injector is given.
var ErrInjectorRequired = errors.New("inject: injector is required")

// Simulator realizes catalogue events through an Injector.
// It is safe for concurrent use.
type Simulator struct {
	inj    Injector
	name   string
	logger *slog.Logger

	mu   sync.Mutex
	pos  inputs.Point
	held map[inputs.Key]uint16
	errs []error
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithName sets the name reported in errors and logs. Default "inject".
func WithName(name string) Option {
	return func(s *Simulator) {
		if name != "" {
			s.name = name
		}
	}
}

// WithLogger sets the logger for injection failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOrigin sets the starting pointer position.
func WithOrigin(p inputs.Point) Option {
	return func(s *Simulator) {
		s.pos = p
	}
}

// New creates a Simulator over inj.
func New(inj Injector, opts ...Option) (*Simulator, error) {
	if inj == nil {
		return nil, ErrInjectorRequired
	}
	s := &Simulator{
		inj:    inj,
		name:   "inject",
		logger: slog.Default(),
		held:   make(map[inputs.Key]uint16),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Name returns the simulator's name.
func (s *Simulator) Name() string {
	return s.name
}

// Position returns the tracked pointer position.
func (s *Simulator) Position() inputs.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Modifiers returns the modifier bits currently held.
func (s *Simulator) Modifiers() uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modsLocked()
}

// modsLocked folds the held modifier keys into bits. A bit stays set
// while either side of its modifier is down.
func (s *Simulator) modsLocked() uint16 {
	var mods uint16
	for _, bit := range s.held {
		mods |= bit
	}
	return mods
}

// Err returns every injection failure since the last Reset, joined.
func (s *Simulator) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(s.errs...)
}

// Reset clears collected failures.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = nil
}

// SimulateKey implements inputs.KeySimulator.
func (s *Simulator) SimulateKey(e inputs.KeyEvent) {
	vk, ok := VirtualKey(e.Input)
	if !ok {
		s.fail(e, fmt.Errorf("%w: no key code for %v", inputflow.ErrUnsupported, e.Input))
		return
	}
	s.mu.Lock()
	if bit := modifierBit(e.Input); bit != 0 {
		if e.To {
			s.held[e.Input] = bit
		} else {
			delete(s.held, e.Input)
		}
	}
	mods := s.modsLocked()
	s.mu.Unlock()
	s.check(e, s.inj.InjectKey(vk, e.To, mods))
}

// SimulateButton implements inputs.ButtonSimulator.
func (s *Simulator) SimulateButton(e inputs.ButtonEvent) {
	n, ok := ButtonNumber(e.Input)
	if !ok {
		s.fail(e, fmt.Errorf("%w: no button number for %v", inputflow.ErrUnsupported, e.Input))
		return
	}
	s.check(e, s.inj.InjectMouseButton(n, e.To))
}

// SimulateChar implements inputs.CharSimulator.
func (s *Simulator) SimulateChar(e inputs.CharEvent) {
	if u, ok := s.inj.(UnicodeInjector); ok {
		s.check(e, u.InjectUnicode(rune(e.Input), e.To))
		return
	}
	vk, shift, ok := charKey(rune(e.Input))
	if !ok {
		s.fail(e, fmt.Errorf("%w: cannot type %v", inputflow.ErrUnsupported, e.Input))
		return
	}
	mods := s.Modifiers()
	if shift {
		mods |= ModShift
	}
	s.check(e, s.inj.InjectKey(vk, e.To, mods))
}

// SimulateMoveTo implements inputs.PointerSimulator.
func (s *Simulator) SimulateMoveTo(e inputs.MoveToEvent) {
	s.mu.Lock()
	from := s.pos
	s.pos = e.To
	s.mu.Unlock()

	if a, ok := s.inj.(AbsoluteInjector); ok {
		s.check(e, a.InjectMouseTo(e.To.X, e.To.Y))
		return
	}
	s.check(e, s.inj.InjectMouseMove(e.To.X-from.X, e.To.Y-from.Y))
}

// SimulateMoveBy implements inputs.PointerSimulator.
func (s *Simulator) SimulateMoveBy(e inputs.MoveByEvent) {
	s.mu.Lock()
	s.pos = s.pos.Add(e.By)
	s.mu.Unlock()
	s.check(e, s.inj.InjectMouseMove(e.By.X, e.By.Y))
}

// SimulateScroll implements inputs.ScrollSimulator.
func (s *Simulator) SimulateScroll(e inputs.ScrollEvent) {
	sc, ok := s.inj.(ScrollInjector)
	if !ok {
		s.fail(e, fmt.Errorf("%w: injector cannot scroll", inputflow.ErrUnsupported))
		return
	}
	s.check(e, sc.InjectScroll(e.By.X, e.By.Y))
}

// TrySimulate implements inputflow.TrySimulator. Events the injector
// cannot express are rejected without effect. Injection failures on
// accepted events are collected, not returned.
func (s *Simulator) TrySimulate(event any) error {
	if !s.Supports(event) {
		return fmt.Errorf("%w: %s cannot inject %T", inputflow.ErrUnsupported, s.name, event)
	}
	switch e := event.(type) {
	case inputs.KeyEvent:
		s.SimulateKey(e)
	case inputs.ButtonEvent:
		s.SimulateButton(e)
	case inputs.CharEvent:
		s.SimulateChar(e)
	case inputs.MoveToEvent:
		s.SimulateMoveTo(e)
	case inputs.MoveByEvent:
		s.SimulateMoveBy(e)
	case inputs.ScrollEvent:
		s.SimulateScroll(e)
	}
	return nil
}

// Supports implements inputflow.Supporter.
func (s *Simulator) Supports(event any) bool {
	switch e := event.(type) {
	case inputs.KeyEvent:
		_, ok := VirtualKey(e.Input)
		return ok
	case inputs.ButtonEvent:
		_, ok := ButtonNumber(e.Input)
		return ok
	case inputs.CharEvent:
		if _, ok := s.inj.(UnicodeInjector); ok {
			return true
		}
		_, _, ok := charKey(rune(e.Input))
		return ok
	case inputs.MoveToEvent, inputs.MoveByEvent:
		return true
	case inputs.ScrollEvent:
		_, ok := s.inj.(ScrollInjector)
		return ok
	}
	return false
}

func (s *Simulator) check(e fmt.Stringer, err error) {
	if err != nil {
		s.fail(e, err)
	}
}

func (s *Simulator) fail(e fmt.Stringer, err error) {
	err = fmt.Errorf("%s: %v: %w", s.name, e, err)
	s.mu.Lock()
	s.errs = append(s.errs, err)
	s.mu.Unlock()
	s.logger.Warn("injection failed",
		slog.String("simulator", s.name),
		slog.String("event", e.String()),
		slog.String("error", err.Error()),
	)
}

// Compile-time interface checks.
var (
	_ inputs.Simulator       = (*Simulator)(nil)
	_ inputflow.TrySimulator = (*Simulator)(nil)
	_ inputflow.Supporter    = (*Simulator)(nil)
)
