package inputflow

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/inputflow/pkg/inputflow/observability"
)

// TrySimulator is a simulator that decides at runtime which events it
// can handle. TrySimulate returns an error wrapping ErrUnsupported when
// it rejects event, and must not have any effect in that case.
type TrySimulator interface {
	TrySimulate(event any) error
}

// Supporter reports ahead of time whether TrySimulate would accept event.
type Supporter interface {
	Supports(event any) bool
}

// Policy decides what TryPlayAll does with an unsupported event.
type Policy int

const (
	// AbortOnUnsupported stops at the first unsupported event.
	AbortOnUnsupported Policy = iota
	// SkipUnsupported drops unsupported events and keeps playing.
	SkipUnsupported
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case AbortOnUnsupported:
		return "abort"
	case SkipUnsupported:
		return "skip"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// TryPlay plays event against sim, reporting failure instead of
// requiring a compile-time binding.
//
// An event that already implements Event[S] always succeeds. Otherwise
// sim must implement TrySimulator; a rejection comes back as an
// *UnsupportedError holding the unconsumed event.
func TryPlay[S any](event any, sim S) error {
	if e, ok := event.(Event[S]); ok {
		e.Play(sim)
		return nil
	}
	ts, ok := any(sim).(TrySimulator)
	if !ok {
		return &UnsupportedError{Event: event, Simulator: simulatorName(sim), Err: ErrUnsupported}
	}
	if err := ts.TrySimulate(event); err != nil {
		return &UnsupportedError{Event: event, Simulator: simulatorName(sim), Err: err}
	}
	return nil
}

// TryPlayAll plays events in order under policy. With AbortOnUnsupported
// it returns the first failure; with SkipUnsupported it plays everything
// it can and returns the skipped failures joined, or nil.
func TryPlayAll[S any](sim S, events []any, policy Policy) error {
	var skipped []error
	for _, event := range events {
		if err := TryPlay(event, sim); err != nil {
			if policy == AbortOnUnsupported {
				return err
			}
			skipped = append(skipped, err)
		}
	}
	return errors.Join(skipped...)
}

// TryBind erases event for sim without playing it. It succeeds for any
// Event[S], and for a TrySimulator that also implements Supporter and
// accepts the event.
func TryBind[S any](event any, sim S) (Pack, error) {
	if e, ok := event.(Event[S]); ok {
		return Bound(e, sim), nil
	}
	if ts, ok := any(sim).(TrySimulator); ok {
		if sup, ok := ts.(Supporter); ok && sup.Supports(event) {
			return NewPack(&tryBound{event: event, sim: ts}), nil
		}
	}
	return Pack{}, &UnsupportedError{Event: event, Simulator: simulatorName(sim), Err: ErrUnsupported}
}

// tryBound is a Packable over a runtime-checked event. Support was
// confirmed when it was built; a simulator that rejects the event later
// is logged as unsupported on the default logger, since Call cannot
// return an error.
type tryBound struct {
	event any
	sim   TrySimulator
}

func (t *tryBound) Call() {
	if err := t.sim.TrySimulate(t.event); err != nil {
		logger := observability.EnrichLogger(slog.Default(), "", simulatorName(t.sim))
		observability.LogUnsupported(logger, fmt.Sprint(t.event), err)
	}
}

func (t *tryBound) Clone() Packable {
	return &tryBound{event: t.event, sim: t.sim}
}

func (t *tryBound) String() string {
	return fmt.Sprint(t.event)
}

func simulatorName(sim any) string {
	if n, ok := sim.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", sim)
}
