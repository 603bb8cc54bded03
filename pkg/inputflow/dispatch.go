package inputflow

import (
	"fmt"
	"time"
)

// Invertible is an event with an inverse, usable as a During bracket.
// Playing an event and then its inverse must leave the input unchanged.
type Invertible[S any] interface {
	Event[S]
	Invert() Event[S]
}

// Cloner is implemented by events that carry state which must not be
// shared between plays. Repeat and Flow.Clone use it when present;
// events without it are plain values and are replayed as-is.
type Cloner[S any] interface {
	Clone() Event[S]
}

// cloneEvent returns an independent copy of e.
func cloneEvent[S any](e Event[S]) Event[S] {
	if c, ok := e.(Cloner[S]); ok {
		return c.Clone()
	}
	return e
}

// Atom is an atomic event bound to the simulator method that realizes it.
//
// The binding is checked by the compiler: simulate must accept exactly
// the event type E, so pairing an event with a simulator that cannot
// handle it is a build error rather than a runtime one.
type Atom[S, E any] struct {
	event    E
	simulate func(S, E)
}

// Bind binds event to simulate, usually a method expression:
//
//	inputflow.Bind(inputs.Home.Down(), (*recorder.Recorder).SimulateKey)
//
// Panics if simulate is nil.
func Bind[S, E any](event E, simulate func(S, E)) Atom[S, E] {
	if simulate == nil {
		panic("inputflow: simulate function cannot be nil")
	}
	return Atom[S, E]{event: event, simulate: simulate}
}

// Play delivers the event to sim.
func (a Atom[S, E]) Play(sim S) {
	a.simulate(sim, a.event)
}

// Event returns the bound atomic event.
func (a Atom[S, E]) Event() E {
	return a.event
}

// String implements fmt.Stringer.
func (a Atom[S, E]) String() string {
	return fmt.Sprint(a.event)
}

// Flow starts a builder chain from a.
func (a Atom[S, E]) Flow() Flow[S] { return From[S](a) }

// Then plays a and then next.
func (a Atom[S, E]) Then(next Event[S]) Flow[S] { return a.Flow().Then(next) }

// Sleep plays a and then sleeps for d.
func (a Atom[S, E]) Sleep(d time.Duration) Flow[S] { return a.Flow().Sleep(d) }

// SleepMs plays a and then sleeps for ms milliseconds.
func (a Atom[S, E]) SleepMs(ms int64) Flow[S] { return a.Flow().SleepMs(ms) }

// Repeat plays a n times.
func (a Atom[S, E]) Repeat(n int) Flow[S] { return a.Flow().Repeat(n) }

// OnlyIf plays a only when cond is true.
func (a Atom[S, E]) OnlyIf(cond bool) Flow[S] { return a.Flow().OnlyIf(cond) }

// During plays a while bracket is held.
func (a Atom[S, E]) During(bracket Invertible[S]) Flow[S] { return a.Flow().During(bracket) }

// Toggle is a boolean set bound to its simulator method. Unlike Atom it
// knows its inverse, so it can bracket other events with During.
type Toggle[S, I any] struct {
	event    SetTo[I, bool]
	simulate func(S, SetTo[I, bool])
}

// BindToggle binds a boolean set to simulate. Panics if simulate is nil.
func BindToggle[S, I any](event SetTo[I, bool], simulate func(S, SetTo[I, bool])) Toggle[S, I] {
	if simulate == nil {
		panic("inputflow: simulate function cannot be nil")
	}
	return Toggle[S, I]{event: event, simulate: simulate}
}

// Play delivers the event to sim.
func (t Toggle[S, I]) Play(sim S) {
	t.simulate(sim, t.event)
}

// Invert returns the same input set to the opposite value, bound to the
// same simulator method.
func (t Toggle[S, I]) Invert() Event[S] {
	return Toggle[S, I]{event: Invert(t.event), simulate: t.simulate}
}

// Event returns the bound set.
func (t Toggle[S, I]) Event() SetTo[I, bool] {
	return t.event
}

// String implements fmt.Stringer.
func (t Toggle[S, I]) String() string {
	return t.event.String()
}

// Flow starts a builder chain from t.
func (t Toggle[S, I]) Flow() Flow[S] { return From[S](t) }

// Then plays t and then next.
func (t Toggle[S, I]) Then(next Event[S]) Flow[S] { return t.Flow().Then(next) }

// Sleep plays t and then sleeps for d.
func (t Toggle[S, I]) Sleep(d time.Duration) Flow[S] { return t.Flow().Sleep(d) }

// SleepMs plays t and then sleeps for ms milliseconds.
func (t Toggle[S, I]) SleepMs(ms int64) Flow[S] { return t.Flow().SleepMs(ms) }

// Repeat plays t n times.
func (t Toggle[S, I]) Repeat(n int) Flow[S] { return t.Flow().Repeat(n) }

// OnlyIf plays t only when cond is true.
func (t Toggle[S, I]) OnlyIf(cond bool) Flow[S] { return t.Flow().OnlyIf(cond) }

// During plays t while bracket is held.
func (t Toggle[S, I]) During(bracket Invertible[S]) Flow[S] { return t.Flow().During(bracket) }

// Compile-time interface checks.
var (
	_ Invertible[struct{}] = Toggle[struct{}, string]{}
	_ Event[struct{}]      = Atom[struct{}, string]{}
)
