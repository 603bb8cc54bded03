package inputflow

import (
	"fmt"
	"iter"
	"strings"
)

// Then plays First and then Next.
type Then[S any] struct {
	First Event[S]
	Next  Event[S]
}

// Play implements Event.
func (t Then[S]) Play(sim S) {
	t.First.Play(sim)
	t.Next.Play(sim)
}

// Clone implements Cloner.
func (t Then[S]) Clone() Event[S] {
	return Then[S]{First: cloneEvent(t.First), Next: cloneEvent(t.Next)}
}

// String implements fmt.Stringer.
func (t Then[S]) String() string {
	return fmt.Sprintf("%v; %v", t.First, t.Next)
}

// Seq plays its events in ascending index order. An empty Seq is a no-op.
type Seq[S any] []Event[S]

// Sequence builds a Seq from events.
func Sequence[S any](events ...Event[S]) Seq[S] {
	return Seq[S](events)
}

// Play implements Event.
func (s Seq[S]) Play(sim S) {
	for _, e := range s {
		e.Play(sim)
	}
}

// Clone implements Cloner.
func (s Seq[S]) Clone() Event[S] {
	out := make(Seq[S], len(s))
	for i, e := range s {
		out[i] = cloneEvent(e)
	}
	return out
}

// String joins the children in play order.
func (s Seq[S]) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, "; ")
}

// Repeat plays a fresh clone of Event Times times. Zero plays nothing.
type Repeat[S any] struct {
	Event Event[S]
	Times int
}

// Play implements Event.
func (r Repeat[S]) Play(sim S) {
	for i := 0; i < r.Times; i++ {
		cloneEvent(r.Event).Play(sim)
	}
}

// Clone implements Cloner.
func (r Repeat[S]) Clone() Event[S] {
	return Repeat[S]{Event: cloneEvent(r.Event), Times: r.Times}
}

// String implements fmt.Stringer.
func (r Repeat[S]) String() string {
	return fmt.Sprintf("%d times do (%v)", r.Times, r.Event)
}

// OnlyIf plays Event when Cond is true. Cond is fixed when the
// description is built.
type OnlyIf[S any] struct {
	Event Event[S]
	Cond  bool
}

// Play implements Event.
func (o OnlyIf[S]) Play(sim S) {
	if o.Cond {
		o.Event.Play(sim)
	}
}

// Clone implements Cloner.
func (o OnlyIf[S]) Clone() Event[S] {
	return OnlyIf[S]{Event: cloneEvent(o.Event), Cond: o.Cond}
}

// String implements fmt.Stringer.
func (o OnlyIf[S]) String() string {
	return fmt.Sprintf("only if %t do (%v)", o.Cond, o.Event)
}

// OnlyWhen plays Event when Pred reports true at the moment of playback.
type OnlyWhen[S any] struct {
	Event Event[S]
	Pred  func() bool
}

// Play implements Event.
func (o OnlyWhen[S]) Play(sim S) {
	if o.Pred != nil && o.Pred() {
		o.Event.Play(sim)
	}
}

// Clone implements Cloner.
func (o OnlyWhen[S]) Clone() Event[S] {
	return OnlyWhen[S]{Event: cloneEvent(o.Event), Pred: o.Pred}
}

// String implements fmt.Stringer.
func (o OnlyWhen[S]) String() string {
	return fmt.Sprintf("only when (predicate) do (%v)", o.Event)
}

// During plays Bracket, then Event, then the inverse of Bracket.
// Nested Durings release their brackets in reverse order of acquisition.
type During[S any] struct {
	Bracket Invertible[S]
	Event   Event[S]
}

// Play implements Event.
func (d During[S]) Play(sim S) {
	release := d.Bracket.Invert()
	d.Bracket.Play(sim)
	d.Event.Play(sim)
	release.Play(sim)
}

// Clone implements Cloner. The bracket is cloned too when its clone is
// still Invertible.
func (d During[S]) Clone() Event[S] {
	bracket := d.Bracket
	if b, ok := cloneEvent[S](d.Bracket).(Invertible[S]); ok {
		bracket = b
	}
	return During[S]{Bracket: bracket, Event: cloneEvent(d.Event)}
}

// String implements fmt.Stringer.
func (d During[S]) String() string {
	return fmt.Sprintf("during (%v), do (%v)", d.Bracket, d.Event)
}

// IterSeq plays every item produced by Items, in iteration order.
// Items is pulled lazily during playback; a single-use iterator yields
// nothing on later plays.
type IterSeq[S any, E Event[S]] struct {
	Items iter.Seq[E]
}

// Iter builds an IterSeq. S must be given explicitly:
//
//	inputflow.Iter[*recorder.Recorder](slices.Values(keys))
func Iter[S any, E Event[S]](items iter.Seq[E]) IterSeq[S, E] {
	return IterSeq[S, E]{Items: items}
}

// Play implements Event.
func (s IterSeq[S, E]) Play(sim S) {
	if s.Items == nil {
		return
	}
	for e := range s.Items {
		e.Play(sim)
	}
}

// String implements fmt.Stringer.
func (s IterSeq[S, E]) String() string {
	return "iter sequence"
}

// Call invokes the function once per play with the simulator.
type Call[S any] func(sim S)

// Play implements Event.
func (c Call[S]) Play(sim S) {
	if c != nil {
		c(sim)
	}
}

// String implements fmt.Stringer.
func (c Call[S]) String() string {
	return "call"
}
