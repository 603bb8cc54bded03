package inputflow

import (
	"cmp"
	"fmt"
)

// Event is a playable description of input for simulators of type S.
//
// Play consumes nothing: events are values and may be played any number
// of times. Playback is synchronous and returns once every sub-event has
// been delivered to the simulator.
type Event[S any] interface {
	Play(sim S)
}

// Play plays event against sim.
func Play[S any](event Event[S], sim S) {
	event.Play(sim)
}

// SetTo describes setting Input to an absolute value.
// Pressing a key is SetTo{Input: key, To: true}.
type SetTo[I, V any] struct {
	Input I
	To    V
}

// String implements fmt.Stringer.
func (e SetTo[I, V]) String() string {
	return fmt.Sprintf("set %v to %v", e.Input, e.To)
}

// ChangeBy describes changing Input by a relative delta.
// Moving the pointer is ChangeBy{Input: pointer, By: delta}.
type ChangeBy[I, V any] struct {
	Input I
	By    V
}

// String implements fmt.Stringer.
func (e ChangeBy[I, V]) String() string {
	return fmt.Sprintf("change %v by %v", e.Input, e.By)
}

// Invert returns the inverse of a boolean set: same input, negated value.
// Only boolean sets have an inverse.
func Invert[I any](e SetTo[I, bool]) SetTo[I, bool] {
	return SetTo[I, bool]{Input: e.Input, To: !e.To}
}

// CompareSetTo orders sets by input, then by value.
func CompareSetTo[I, V cmp.Ordered](a, b SetTo[I, V]) int {
	if c := cmp.Compare(a.Input, b.Input); c != 0 {
		return c
	}
	return cmp.Compare(a.To, b.To)
}

// CompareChangeBy orders deltas by input, then by amount.
func CompareChangeBy[I, V cmp.Ordered](a, b ChangeBy[I, V]) int {
	if c := cmp.Compare(a.Input, b.Input); c != 0 {
		return c
	}
	return cmp.Compare(a.By, b.By)
}
