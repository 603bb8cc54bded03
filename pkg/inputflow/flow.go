package inputflow

import (
	"fmt"
	"time"
)

// Flow is an immutable builder over an event description. Every method
// returns a new Flow wrapping the previous one; nothing is played until
// Play is called.
//
// The zero Flow plays nothing.
//
// Example:
//
//	kb := inputs.Keyboard[*recorder.Recorder]{}
//	flow := kb.Click(inputs.Tab).
//	    During(kb.Down(inputs.Alt)).
//	    SleepMs(50).
//	    Repeat(3)
//	flow.Play(rec)
type Flow[S any] struct {
	event Event[S]
}

// From starts a Flow from e. Panics if e is nil.
func From[S any](e Event[S]) Flow[S] {
	if e == nil {
		panic("inputflow: event cannot be nil")
	}
	if f, ok := e.(Flow[S]); ok {
		return f
	}
	return Flow[S]{event: e}
}

// Play implements Event.
func (f Flow[S]) Play(sim S) {
	if f.event != nil {
		f.event.Play(sim)
	}
}

// Event returns the description built so far, or nil for the zero Flow.
func (f Flow[S]) Event() Event[S] {
	return f.event
}

// Clone returns a Flow whose stateful events are independent of f.
func (f Flow[S]) Clone() Event[S] {
	if f.event == nil {
		return f
	}
	return Flow[S]{event: cloneEvent(f.event)}
}

// String implements fmt.Stringer.
func (f Flow[S]) String() string {
	if f.event == nil {
		return ""
	}
	return fmt.Sprint(f.event)
}

// Then plays f and then next. Panics if next is nil.
func (f Flow[S]) Then(next Event[S]) Flow[S] {
	if next == nil {
		panic("inputflow: event cannot be nil")
	}
	if f.event == nil {
		return From(next)
	}
	return Flow[S]{event: Then[S]{First: f.event, Next: next}}
}

// Sleep plays f and then sleeps for d.
func (f Flow[S]) Sleep(d time.Duration) Flow[S] {
	return f.Then(Sleep[S]{Duration: d})
}

// SleepMs plays f and then sleeps for ms milliseconds.
func (f Flow[S]) SleepMs(ms int64) Flow[S] {
	return f.Sleep(time.Duration(ms) * time.Millisecond)
}

// SpinSleep plays f and then spin-sleeps for d.
func (f Flow[S]) SpinSleep(d time.Duration) Flow[S] {
	return f.Then(SpinSleep[S]{Duration: d})
}

// Wait plays f and then blocks on w.
func (f Flow[S]) Wait(w Waiter) Flow[S] {
	if e, ok := w.(Event[S]); ok {
		return f.Then(e)
	}
	return f.Then(Pause[S]{Waiter: w})
}

// Repeat plays f n times. Panics if n is negative.
func (f Flow[S]) Repeat(n int) Flow[S] {
	if n < 0 {
		panic(fmt.Sprintf("inputflow: repeat count cannot be negative: %d", n))
	}
	return Flow[S]{event: Repeat[S]{Event: f.orEmpty(), Times: n}}
}

// OnlyIf plays f only when cond is true.
func (f Flow[S]) OnlyIf(cond bool) Flow[S] {
	return Flow[S]{event: OnlyIf[S]{Event: f.orEmpty(), Cond: cond}}
}

// OnlyWhen plays f only when pred reports true at playback time.
// Panics if pred is nil.
func (f Flow[S]) OnlyWhen(pred func() bool) Flow[S] {
	if pred == nil {
		panic("inputflow: predicate cannot be nil")
	}
	return Flow[S]{event: OnlyWhen[S]{Event: f.orEmpty(), Pred: pred}}
}

// During plays f while bracket is held: bracket, f, inverse of bracket.
// Panics if bracket is nil.
func (f Flow[S]) During(bracket Invertible[S]) Flow[S] {
	if bracket == nil {
		panic("inputflow: bracket cannot be nil")
	}
	return Flow[S]{event: During[S]{Bracket: bracket, Event: f.orEmpty()}}
}

func (f Flow[S]) orEmpty() Event[S] {
	if f.event == nil {
		return Seq[S]{}
	}
	return f.event
}
