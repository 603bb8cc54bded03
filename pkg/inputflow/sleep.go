package inputflow

import (
	"fmt"
	"runtime"
	"time"
)

// DefaultSpinThreshold is how much of a SpinSleep is spent busy-waiting
// when the event does not set its own threshold.
const DefaultSpinThreshold = 2 * time.Millisecond

// Waiter blocks the calling goroutine. Sleep and SpinSleep are Waiters;
// Flow.Wait accepts any other strategy.
type Waiter interface {
	Wait()
}

// Sleep pauses playback for at least Duration. It never reaches the
// simulator and is not cancellable once started.
type Sleep[S any] struct {
	Duration time.Duration
}

// Play implements Event.
func (s Sleep[S]) Play(S) {
	s.Wait()
}

// Wait implements Waiter.
func (s Sleep[S]) Wait() {
	time.Sleep(s.Duration)
}

// String implements fmt.Stringer.
func (s Sleep[S]) String() string {
	return fmt.Sprintf("sleep %v", s.Duration)
}

// SpinSleep pauses playback for Duration with tighter wake-up accuracy
// than Sleep. It sleeps coarsely until Threshold remains, then yields in a
// loop until the deadline passes.
type SpinSleep[S any] struct {
	Duration  time.Duration
	Threshold time.Duration
}

// Play implements Event.
func (s SpinSleep[S]) Play(S) {
	s.Wait()
}

// Wait implements Waiter.
func (s SpinSleep[S]) Wait() {
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultSpinThreshold
	}
	spinUntil(time.Now().Add(s.Duration), threshold)
}

// String implements fmt.Stringer.
func (s SpinSleep[S]) String() string {
	return fmt.Sprintf("spin sleep %v", s.Duration)
}

func spinUntil(deadline time.Time, threshold time.Duration) {
	if coarse := time.Until(deadline) - threshold; coarse > 0 {
		time.Sleep(coarse)
	}
	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
}

// Pause plays an arbitrary Waiter as an event.
type Pause[S any] struct {
	Waiter Waiter
}

// Play implements Event.
func (p Pause[S]) Play(S) {
	if p.Waiter != nil {
		p.Waiter.Wait()
	}
}

// String implements fmt.Stringer.
func (p Pause[S]) String() string {
	if s, ok := p.Waiter.(fmt.Stringer); ok {
		return s.String()
	}
	return "wait"
}
