package inputflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom_NilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "inputflow: event cannot be nil", func() {
		From[*traceSim](nil)
	})
}

func TestFrom_UnwrapsFlow(t *testing.T) {
	f := click(keyA)
	g := From[*traceSim](f)
	assert.IsType(t, Seq[*traceSim]{}, g.Event(), "a Flow must not wrap another Flow")
	assert.Equal(t, f.String(), g.String())
}

func TestFlow_Zero(t *testing.T) {
	var f Flow[*traceSim]
	sim := &traceSim{}

	f.Play(sim)
	assert.Empty(t, sim.Trace())
	assert.Nil(t, f.Event())
	assert.Equal(t, "", f.String())

	// Builders on the zero Flow start from an empty description.
	f.Then(down(keyA)).Play(sim)
	f.Repeat(3).Play(sim)
	f.During(down(keyAlt)).Play(sim)
	assert.Equal(t, lines(pressed(keyA), pressed(keyAlt), released(keyAlt)), sim.Trace())
}

func TestFlow_Chain(t *testing.T) {
	sim := &traceSim{}
	f := From[*traceSim](down(keyA)).
		Then(move(2)).
		Then(up(keyA)).
		Repeat(2)
	f.Play(sim)

	assert.Equal(t, lines(
		pressed(keyA), "change x by 2", released(keyA),
		pressed(keyA), "change x by 2", released(keyA),
	), sim.Trace())
	assert.Equal(t, "2 times do (set A to true; change x by 2; set A to false)", f.String())
}

func TestFlow_ThenNilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "inputflow: event cannot be nil", func() {
		click(keyA).Then(nil)
	})
}

func TestFlow_RepeatNegativePanics(t *testing.T) {
	assert.PanicsWithValue(t, "inputflow: repeat count cannot be negative: -1", func() {
		click(keyA).Repeat(-1)
	})
}

func TestFlow_OnlyWhenNilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "inputflow: predicate cannot be nil", func() {
		click(keyA).OnlyWhen(nil)
	})
}

func TestFlow_DuringNilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "inputflow: bracket cannot be nil", func() {
		click(keyA).During(nil)
	})
}

func TestFlow_OnlyIf(t *testing.T) {
	sim := &traceSim{}
	click(keyA).OnlyIf(false).Then(click(keyB).OnlyIf(true)).Play(sim)
	assert.Equal(t, lines(pressed(keyB), released(keyB)), sim.Trace())
}

func TestFlow_OnlyWhen(t *testing.T) {
	armed := false
	f := click(keyA).OnlyWhen(func() bool { return armed })

	sim := &traceSim{}
	f.Play(sim)
	armed = true
	f.Play(sim)

	assert.Equal(t, lines(pressed(keyA), released(keyA)), sim.Trace())
}

func TestFlow_Clone(t *testing.T) {
	c := newCounter()
	f := From[*traceSim](c).Then(down(keyA))

	clone := f.Clone()
	clone.Play(&traceSim{})

	assert.Equal(t, 1, *c.total)
	assert.Zero(t, c.local)

	var zero Flow[*traceSim]
	assert.Equal(t, zero, zero.Clone())
}

func TestFlow_Sleeps(t *testing.T) {
	sim := &traceSim{}
	f := click(keyA).
		Sleep(3 * time.Millisecond).
		SleepMs(3).
		SpinSleep(3 * time.Millisecond)

	start := time.Now()
	f.Play(sim)

	assert.GreaterOrEqual(t, time.Since(start), 9*time.Millisecond)
	assert.Equal(t, lines(pressed(keyA), released(keyA)), sim.Trace(), "sleeps are not recorded")
	assert.Equal(t, "set A to true; set A to false; sleep 3ms; sleep 3ms; spin sleep 3ms", f.String())
}

type countingWaiter struct {
	waits int
}

func (w *countingWaiter) Wait() { w.waits++ }

func TestFlow_Wait(t *testing.T) {
	w := &countingWaiter{}
	f := click(keyA).Wait(w).Repeat(3)
	f.Play(&traceSim{})
	assert.Equal(t, 3, w.waits)
	assert.Contains(t, f.String(), "wait")

	// A Waiter that is already an event is used directly.
	g := click(keyA).Wait(Sleep[*traceSim]{Duration: time.Millisecond})
	then, ok := g.Event().(Then[*traceSim])
	require.True(t, ok)
	assert.IsType(t, Sleep[*traceSim]{}, then.Next)
}
