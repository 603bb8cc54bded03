package inputflow

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Test inputs and simulators used across tests.

// key is a minimal key catalogue.
type key int

const (
	keyA key = iota
	keyB
	keyC
	keyAlt
	keyTab
	keyF1
)

func (k key) String() string {
	switch k {
	case keyA:
		return "A"
	case keyB:
		return "B"
	case keyC:
		return "C"
	case keyAlt:
		return "Alt"
	case keyTab:
		return "Tab"
	case keyF1:
		return "F1"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// axis is a relative input.
type axis string

type keyEvent = SetTo[key, bool]
type moveEvent = ChangeBy[axis, int]

// traceSim records every atomic event it is asked to realize.
type traceSim struct {
	mu    sync.Mutex
	lines []string
}

func (s *traceSim) SimulateKey(e keyEvent) {
	s.add(e.String())
}

func (s *traceSim) SimulateMove(e moveEvent) {
	s.add(e.String())
}

func (s *traceSim) add(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

func (s *traceSim) Trace() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lines)
}

func (s *traceSim) Name() string { return "trace" }

// panicSim panics on every key.
type panicSim struct{}

func (panicSim) SimulateKey(keyEvent) { panic("device unplugged") }

// Helper events.

func down(k key) Toggle[*traceSim, key] {
	return BindToggle(keyEvent{Input: k, To: true}, (*traceSim).SimulateKey)
}

func up(k key) Toggle[*traceSim, key] {
	return BindToggle(keyEvent{Input: k, To: false}, (*traceSim).SimulateKey)
}

func click(k key) Flow[*traceSim] {
	return From[*traceSim](Sequence[*traceSim](down(k), up(k)))
}

func move(by int) Atom[*traceSim, moveEvent] {
	return Bind(moveEvent{Input: "x", By: by}, (*traceSim).SimulateMove)
}

// lines is a shorthand for expected traces.
func lines(l ...string) []string { return l }

// joinLines renders a trace the way sequences display.
func joinLines(l []string) string { return strings.Join(l, "; ") }

func pressed(k key) string  { return fmt.Sprintf("set %v to true", k) }
func released(k key) string { return fmt.Sprintf("set %v to false", k) }

// counter is a stateful event. Every copy adds to a shared total;
// local counts the plays of this copy only.
type counter struct {
	total *int
	local int
}

func newCounter() *counter {
	return &counter{total: new(int)}
}

func (c *counter) Play(*traceSim) {
	c.local++
	*c.total++
}

func (c *counter) Clone() Event[*traceSim] { return &counter{total: c.total} }

func (c *counter) String() string { return "counter" }

// testCtx creates a simple test context.
func testCtx() Context {
	return NewContext(context.Background())
}
