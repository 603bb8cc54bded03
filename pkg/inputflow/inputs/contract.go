package inputs

import "github.com/randalmurphal/inputflow/pkg/inputflow"

// Atomic events over the catalogue.
type (
	KeyEvent    = inputflow.SetTo[Key, bool]
	ButtonEvent = inputflow.SetTo[MouseButton, bool]
	CharEvent   = inputflow.SetTo[Char, bool]
	MoveToEvent = inputflow.SetTo[MousePosition, Point]
	MoveByEvent = inputflow.ChangeBy[MousePosition, Point]
	ScrollEvent = inputflow.ChangeBy[MouseScroll, Point]
)

// KeySimulator realizes key presses and releases.
type KeySimulator interface {
	SimulateKey(e KeyEvent)
}

// ButtonSimulator realizes mouse button presses and releases.
type ButtonSimulator interface {
	SimulateButton(e ButtonEvent)
}

// CharSimulator realizes typed characters.
type CharSimulator interface {
	SimulateChar(e CharEvent)
}

// PointerSimulator realizes pointer movement.
type PointerSimulator interface {
	SimulateMoveTo(e MoveToEvent)
	SimulateMoveBy(e MoveByEvent)
}

// ScrollSimulator realizes scroll wheel movement.
type ScrollSimulator interface {
	SimulateScroll(e ScrollEvent)
}

// MouseSimulator realizes every mouse event.
type MouseSimulator interface {
	ButtonSimulator
	PointerSimulator
	ScrollSimulator
}

// Simulator realizes every event in the catalogue.
type Simulator interface {
	KeySimulator
	CharSimulator
	MouseSimulator
}
