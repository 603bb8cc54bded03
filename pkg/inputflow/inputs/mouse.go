package inputs

import (
	"fmt"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
)

// MouseButton is a pointer button.
type MouseButton int

// Mouse buttons.
const (
	Left MouseButton = iota
	Middle
	Right
	X1
	X2

	buttonCount
)

var buttonNames = [buttonCount]string{
	Left: "Left", Middle: "Middle", Right: "Right", X1: "X1", X2: "X2",
}

// String implements fmt.Stringer.
func (b MouseButton) String() string {
	if b.Valid() {
		return buttonNames[b]
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// Valid reports whether b is a catalogued button.
func (b MouseButton) Valid() bool {
	return b >= 0 && b < buttonCount
}

// SetTo sets the button's pressed state.
func (b MouseButton) SetTo(pressed bool) ButtonEvent {
	return inputflow.SetTo[MouseButton, bool]{Input: b, To: pressed}
}

// Down presses the button.
func (b MouseButton) Down() ButtonEvent { return b.SetTo(true) }

// Up releases the button.
func (b MouseButton) Up() ButtonEvent { return b.SetTo(false) }

// Buttons returns every catalogued button.
func Buttons() []MouseButton {
	return []MouseButton{Left, Middle, Right, X1, X2}
}

// Point is a pair of screen coordinates or a two-axis delta.
type Point struct {
	X, Y int
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// MousePosition is the pointer location input.
type MousePosition struct{}

// Cursor is the pointer location input.
var Cursor MousePosition

// String implements fmt.Stringer.
func (MousePosition) String() string { return "MousePosition" }

// MoveTo moves the pointer to absolute coordinates.
func (m MousePosition) MoveTo(x, y int) MoveToEvent {
	return inputflow.SetTo[MousePosition, Point]{Input: m, To: Point{X: x, Y: y}}
}

// MoveBy moves the pointer relative to where it is.
func (m MousePosition) MoveBy(dx, dy int) MoveByEvent {
	return inputflow.ChangeBy[MousePosition, Point]{Input: m, By: Point{X: dx, Y: dy}}
}

// MouseScroll is the scroll wheel input.
type MouseScroll struct{}

// Wheel is the scroll wheel input.
var Wheel MouseScroll

// String implements fmt.Stringer.
func (MouseScroll) String() string { return "MouseScroll" }

// ScrollBy scrolls horizontally by dx and vertically by dy notches.
func (w MouseScroll) ScrollBy(dx, dy int) ScrollEvent {
	return inputflow.ChangeBy[MouseScroll, Point]{Input: w, By: Point{X: dx, Y: dy}}
}

// Char is a character typed as text, independent of layout.
type Char rune

// String implements fmt.Stringer.
func (c Char) String() string {
	return fmt.Sprintf("%q", rune(c))
}

// SetTo sets the character's pressed state.
func (c Char) SetTo(pressed bool) CharEvent {
	return inputflow.SetTo[Char, bool]{Input: c, To: pressed}
}

// Down presses the character.
func (c Char) Down() CharEvent { return c.SetTo(true) }

// Up releases the character.
func (c Char) Up() CharEvent { return c.SetTo(false) }
