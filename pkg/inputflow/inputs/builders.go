package inputs

import "github.com/randalmurphal/inputflow/pkg/inputflow"

// Keyboard binds key events to simulators of type Sim.
//
//	kb := inputs.Keyboard[*recorder.Recorder]{}
//	kb.Click(inputs.Tab).During(kb.Down(inputs.Alt)).Play(rec)
type Keyboard[Sim KeySimulator] struct{}

// SetTo sets k to pressed.
func (Keyboard[Sim]) SetTo(k Key, pressed bool) inputflow.Toggle[Sim, Key] {
	return inputflow.BindToggle(k.SetTo(pressed), simulateKey[Sim])
}

// Down presses k.
func (kb Keyboard[Sim]) Down(k Key) inputflow.Toggle[Sim, Key] { return kb.SetTo(k, true) }

// Up releases k.
func (kb Keyboard[Sim]) Up(k Key) inputflow.Toggle[Sim, Key] { return kb.SetTo(k, false) }

// Click presses and releases k.
func (kb Keyboard[Sim]) Click(k Key) inputflow.Flow[Sim] {
	return inputflow.From[Sim](inputflow.Sequence[Sim](kb.Down(k), kb.Up(k)))
}

// Press clicks k while holding mods. The first modifier is pressed first
// and released last.
func (kb Keyboard[Sim]) Press(k Key, mods ...Key) inputflow.Flow[Sim] {
	f := kb.Click(k)
	for i := len(mods) - 1; i >= 0; i-- {
		f = f.During(kb.Down(mods[i]))
	}
	return f
}

func simulateKey[Sim KeySimulator](s Sim, e KeyEvent) { s.SimulateKey(e) }

// Mouse binds pointer, button, and scroll events to simulators of type Sim.
type Mouse[Sim MouseSimulator] struct{}

// SetTo sets b to pressed.
func (Mouse[Sim]) SetTo(b MouseButton, pressed bool) inputflow.Toggle[Sim, MouseButton] {
	return inputflow.BindToggle(b.SetTo(pressed), simulateButton[Sim])
}

// Down presses b.
func (m Mouse[Sim]) Down(b MouseButton) inputflow.Toggle[Sim, MouseButton] { return m.SetTo(b, true) }

// Up releases b.
func (m Mouse[Sim]) Up(b MouseButton) inputflow.Toggle[Sim, MouseButton] { return m.SetTo(b, false) }

// Click presses and releases b.
func (m Mouse[Sim]) Click(b MouseButton) inputflow.Flow[Sim] {
	return inputflow.From[Sim](inputflow.Sequence[Sim](m.Down(b), m.Up(b)))
}

// MoveTo moves the pointer to (x, y).
func (Mouse[Sim]) MoveTo(x, y int) inputflow.Atom[Sim, MoveToEvent] {
	return inputflow.Bind(Cursor.MoveTo(x, y), simulateMoveTo[Sim])
}

// MoveBy moves the pointer by (dx, dy).
func (Mouse[Sim]) MoveBy(dx, dy int) inputflow.Atom[Sim, MoveByEvent] {
	return inputflow.Bind(Cursor.MoveBy(dx, dy), simulateMoveBy[Sim])
}

// Scroll scrolls the wheel by (dx, dy).
func (Mouse[Sim]) Scroll(dx, dy int) inputflow.Atom[Sim, ScrollEvent] {
	return inputflow.Bind(Wheel.ScrollBy(dx, dy), simulateScroll[Sim])
}

// Drag presses b, moves to (x, y), and releases b.
func (m Mouse[Sim]) Drag(b MouseButton, x, y int) inputflow.Flow[Sim] {
	return m.MoveTo(x, y).During(m.Down(b))
}

func simulateButton[Sim ButtonSimulator](s Sim, e ButtonEvent) { s.SimulateButton(e) }
func simulateMoveTo[Sim PointerSimulator](s Sim, e MoveToEvent) { s.SimulateMoveTo(e) }
func simulateMoveBy[Sim PointerSimulator](s Sim, e MoveByEvent) { s.SimulateMoveBy(e) }
func simulateScroll[Sim ScrollSimulator](s Sim, e ScrollEvent) { s.SimulateScroll(e) }

// Typist binds character events to simulators of type Sim.
type Typist[Sim CharSimulator] struct{}

// Down presses c.
func (Typist[Sim]) Down(c rune) inputflow.Toggle[Sim, Char] {
	return inputflow.BindToggle(Char(c).Down(), simulateChar[Sim])
}

// Up releases c.
func (Typist[Sim]) Up(c rune) inputflow.Toggle[Sim, Char] {
	return inputflow.BindToggle(Char(c).Up(), simulateChar[Sim])
}

// Click presses and releases c.
func (t Typist[Sim]) Click(c rune) inputflow.Flow[Sim] {
	return inputflow.From[Sim](inputflow.Sequence[Sim](t.Down(c), t.Up(c)))
}

// Type clicks every rune of text in order. Empty text plays nothing.
func (t Typist[Sim]) Type(text string) inputflow.Flow[Sim] {
	seq := inputflow.Seq[Sim]{}
	for _, r := range text {
		seq = append(seq, t.Click(r))
	}
	return inputflow.From[Sim](seq)
}

func simulateChar[Sim CharSimulator](s Sim, e CharEvent) { s.SimulateChar(e) }
