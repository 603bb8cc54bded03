// Package inputs is a catalogue of common keyboard and mouse inputs, the
// atomic events over them, and the simulator contracts that realize those
// events.
//
// The engine never looks inside these types; they are ordinary values for
// SetTo and ChangeBy. Backends implement the contracts they can serve,
// and the typed builders (Keyboard, Mouse, Typist) bind events to them.
package inputs

import (
	"fmt"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
)

// Key is a keyboard key.
type Key int

// Keys.
const (
	Alt Key = iota
	Shift
	Control
	Meta

	LAlt
	RAlt
	LShift
	RShift
	LControl
	RControl

	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	CapsLock

	End
	Home
	PageUp
	PageDown

	Escape
	Enter
	Space
	Tab

	Backspace
	Delete

	UpArrow
	DownArrow
	LeftArrow
	RightArrow

	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	Num0
	Num1
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9

	keyCount
)

var keyNames = [keyCount]string{
	Alt: "Alt", Shift: "Shift", Control: "Control", Meta: "Meta",
	LAlt: "LAlt", RAlt: "RAlt", LShift: "LShift", RShift: "RShift",
	LControl: "LControl", RControl: "RControl",
	F1: "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	CapsLock: "CapsLock",
	End: "End", Home: "Home", PageUp: "PageUp", PageDown: "PageDown",
	Escape: "Escape", Enter: "Enter", Space: "Space", Tab: "Tab",
	Backspace: "Backspace", Delete: "Delete",
	UpArrow: "UpArrow", DownArrow: "DownArrow", LeftArrow: "LeftArrow", RightArrow: "RightArrow",
	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G", H: "H", I: "I",
	J: "J", K: "K", L: "L", M: "M", N: "N", O: "O", P: "P", Q: "Q", R: "R",
	S: "S", T: "T", U: "U", V: "V", W: "W", X: "X", Y: "Y", Z: "Z",
	Num0: "Num0", Num1: "Num1", Num2: "Num2", Num3: "Num3", Num4: "Num4",
	Num5: "Num5", Num6: "Num6", Num7: "Num7", Num8: "Num8", Num9: "Num9",
}

// String implements fmt.Stringer.
func (k Key) String() string {
	if k.Valid() {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Valid reports whether k is a catalogued key.
func (k Key) Valid() bool {
	return k >= 0 && k < keyCount
}

// SetTo sets the key's pressed state.
func (k Key) SetTo(pressed bool) KeyEvent {
	return inputflow.SetTo[Key, bool]{Input: k, To: pressed}
}

// Down presses the key.
func (k Key) Down() KeyEvent { return k.SetTo(true) }

// Up releases the key.
func (k Key) Up() KeyEvent { return k.SetTo(false) }

// Keys returns every catalogued key in declaration order.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}
