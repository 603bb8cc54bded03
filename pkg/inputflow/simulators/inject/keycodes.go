package inject

import "github.com/randalmurphal/inputflow/pkg/inputflow/inputs"

// Windows virtual-key codes. Platform injectors translate from these.
// Reference: https://docs.microsoft.com/en-us/windows/win32/inputdev/virtual-key-codes
var virtualKeys = map[inputs.Key]uint16{
	inputs.Backspace: 0x08,
	inputs.Tab:       0x09,
	inputs.Enter:     0x0D,
	inputs.Shift:     0x10,
	inputs.Control:   0x11,
	inputs.Alt:       0x12,
	inputs.CapsLock:  0x14,
	inputs.Escape:    0x1B,
	inputs.Space:     0x20,
	inputs.PageUp:    0x21,
	inputs.PageDown:  0x22,
	inputs.End:       0x23,
	inputs.Home:      0x24,

	inputs.LeftArrow:  0x25,
	inputs.UpArrow:    0x26,
	inputs.RightArrow: 0x27,
	inputs.DownArrow:  0x28,

	inputs.Delete: 0x2E,
	inputs.Meta:   0x5B, // left Windows / Command

	inputs.LShift:   0xA0,
	inputs.RShift:   0xA1,
	inputs.LControl: 0xA2,
	inputs.RControl: 0xA3,
	inputs.LAlt:     0xA4,
	inputs.RAlt:     0xA5,
}

func init() {
	for i := range 26 {
		virtualKeys[inputs.A+inputs.Key(i)] = 0x41 + uint16(i)
	}
	for i := range 10 {
		virtualKeys[inputs.Num0+inputs.Key(i)] = 0x30 + uint16(i)
	}
	for i := range 12 {
		virtualKeys[inputs.F1+inputs.Key(i)] = 0x70 + uint16(i)
	}
}

// VirtualKey returns the virtual-key code for k.
func VirtualKey(k inputs.Key) (uint16, bool) {
	vk, ok := virtualKeys[k]
	return vk, ok
}

// Modifier bits passed with every key injection. Sided modifiers set the
// same bit as their generic key.
const (
	ModShift   uint16 = 0x0002
	ModControl uint16 = 0x0004
	ModAlt     uint16 = 0x0008
	ModMeta    uint16 = 0x0010
)

func modifierBit(k inputs.Key) uint16 {
	switch k {
	case inputs.Shift, inputs.LShift, inputs.RShift:
		return ModShift
	case inputs.Control, inputs.LControl, inputs.RControl:
		return ModControl
	case inputs.Alt, inputs.LAlt, inputs.RAlt:
		return ModAlt
	case inputs.Meta:
		return ModMeta
	}
	return 0
}

// Button numbers as injectors expect them.
var buttonNumbers = map[inputs.MouseButton]int{
	inputs.Left:   1,
	inputs.Right:  2,
	inputs.Middle: 3,
	inputs.X1:     4,
	inputs.X2:     5,
}

// ButtonNumber returns the injector button number for b.
func ButtonNumber(b inputs.MouseButton) (int, bool) {
	n, ok := buttonNumbers[b]
	return n, ok
}

// charKey maps a character onto a key press when the injector cannot
// type text directly. Upper case letters need Shift.
func charKey(r rune) (vk uint16, shift bool, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return 0x41 + uint16(r-'a'), false, true
	case r >= 'A' && r <= 'Z':
		return 0x41 + uint16(r-'A'), true, true
	case r >= '0' && r <= '9':
		return 0x30 + uint16(r-'0'), false, true
	case r == ' ':
		return 0x20, false, true
	case r == '\n':
		return 0x0D, false, true
	case r == '\t':
		return 0x09, false, true
	}
	return 0, false, false
}
