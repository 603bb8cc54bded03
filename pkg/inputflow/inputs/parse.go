package inputs

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Sentinel errors for name lookup.
var (
	// ErrUnknownKey indicates a key name is not in the catalogue.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownButton indicates a button name is not in the catalogue.
	ErrUnknownButton = errors.New("unknown mouse button")
)

// keyAliases are accepted in addition to each key's own name.
var keyAliases = map[string]Key{
	"ctrl": Control, "option": Alt, "cmd": Meta, "command": Meta,
	"super": Meta, "win": Meta, "esc": Escape, "return": Enter,
	"lalt": LAlt, "ralt": RAlt, "altgr": RAlt, "lctrl": LControl, "rctrl": RControl,
	"del": Delete, "pgup": PageUp, "pgdn": PageDown, "caps": CapsLock,
	"up": UpArrow, "down": DownArrow, "left": LeftArrow, "right": RightArrow,
	"0": Num0, "1": Num1, "2": Num2, "3": Num3, "4": Num4,
	"5": Num5, "6": Num6, "7": Num7, "8": Num8, "9": Num9,
}

var buttonAliases = map[string]MouseButton{
	"back": X1, "forward": X2,
}

var (
	keysByName    map[string]Key
	buttonsByName map[string]MouseButton
)

func init() {
	fold := cases.Fold()

	keysByName = make(map[string]Key, len(keyNames)+len(keyAliases))
	for k, name := range keyNames {
		keysByName[fold.String(name)] = Key(k)
	}
	for alias, k := range keyAliases {
		keysByName[fold.String(alias)] = k
	}

	buttonsByName = make(map[string]MouseButton, len(buttonNames)+len(buttonAliases))
	for b, name := range buttonNames {
		buttonsByName[fold.String(name)] = MouseButton(b)
	}
	for alias, b := range buttonAliases {
		buttonsByName[fold.String(alias)] = b
	}
}

// normalize folds case and trims whitespace. A Caser is not safe for
// concurrent use, so each call gets its own.
func normalize(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// ParseKey looks up a key by name, ignoring case. Common aliases such as
// "ctrl", "esc", and single digits are accepted.
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[normalize(name)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// ParseButton looks up a mouse button by name, ignoring case.
func ParseButton(name string) (MouseButton, error) {
	if b, ok := buttonsByName[normalize(name)]; ok {
		return b, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownButton, name)
}
