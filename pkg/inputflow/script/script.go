package script

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/inputflow/pkg/inputflow/inputs"
)

// ErrInvalidScript indicates a script failed validation.
var ErrInvalidScript = errors.New("invalid script")

// Script is a named list of input steps.
type Script struct {
	// Name identifies the script in logs and the journal.
	Name string `yaml:"name"`

	// Description is free text.
	Description string `yaml:"description,omitempty"`

	// Repeat plays the whole step list this many times. Zero means once.
	Repeat int `yaml:"repeat,omitempty"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single action. Exactly one action field must be set.
type Step struct {
	// Down presses a key.
	Down string `yaml:"down,omitempty"`
	// Up releases a key.
	Up string `yaml:"up,omitempty"`
	// Click presses and releases a key, holding With while it does.
	Click string   `yaml:"click,omitempty"`
	With  []string `yaml:"with,omitempty"`

	// Press presses a mouse button.
	Press string `yaml:"press,omitempty"`
	// Release releases a mouse button.
	Release string `yaml:"release,omitempty"`
	// Tap presses and releases a mouse button.
	Tap string `yaml:"tap,omitempty"`

	MoveTo *Coords `yaml:"move_to,omitempty"`
	MoveBy *Coords `yaml:"move_by,omitempty"`
	Scroll *Coords `yaml:"scroll,omitempty"`

	// Type clicks every character of the text.
	Type *string `yaml:"type,omitempty"`

	Sleep *Duration `yaml:"sleep,omitempty"`

	Repeat *RepeatBlock `yaml:"repeat,omitempty"`
	Hold   *HoldBlock   `yaml:"hold,omitempty"`
	OnlyIf *CondBlock   `yaml:"only_if,omitempty"`
}

// RepeatBlock plays Do Times times.
type RepeatBlock struct {
	Times int    `yaml:"times"`
	Do    []Step `yaml:"do"`
}

// HoldBlock plays Do while Key or Button is held down.
type HoldBlock struct {
	Key    string `yaml:"key,omitempty"`
	Button string `yaml:"button,omitempty"`
	Do     []Step `yaml:"do"`
}

// CondBlock plays Do only when Cond is true.
type CondBlock struct {
	Cond bool   `yaml:"cond"`
	Do   []Step `yaml:"do"`
}

// Coords is a screen position or a two-axis delta.
type Coords struct {
	X, Y int
}

// UnmarshalYAML accepts [x, y] or {x: .., y: ..}.
func (c *Coords) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []int
		if err := value.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: expected [x, y], got %d values", value.Line, len(xy))
		}
		c.X, c.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X int `yaml:"x"`
			Y int `yaml:"y"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		c.X, c.Y = m.X, m.Y
		return nil
	}
	return fmt.Errorf("line %d: expected [x, y] or {x, y}", value.Line)
}

// MarshalYAML writes the [x, y] form.
func (c Coords) MarshalYAML() (any, error) {
	return []int{c.X, c.Y}, nil
}

// Point converts c to a catalogue point.
func (c Coords) Point() inputs.Point {
	return inputs.Point{X: c.X, Y: c.Y}
}

// Duration is a delay given as a Go duration or a number of milliseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a duration", value.Line)
	}
	parsed, err := ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// ParseDuration parses "250ms", "1.5s", or a bare millisecond count.
// Negative delays are rejected.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	var d time.Duration
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms > math.MaxInt64/int64(time.Millisecond) {
			return 0, fmt.Errorf("duration %q out of range", s)
		}
		d = time.Duration(ms) * time.Millisecond
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", s)
	}
	return d, nil
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(data)
}

// Marshal encodes s as YAML.
func (s *Script) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Validate checks structure and names. Every problem is reported, each
// prefixed with the step path, and the result wraps ErrInvalidScript.
func (s *Script) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if s.Repeat < 0 {
		errs = append(errs, fmt.Errorf("repeat cannot be negative: %d", s.Repeat))
	}
	if len(s.Steps) == 0 {
		errs = append(errs, errors.New("steps list is required and must be non-empty"))
	}
	errs = validateSteps("steps", s.Steps, errs)
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidScript, errors.Join(errs...))
	}
	return nil
}

func validateSteps(path string, steps []Step, errs []error) []error {
	for i, st := range steps {
		errs = validateStep(fmt.Sprintf("%s[%d]", path, i), st, errs)
	}
	return errs
}

func validateStep(path string, st Step, errs []error) []error {
	actions := st.actions()
	switch len(actions) {
	case 0:
		return append(errs, fmt.Errorf("%s: no action", path))
	case 1:
	default:
		return append(errs, fmt.Errorf("%s: more than one action: %s", path, strings.Join(actions, ", ")))
	}
	if len(st.With) > 0 && st.Click == "" {
		errs = append(errs, fmt.Errorf("%s: with is only valid on click", path))
	}

	checkKey := func(name string) {
		if _, err := inputs.ParseKey(name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}
	checkButton := func(name string) {
		if _, err := inputs.ParseButton(name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}

	switch {
	case st.Down != "":
		checkKey(st.Down)
	case st.Up != "":
		checkKey(st.Up)
	case st.Click != "":
		checkKey(st.Click)
		for _, mod := range st.With {
			checkKey(mod)
		}
	case st.Press != "":
		checkButton(st.Press)
	case st.Release != "":
		checkButton(st.Release)
	case st.Tap != "":
		checkButton(st.Tap)
	case st.Repeat != nil:
		if st.Repeat.Times < 0 {
			errs = append(errs, fmt.Errorf("%s.repeat: times cannot be negative: %d", path, st.Repeat.Times))
		}
		errs = validateSteps(path+".repeat.do", st.Repeat.Do, errs)
	case st.Hold != nil:
		h := st.Hold
		switch {
		case h.Key != "" && h.Button != "":
			errs = append(errs, fmt.Errorf("%s.hold: key and button are mutually exclusive", path))
		case h.Key != "":
			checkKey(h.Key)
		case h.Button != "":
			checkButton(h.Button)
		default:
			errs = append(errs, fmt.Errorf("%s.hold: key or button is required", path))
		}
		errs = validateSteps(path+".hold.do", h.Do, errs)
	case st.OnlyIf != nil:
		errs = validateSteps(path+".only_if.do", st.OnlyIf.Do, errs)
	}
	return errs
}

// actions lists the action fields set on st.
func (st Step) actions() []string {
	var set []string
	add := func(ok bool, name string) {
		if ok {
			set = append(set, name)
		}
	}
	add(st.Down != "", "down")
	add(st.Up != "", "up")
	add(st.Click != "", "click")
	add(st.Press != "", "press")
	add(st.Release != "", "release")
	add(st.Tap != "", "tap")
	add(st.MoveTo != nil, "move_to")
	add(st.MoveBy != nil, "move_by")
	add(st.Scroll != nil, "scroll")
	add(st.Type != nil, "type")
	add(st.Sleep != nil, "sleep")
	add(st.Repeat != nil, "repeat")
	add(st.Hold != nil, "hold")
	add(st.OnlyIf != nil, "only_if")
	return set
}
