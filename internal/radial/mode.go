package radial

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects how the reference point is obtained.
type Mode int

const (
	ModeObject   Mode = iota // Object-local origin
	ModeBounding             // Center of the selection's bounding box
	ModeCustom               // Explicit coordinates
	ModeCursor               // 3D cursor position
)

var modeNames = map[Mode]string{
	ModeObject:   "object",
	ModeBounding: "bounding",
	ModeCustom:   "custom",
	ModeCursor:   "cursor",
}

// String returns the lowercase mode name used in config files and flags.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Unknown(%d)", int(m))
}

// ParseMode converts a mode name to a Mode. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown reference point mode %q (want object, bounding, custom or cursor)", s)
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}

// MarshalYAML writes the mode as its name.
func (m Mode) MarshalYAML() (interface{}, error) {
	if _, ok := modeNames[m]; !ok {
		return nil, fmt.Errorf("cannot marshal %s", m)
	}
	return m.String(), nil
}

// UnmarshalYAML reads a mode name.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: reference point mode must be a string", value.Line)
	}
	v, err := ParseMode(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = v
	return nil
}
