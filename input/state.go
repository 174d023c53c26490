package input

import (
	"fmt"
	"strings"
)

// Type is the input modality currently driving the UI
// Key presses select TypeGamepad, mouse events select TypePointer
type Type uint8

const (
	TypeGamepad Type = iota
	TypePointer
	TypeCount
)

// String returns the config name of the input type
func (t Type) String() string {
	switch t {
	case TypeGamepad:
		return "gamepad"
	case TypePointer:
		return "pointer"
	}
	return "unknown"
}

// ParseType maps a config value to a Type
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gamepad", "keys", "keyboard":
		return TypeGamepad, nil
	case "pointer", "mouse", "touch":
		return TypePointer, nil
	}
	return TypeGamepad, fmt.Errorf("unknown input type %q", s)
}
