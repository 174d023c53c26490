package core

import (
	"fmt"
	"strings"
)

// Orientation selects the main axis of a container
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns the config name of the orientation
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "unknown"
}

// Cross returns the perpendicular orientation
func (o Orientation) Cross() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseOrientation maps a config value to an Orientation
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v", "":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown orientation %q", s)
}
