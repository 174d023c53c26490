package frame

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/scrollframe/input"
)

var (
	// ErrContentViewSet is returned by AddView when the frame already holds a content view
	ErrContentViewSet = errors.New("scrolling frame already has a content view")

	// ErrNoTopFocusable is reported when natural scrolling has no focusable view visible at offset zero
	ErrNoTopFocusable = errors.New("natural scrolling requires a focusable view visible without scrolling")
)

// Behavior selects the focus navigation policy
type Behavior uint8

const (
	// BehaviorNatural pans the viewport by steps and moves focus once panning is exhausted
	BehaviorNatural Behavior = iota
	// BehaviorCentered keeps the focused view on the middle of the viewport
	BehaviorCentered
)

// String returns the config name of the behavior
func (b Behavior) String() string {
	switch b {
	case BehaviorNatural:
		return "natural"
	case BehaviorCentered:
		return "centered"
	}
	return "unknown"
}

// ParseBehavior maps a config value to a Behavior
func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "natural", "":
		return BehaviorNatural, nil
	case "centered", "center":
		return BehaviorCentered, nil
	}
	return BehaviorNatural, fmt.Errorf("unknown scrolling behavior %q", s)
}

// NaturalState is the natural policy state machine
type NaturalState uint8

const (
	StateIdle NaturalState = iota
	StateNaturalScrolling
)

// String returns the state name
func (s NaturalState) String() string {
	if s == StateNaturalScrolling {
		return "natural_scrolling"
	}
	return "idle"
}

// Boundaries are the absolute viewport edges along the scroll axis
// Top and Bottom are the leading and trailing edges, Left and Right for horizontal frames
type Boundaries struct {
	Top    float64
	Bottom float64
	Middle float64
}

// NavConstants tune natural scrolling for one input type
type NavConstants struct {
	Step           float64       // Offset advanced per press
	RepeatStep     float64       // Offset advanced per repeat while already scrolling
	RepeatDuration time.Duration // Animation duration of a repeat step, zero uses the frame duration
}

// DefaultAnimationDuration is the scroll animation length
const DefaultAnimationDuration = 150 * time.Millisecond

// DefaultNavConstants returns the built-in constants per input type
func DefaultNavConstants() map[input.Type]NavConstants {
	return map[input.Type]NavConstants{
		input.TypeGamepad: {Step: 4, RepeatStep: 8, RepeatDuration: 60 * time.Millisecond},
		input.TypePointer: {Step: 3, RepeatStep: 3},
	}
}

// epsilon absorbs float noise in boundary comparisons
const epsilon = 1e-3
