package input

import "github.com/lixenwraith/scrollframe/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentToggleMute // m

	// Navigation
	IntentNavigate // Arrows, h/j/k/l
	IntentActivate // Enter, space

	// Pointer
	IntentWheel // Wheel up/down, Delta is -1 or +1
	IntentClick // Primary button press at X,Y

	// Demo controls
	IntentToggleIndicator // i
	IntentToggleBehavior  // b
)

// String returns the action name of the intent type
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentNavigate:
		return "navigate"
	case IntentActivate:
		return "activate"
	case IntentWheel:
		return "wheel"
	case IntentClick:
		return "click"
	case IntentToggleIndicator:
		return "toggle_indicator"
	case IntentToggleBehavior:
		return "toggle_behavior"
	}
	return "none"
}

// Intent is the parsed result of one terminal event
type Intent struct {
	Type      IntentType
	Direction core.Direction // IntentNavigate
	Repeat    bool           // Same direction again within the repeat window
	X, Y      int            // Pointer cell
	Delta     int            // Wheel steps, positive scrolls forward
}
