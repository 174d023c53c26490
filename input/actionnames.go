package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollframe/core"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// System
	"quit":        {IntentQuit, 0},
	"toggle_mute": {IntentToggleMute, 0},

	// Navigation
	"navigate_up":    {IntentNavigate, core.DirUp},
	"navigate_down":  {IntentNavigate, core.DirDown},
	"navigate_left":  {IntentNavigate, core.DirLeft},
	"navigate_right": {IntentNavigate, core.DirRight},
	"activate":       {IntentActivate, 0},

	// Demo
	"toggle_indicator": {IntentToggleIndicator, 0},
	"toggle_behavior":  {IntentToggleBehavior, 0},
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// ActionNames returns every registered action name
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	return names
}

// keyByName resolves special key names used in the [keys] section
var keyByName = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backtab":   tcell.KeyBacktab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+s":    tcell.KeyCtrlS,
	"ctrl+n":    tcell.KeyCtrlN,
	"ctrl+p":    tcell.KeyCtrlP,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
}
