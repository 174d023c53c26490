package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/event"
)

// DefaultRepeatWindow is the longest gap between two presses of the same direction counted as a repeat
// Terminals report auto-repeat as plain presses, typically every 30-60ms
const DefaultRepeatWindow = 150 * time.Millisecond

// Machine is the input state machine
// Parses tcell events into semantic Intents and tracks the input modality
type Machine struct {
	keyTable     *KeyTable
	repeatWindow time.Duration

	// Repeat detection
	lastDir  core.Direction
	lastWhen time.Time
	held     bool

	inputType Type
	types     *event.Event[Type]
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return &Machine{
		keyTable:     DefaultKeyTable(),
		repeatWindow: DefaultRepeatWindow,
		types:        &event.Event[Type]{},
	}
}

// SetKeyTable replaces the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt != nil {
		m.keyTable = kt
	}
}

// SetRepeatWindow sets the repeat detection window, zero disables repeats
func (m *Machine) SetRepeatWindow(d time.Duration) {
	m.repeatWindow = d
}

// InputType returns the current modality
func (m *Machine) InputType() Type { return m.inputType }

// InputTypeChanged returns the modality change notification, fired only on change
func (m *Machine) InputTypeChanged() *event.Event[Type] { return m.types }

// Reset clears repeat tracking
func (m *Machine) Reset() {
	m.held = false
	m.lastWhen = time.Time{}
}

// Process parses a tcell event and returns an Intent
// Returns nil for events that map to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch e := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		m.setType(TypeGamepad)
		return m.processKey(e)
	case *tcell.EventMouse:
		m.setType(TypePointer)
		m.Reset()
		return m.processMouse(e)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[ev.Rune()]
	} else {
		entry, ok = m.keyTable.Keys[ev.Key()]
	}
	if !ok || entry.Intent == IntentNone {
		m.Reset()
		return nil
	}

	if entry.Intent != IntentNavigate {
		m.Reset()
		return &Intent{Type: entry.Intent}
	}

	when := ev.When()
	repeat := m.held && m.lastDir == entry.Direction && m.repeatWindow > 0 &&
		when.Sub(m.lastWhen) <= m.repeatWindow
	m.held = true
	m.lastDir = entry.Direction
	m.lastWhen = when

	return &Intent{Type: IntentNavigate, Direction: entry.Direction, Repeat: repeat}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return &Intent{Type: IntentWheel, X: x, Y: y, Delta: -1}
	case buttons&tcell.WheelDown != 0:
		return &Intent{Type: IntentWheel, X: x, Y: y, Delta: 1}
	case buttons&tcell.Button1 != 0:
		return &Intent{Type: IntentClick, X: x, Y: y}
	}
	return nil
}

func (m *Machine) setType(t Type) {
	if m.inputType == t {
		return
	}
	m.inputType = t
	m.types.Fire(t)
}
