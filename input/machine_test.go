package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scrollframe/core"
)

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestMachine_Navigate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		dir  core.Direction
	}{
		{"arrow up", key(tcell.KeyUp), core.DirUp},
		{"arrow down", key(tcell.KeyDown), core.DirDown},
		{"arrow left", key(tcell.KeyLeft), core.DirLeft},
		{"arrow right", key(tcell.KeyRight), core.DirRight},
		{"k", runeKey('k'), core.DirUp},
		{"j", runeKey('j'), core.DirDown},
		{"h", runeKey('h'), core.DirLeft},
		{"l", runeKey('l'), core.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			in := m.Process(tt.ev)
			require.NotNil(t, in)
			assert.Equal(t, IntentNavigate, in.Type)
			assert.Equal(t, tt.dir, in.Direction)
			assert.False(t, in.Repeat, "first press is never a repeat")
		})
	}
}

func TestMachine_Repeat(t *testing.T) {
	m := NewMachine()

	first := m.Process(key(tcell.KeyDown))
	second := m.Process(key(tcell.KeyDown))
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.False(t, first.Repeat)
	assert.True(t, second.Repeat)

	// Direction change restarts
	third := m.Process(key(tcell.KeyUp))
	require.NotNil(t, third)
	assert.False(t, third.Repeat)

	// Any other key breaks the chain
	m.Process(runeKey('i'))
	fourth := m.Process(key(tcell.KeyUp))
	require.NotNil(t, fourth)
	assert.False(t, fourth.Repeat)
}

func TestMachine_RepeatDisabled(t *testing.T) {
	m := NewMachine()
	m.SetRepeatWindow(0)

	m.Process(key(tcell.KeyDown))
	in := m.Process(key(tcell.KeyDown))
	require.NotNil(t, in)
	assert.False(t, in.Repeat)
}

func TestMachine_Actions(t *testing.T) {
	m := NewMachine()

	assert.Equal(t, IntentQuit, m.Process(runeKey('q')).Type)
	assert.Equal(t, IntentQuit, m.Process(key(tcell.KeyCtrlC)).Type)
	assert.Equal(t, IntentActivate, m.Process(key(tcell.KeyEnter)).Type)
	assert.Equal(t, IntentToggleIndicator, m.Process(runeKey('i')).Type)
	assert.Equal(t, IntentToggleBehavior, m.Process(runeKey('b')).Type)
	assert.Nil(t, m.Process(runeKey('z')), "unbound rune")
	assert.Equal(t, IntentResize, m.Process(tcell.NewEventResize(80, 24)).Type)
}

func TestMachine_Mouse(t *testing.T) {
	m := NewMachine()

	in := m.Process(tcell.NewEventMouse(3, 4, tcell.WheelDown, tcell.ModNone))
	require.NotNil(t, in)
	assert.Equal(t, IntentWheel, in.Type)
	assert.Equal(t, 1, in.Delta)
	assert.Equal(t, 3, in.X)
	assert.Equal(t, 4, in.Y)

	in = m.Process(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	require.NotNil(t, in)
	assert.Equal(t, -1, in.Delta)

	in = m.Process(tcell.NewEventMouse(5, 6, tcell.Button1, tcell.ModNone))
	require.NotNil(t, in)
	assert.Equal(t, IntentClick, in.Type)

	assert.Nil(t, m.Process(tcell.NewEventMouse(5, 6, tcell.ButtonNone, tcell.ModNone)), "release")
}

func TestMachine_InputTypeChanged(t *testing.T) {
	m := NewMachine()
	var seen []Type
	sub := m.InputTypeChanged().Subscribe(func(tp Type) { seen = append(seen, tp) })
	defer sub.Release()

	assert.Equal(t, TypeGamepad, m.InputType())

	m.Process(key(tcell.KeyDown))
	assert.Empty(t, seen, "already gamepad")

	m.Process(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	m.Process(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	m.Process(key(tcell.KeyDown))

	assert.Equal(t, []Type{TypePointer, TypeGamepad}, seen)
	assert.Equal(t, TypeGamepad, m.InputType())
}

func TestMachine_MouseBreaksRepeat(t *testing.T) {
	m := NewMachine()
	m.Process(key(tcell.KeyDown))
	m.Process(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	in := m.Process(key(tcell.KeyDown))
	require.NotNil(t, in)
	assert.False(t, in.Repeat)
}

func TestParseType(t *testing.T) {
	tp, err := ParseType("Mouse")
	require.NoError(t, err)
	assert.Equal(t, TypePointer, tp)

	tp, err = ParseType("gamepad")
	require.NoError(t, err)
	assert.Equal(t, TypeGamepad, tp)

	_, err = ParseType("joystick")
	assert.Error(t, err)
}
