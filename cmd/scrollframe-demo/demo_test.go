package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scrollframe/config"
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/frame"
	"github.com/lixenwraith/scrollframe/input"
	"github.com/lixenwraith/scrollframe/render"
)

type fakeSounds struct {
	played []core.SoundType
	muted  bool
}

func (s *fakeSounds) Play(st core.SoundType) { s.played = append(s.played, st) }

func (s *fakeSounds) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

type harness struct {
	d      *demo
	canvas *render.Canvas
	screen tcell.SimulationScreen
	sounds *fakeSounds
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	sounds := &fakeSounds{}
	d := newDemo(config.Default(), sounds, logr.Discard())
	t.Cleanup(d.close)

	h := &harness{d: d, canvas: render.NewCanvas(screen, d.theme), screen: screen, sounds: sounds}
	d.start(h.canvas.Size())
	return h
}

func (h *harness) settle() {
	h.d.step(h.canvas, time.Second)
	h.d.step(h.canvas, time.Second)
}

func (h *harness) key(k tcell.Key) bool {
	return h.d.handle(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (h *harness) rune(r rune) bool {
	return h.d.handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (h *harness) row(y int) string {
	w, _ := h.screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := h.screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func (h *harness) focusID() string {
	if v := h.d.tree.Focus(); v != nil {
		return v.Node().ID
	}
	return ""
}

func TestDemo_StartFocusesTopOfList(t *testing.T) {
	h := newHarness(t)
	h.settle()

	assert.Equal(t, "item-1-1", h.focusID())
	assert.Equal(t, 0.0, h.d.list.ContentOffset())
	assert.Equal(t, 56.0, h.d.list.Width())
	assert.Equal(t, 19.0, h.d.list.Height())
	assert.Contains(t, h.row(23), "focus item-1-1")
	assert.Contains(t, h.row(0), "scrollframe demo")
}

func TestDemo_NavigateKeepsFocusInViewport(t *testing.T) {
	h := newHarness(t)
	h.settle()

	for i := 0; i < 20; i++ {
		h.key(tcell.KeyDown)
		h.settle()

		focused := h.d.tree.Focus()
		require.NotNil(t, focused)
		assert.True(t, h.d.list.Frame().Contains(focused.Node().Frame()), "step %d: %s outside viewport", i, focused.Node().ID)
		assert.LessOrEqual(t, h.d.list.ContentOffset(), h.d.list.MaxOffset())
	}
	assert.Greater(t, h.d.list.ContentOffset(), 0.0)
}

func TestDemo_RightMovesIntoSidebar(t *testing.T) {
	h := newHarness(t)
	h.settle()

	h.key(tcell.KeyRight)
	assert.Equal(t, "toggle-indicator", h.focusID())
	require.NotEmpty(t, h.sounds.played)
	assert.Equal(t, core.SoundFocusSidebar, h.sounds.played[len(h.sounds.played)-1])

	h.key(tcell.KeyLeft)
	assert.Equal(t, "item-1-1", h.focusID())
	assert.Equal(t, core.SoundFocusChange, h.sounds.played[len(h.sounds.played)-1])
}

func TestDemo_WheelScrollsAfterTick(t *testing.T) {
	h := newHarness(t)
	h.settle()

	h.d.handle(tcell.NewEventMouse(5, 5, tcell.WheelDown, tcell.ModNone))
	assert.Equal(t, input.TypePointer, h.d.list.InputType())
	assert.Equal(t, 3.0, h.d.list.TargetOffset())
	assert.Equal(t, 0.0, h.d.list.ContentOffset(), "offset moves on the next tick")

	h.d.step(h.canvas, 75*time.Millisecond)
	assert.Greater(t, h.d.list.ContentOffset(), 0.0)
	assert.Less(t, h.d.list.ContentOffset(), 3.0)

	h.settle()
	assert.Equal(t, 3.0, h.d.list.ContentOffset())
	assert.Equal(t, "item-1-1", h.focusID(), "wheel never moves focus")
}

func TestDemo_ClickActivatesSidebarButton(t *testing.T) {
	h := newHarness(t)
	h.settle()

	require.Equal(t, frame.BehaviorNatural, h.d.list.ScrollingBehavior())
	h.d.handle(tcell.NewEventMouse(60, 4, tcell.Button1, tcell.ModNone))

	assert.Equal(t, "toggle-behavior", h.focusID())
	assert.Equal(t, frame.BehaviorCentered, h.d.list.ScrollingBehavior())
	assert.Contains(t, h.sounds.played, core.SoundClick)
}

func TestDemo_Toggles(t *testing.T) {
	h := newHarness(t)

	require.True(t, h.d.list.ScrollingIndicatorVisible())
	h.rune('i')
	assert.False(t, h.d.list.ScrollingIndicatorVisible())
	assert.False(t, h.d.shelf.ScrollingIndicatorVisible())

	h.rune('b')
	assert.Equal(t, frame.BehaviorCentered, h.d.list.ScrollingBehavior())
	h.rune('b')
	assert.Equal(t, frame.BehaviorNatural, h.d.list.ScrollingBehavior())

	h.rune('m')
	assert.True(t, h.sounds.muted)
	h.settle()
	assert.Contains(t, h.row(23), "[muted]")
}

func TestDemo_Resize(t *testing.T) {
	h := newHarness(t)

	assert.False(t, h.d.handle(tcell.NewEventResize(100, 30)))
	h.settle()
	assert.Equal(t, 76.0, h.d.list.Width())
	assert.Equal(t, 25.0, h.d.list.Height())
	assert.Equal(t, 100.0, h.d.shelf.Width())
}

func TestDemo_Quit(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.key(tcell.KeyDown))
	assert.True(t, h.rune('q'))
	assert.True(t, h.key(tcell.KeyEscape))
}
