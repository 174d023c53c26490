package frame

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scrollframe/anim"
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/event"
	"github.com/lixenwraith/scrollframe/input"
	"github.com/lixenwraith/scrollframe/view"
)

func TestBridge_FocusFlag(t *testing.T) {
	root := view.NewBox(core.Vertical)
	content, items := rows(5, 2)
	f := New()
	f.SetHeight(6)
	require.NoError(t, f.AddView(content))
	outside := view.NewButton("outside")
	root.AddView(f)
	root.AddView(outside)
	root.SetSize(20, 10)
	tree := view.NewTree(root)
	tree.Layout()

	assert.False(t, f.ChildFocused())
	tree.GiveFocus(items[1])
	assert.True(t, f.ChildFocused())

	// Moving inside keeps the flag
	tree.GiveFocus(items[2])
	assert.True(t, f.ChildFocused())

	f.SetContentOffset(4, false)
	tree.GiveFocus(outside)
	assert.False(t, f.ChildFocused())
	assert.Equal(t, 4.0, f.ContentOffset(), "losing focus never scrolls")
}

func TestBridge_PointerSkipsScroll(t *testing.T) {
	types := &event.Event[input.Type]{}
	content, items := tallList()
	f := New(WithInputTypes(types, input.TypeGamepad))
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	tree := standalone(t, f, nil)
	require.Equal(t, 1, types.Len())

	types.Fire(input.TypePointer)
	assert.Equal(t, input.TypePointer, f.InputType())
	assert.Equal(t, f.NavConstants(input.TypePointer), f.navConstants())

	tree.GiveFocus(items[15])
	assert.Equal(t, 0.0, f.ContentOffset(), "pointer focus does not scroll")
	assert.True(t, f.ChildFocused())

	types.Fire(input.TypeGamepad)
	tree.GiveFocus(items[14])
	assert.Equal(t, 350.0, f.ContentOffset())
}

func TestBridge_InputTypeResetsNaturalState(t *testing.T) {
	types := &event.Event[input.Type]{}
	f, tree, _ := naturalFixture(t, WithInputTypes(types, input.TypeGamepad))
	require.Equal(t, view.OutcomeConsumed, tree.Navigate(core.DirDown, false))
	require.Equal(t, StateNaturalScrolling, f.NaturalState())

	types.Fire(input.TypePointer)
	assert.Equal(t, StateIdle, f.NaturalState())
}

func TestBridge_CloseReleasesSubscription(t *testing.T) {
	types := &event.Event[input.Type]{}
	f := New(WithInputTypes(types, input.TypeGamepad))
	require.Equal(t, 1, types.Len())

	f.Close()
	assert.Equal(t, 0, types.Len())
	assert.NotPanics(t, f.Close, "second close is a no-op")

	types.Fire(input.TypePointer)
	assert.Equal(t, input.TypeGamepad, f.InputType(), "released frame no longer listens")
}

func TestBridge_FreeOnRemove(t *testing.T) {
	types := &event.Event[input.Type]{}
	parent := view.NewBox(core.Vertical)
	f := New(WithInputTypes(types, input.TypeGamepad))
	parent.AddView(f)

	parent.RemoveView(f, true)
	assert.Equal(t, 0, types.Len())
	assert.Nil(t, f.Parent())
}

func TestBridge_WillAppearRevealsOnNextDraw(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(40, 100)
	t.Cleanup(s.Fini)

	r := anim.NewRunner()
	content, items := tallList()
	f := New(WithRunner(r))
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	tree := standalone(t, f, r)
	tree.GiveFocus(items[15])
	r.Settle(frameStep, 100)
	require.Equal(t, 380.0, f.ContentOffset())

	f.WillAppear(true)
	assert.Equal(t, 0.0, f.ContentOffset(), "reset jumps to the start")

	tree.Frame(frameStep, renderRegion(s))
	assert.Equal(t, 380.0, f.ContentOffset(), "focused view revealed instantly on draw")
	assert.False(t, f.Scrolling())
	assert.False(t, f.updateOnNextFrame)

	// Without reset nothing moves
	f.WillAppear(false)
	assert.Equal(t, 380.0, f.ContentOffset())
}

func TestBridge_WillAppearWithoutFocus(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(40, 100)
	t.Cleanup(s.Fini)

	content, _ := tallList()
	f := New()
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	tree := standalone(t, f, nil)
	f.SetContentOffset(200, false)

	f.WillAppear(true)
	tree.Frame(frameStep, renderRegion(s))
	assert.Equal(t, 0.0, f.ContentOffset())
	assert.False(t, f.updateOnNextFrame, "nothing to reveal, request dropped")
}

func TestBridge_TreeAppearFocusesTopMost(t *testing.T) {
	content, items := tallList()
	f := New()
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	tree := view.NewTree(f)

	tree.Appear()
	assert.Same(t, items[0], tree.Focus())
	assert.True(t, f.ChildFocused())
	assert.True(t, f.updateOnNextFrame)
}

func TestValidate_NaturalNeedsTopFocusable(t *testing.T) {
	var logged []string
	logger := funcr.New(func(prefix, args string) {
		logged = append(logged, args)
	}, funcr.Options{})

	content := view.NewBox(core.Vertical)
	content.AddView(spacer(core.Vertical, 200))
	content.AddView(view.NewButton("deep"))

	f := New(WithLogger(logger))
	f.SetSize(20, 50)
	require.NoError(t, f.AddView(content))
	tree := standalone(t, f, nil)

	assert.ErrorIs(t, f.Validate(), ErrNoTopFocusable)
	require.Len(t, logged, 1, "reported once after layout")
	assert.Contains(t, logged[0], ErrNoTopFocusable.Error())

	tree.Layout()
	assert.Len(t, logged, 1, "not repeated on later layouts")

	// Centered has no such precondition
	f.SetScrollingBehavior(BehaviorCentered)
	tree.Layout()
	assert.NoError(t, f.Validate())
	assert.Len(t, logged, 1)
}

func TestValidate_Satisfied(t *testing.T) {
	content, _ := tallList()
	f := New()
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	standalone(t, f, nil)
	assert.NoError(t, f.Validate())
	assert.NoError(t, New().Validate(), "empty frame")
}

func TestBridge_FocusSound(t *testing.T) {
	var played []core.SoundType
	root := view.NewBox(core.Vertical)
	content, items := rows(3, 1)
	f := New()
	f.SetHeight(3)
	require.NoError(t, f.AddView(content))
	root.AddView(f)
	root.SetSize(10, 5)
	tree := view.NewTree(root, view.WithSoundPlayer(soundRecorder(func(s core.SoundType) {
		played = append(played, s)
	})))
	tree.Layout()
	tree.GiveFocus(items[0])

	tree.Navigate(core.DirDown, false)
	tree.Navigate(core.DirUp, false)
	tree.Navigate(core.DirUp, false)
	assert.Equal(t, []core.SoundType{core.SoundFocusChange, core.SoundFocusChange, core.SoundFocusError}, played)
	assert.Equal(t, core.SoundFocusChange, f.FocusSound())
}

type soundRecorder func(core.SoundType)

func (r soundRecorder) Play(s core.SoundType) { r(s) }
