package frame

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr/testr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scrollframe/anim"
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/render"
	"github.com/lixenwraith/scrollframe/view"
)

const frameStep = 16 * time.Millisecond

// spacer is a non-focusable block of n cells along o
func spacer(o core.Orientation, n float64) *view.Rectangle {
	r := view.NewRectangle(' ', tcell.StyleDefault)
	if o == core.Horizontal {
		r.SetWidth(n)
	} else {
		r.SetHeight(n)
	}
	return r
}

// rows builds a vertical content box of n focusable rows of height h
func rows(n int, h float64) (*view.Box, []*view.Label) {
	b := view.NewBox(core.Vertical)
	items := make([]*view.Label, n)
	for i := range items {
		items[i] = view.NewButton("row")
		items[i].SetHeight(h)
		b.AddView(items[i])
	}
	return b, items
}

// tallList is content of height 500: 16 rows of 30 then 20 cells of trailing space
func tallList() (*view.Box, []*view.Label) {
	b, items := rows(16, 30)
	b.AddView(spacer(core.Vertical, 20))
	return b, items
}

func renderRegion(s tcell.Screen) render.Region {
	w, h := s.Size()
	return render.NewRegion(s, 0, 0, w, h)
}

// standalone lays f out as the tree root
func standalone(t *testing.T, f *Frame, r *anim.Runner) *view.Tree {
	t.Helper()
	tree := view.NewTree(f, view.WithRunner(r), view.WithLogger(testr.New(t)))
	tree.Layout()
	return tree
}

func TestFrame_GeometryAfterLayout(t *testing.T) {
	content, _ := tallList()
	f := New()
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	standalone(t, f, nil)

	assert.Equal(t, 500.0, f.ContentExtent())
	assert.Equal(t, 100.0, f.ViewportExtent())
	assert.Equal(t, 400.0, f.MaxOffset())
	assert.Equal(t, 40.0, content.Width(), "content stretched across the axis")
	assert.Equal(t, Boundaries{Top: 0, Bottom: 100, Middle: 50}, f.Boundaries())
	assert.True(t, content.Detached())
}

func TestFrame_DegenerateRange(t *testing.T) {
	content, _ := rows(4, 10)
	f := New(WithIndicator(true))
	f.SetSize(20, 100)
	require.NoError(t, f.AddView(content))
	standalone(t, f, nil)

	assert.Equal(t, 0.0, f.MaxOffset())
	f.SetContentOffset(30, false)
	assert.Equal(t, 0.0, f.ContentOffset())
	_, shown := f.IndicatorFrame()
	assert.False(t, shown, "indicator hidden while content fits")
}

func TestFrame_InstantOffsetClamps(t *testing.T) {
	content, items := tallList()
	f := New(WithRunner(anim.NewRunner()))
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	standalone(t, f, nil)

	tests := []struct {
		request float64
		want    float64
	}{
		{250, 250},
		{-5, 0},
		{9999, 400},
		{400, 400},
	}
	for _, tt := range tests {
		f.SetContentOffset(tt.request, false)
		assert.Equal(t, tt.want, f.ContentOffset(), "request %v", tt.request)
		assert.False(t, f.Scrolling())
	}

	_, ty := content.Translation()
	assert.Equal(t, -400.0, ty)
	assert.Equal(t, 450.0-400.0, items[15].Frame().Y)
}

func TestFrame_AnimatedOffset(t *testing.T) {
	r := anim.NewRunner()
	content, _ := tallList()
	f := New(WithRunner(r))
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	standalone(t, f, r)

	f.SetContentOffset(200, true)
	assert.True(t, f.Scrolling())
	assert.Equal(t, 200.0, f.TargetOffset())
	assert.Equal(t, 0.0, f.ContentOffset(), "nothing moves before the first tick")

	r.Tick(50 * time.Millisecond)
	mid := f.ContentOffset()
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 200.0)
	remaining := f.offsetY.Remaining()

	// Same target while running is a no-op
	f.SetContentOffset(200, true)
	assert.Equal(t, remaining, f.offsetY.Remaining(), "animation must not restart")

	// New target retargets from the displayed value
	f.SetContentOffset(100, true)
	assert.Equal(t, 100.0, f.TargetOffset())
	assert.Equal(t, mid, f.ContentOffset())
	assert.Equal(t, DefaultAnimationDuration, f.offsetY.Remaining())

	r.Settle(frameStep, 100)
	assert.Equal(t, 100.0, f.ContentOffset())
	assert.False(t, f.Scrolling())

	// Idle at the target is a no-op
	f.SetContentOffset(100, true)
	assert.False(t, f.Scrolling())
	assert.Equal(t, 0, r.Active())
}

func TestFrame_AnimatedOffsetClampedTarget(t *testing.T) {
	r := anim.NewRunner()
	content, _ := tallList()
	f := New(WithRunner(r))
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	standalone(t, f, r)

	f.SetContentOffset(1000, true)
	assert.Equal(t, 400.0, f.TargetOffset())
	r.Settle(frameStep, 100)
	assert.Equal(t, 400.0, f.ContentOffset())
}

func TestFrame_ContentShrinkReclamps(t *testing.T) {
	content, items := tallList()
	f := New()
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	tree := standalone(t, f, nil)

	f.SetContentOffset(400, false)
	for _, it := range items[8:] {
		it.SetVisible(false)
	}
	tree.Layout()

	// 8 rows of 30 plus the 20 cell spacer
	assert.Equal(t, 260.0, f.ContentExtent())
	assert.Equal(t, 160.0, f.ContentOffset())
}

func TestFrame_AxisWrappers(t *testing.T) {
	content, _ := tallList()
	f := New()
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	standalone(t, f, nil)

	f.SetContentOffsetX(50, false)
	assert.Equal(t, 0.0, f.ContentOffsetX(), "inactive axis stays at zero")
	assert.Equal(t, 0.0, f.ContentOffsetY())

	f.SetContentOffsetY(50, false)
	assert.Equal(t, 50.0, f.ContentOffsetY())

	f.ScrollBy(25, false)
	assert.Equal(t, 75.0, f.ContentOffset())

	if diff := cmp.Diff(core.Rect{X: 0, Y: 75, W: 40, H: 100}, f.VisibleFrame()); diff != "" {
		t.Errorf("visible frame mismatch (-want +got):\n%s", diff)
	}
}

func TestFrame_SecondAddViewRejected(t *testing.T) {
	first, _ := rows(3, 1)
	second, _ := rows(3, 1)
	f := New()

	require.NoError(t, f.AddView(first))
	err := f.AddView(second)
	assert.ErrorIs(t, err, ErrContentViewSet)
	assert.Same(t, first, f.ContentView())
	assert.Nil(t, second.Parent())
	assert.Len(t, f.Children(), 1)
}

func TestFrame_SetContentViewReplaces(t *testing.T) {
	first, _ := tallList()
	second, _ := rows(3, 10)
	f := New()
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(first))
	tree := standalone(t, f, nil)
	f.SetContentOffset(300, false)

	f.SetContentView(second)
	tree.Layout()

	assert.Same(t, second, f.ContentView())
	assert.Nil(t, first.Parent())
	tx, ty := first.Translation()
	assert.Equal(t, 0.0, tx)
	assert.Equal(t, 0.0, ty, "old content no longer translated")
	assert.Equal(t, 0.0, f.ContentOffset())
}

func TestFrame_RemoveView(t *testing.T) {
	content, _ := rows(3, 1)
	other, _ := rows(1, 1)
	f := New()
	require.NoError(t, f.AddView(content))

	f.RemoveView(other, true)
	assert.Same(t, content, f.ContentView(), "removing a stranger is a no-op")

	f.RemoveView(content, false)
	assert.Nil(t, f.ContentView())
	assert.Nil(t, content.Parent())
	require.NoError(t, f.AddView(other), "slot is free again")
}

func TestFrame_PaddingForwardedToContent(t *testing.T) {
	content, _ := tallList()
	f := New()
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	f.SetPadding(core.Insets{Top: 2, Left: 1, Right: 3, Bottom: 4})
	standalone(t, f, nil)

	assert.Equal(t, core.Rect{X: 1, Y: 2, W: 36, H: 500}, content.LocalFrame())
	assert.Equal(t, 506.0, f.ContentExtent())
	assert.Equal(t, 406.0, f.MaxOffset())

	f.SetPaddingTop(0)
	f.SetPaddingLeft(0)
	f.SetPaddingRight(0)
	f.SetPaddingBottom(0)
	standalone(t, f, nil)
	assert.Equal(t, core.Rect{X: 0, Y: 0, W: 40, H: 500}, content.LocalFrame())
	assert.Equal(t, core.Insets{}, f.Padding())
}

func TestFrame_Indicator(t *testing.T) {
	content, _ := tallList()
	f := New(WithIndicator(true))
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	standalone(t, f, nil)

	got, shown := f.IndicatorFrame()
	require.True(t, shown)
	assert.Equal(t, core.Rect{X: 39, Y: 0, W: 1, H: 20}, got)

	f.SetContentOffset(400, false)
	got, _ = f.IndicatorFrame()
	assert.Equal(t, core.Rect{X: 39, Y: 80, W: 1, H: 20}, got)

	f.SetScrollingIndicatorVisible(false)
	_, shown = f.IndicatorFrame()
	assert.False(t, shown)
	assert.False(t, f.ScrollingIndicatorVisible())
}

func TestFrame_IndicatorHorizontal(t *testing.T) {
	content := view.NewBox(core.Horizontal)
	content.AddView(spacer(core.Horizontal, 400))
	f := New(WithOrientation(core.Horizontal), WithIndicator(true))
	f.SetSize(100, 5)
	require.NoError(t, f.AddView(content))
	standalone(t, f, nil)

	f.SetContentOffset(150, false)
	got, shown := f.IndicatorFrame()
	require.True(t, shown)
	assert.Equal(t, core.Rect{X: 38, Y: 4, W: 25, H: 1}, got)
}

func TestFrame_SetOrientationResets(t *testing.T) {
	content, _ := tallList()
	f := New()
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	standalone(t, f, nil)
	f.SetContentOffset(120, false)

	f.SetOrientation(core.Horizontal)
	assert.Equal(t, core.Horizontal, f.Orientation())
	assert.Equal(t, 0.0, f.ContentOffsetX())
	assert.Equal(t, 0.0, f.ContentOffsetY())
}

func TestFrame_DrawClipsContent(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(20, 12)
	t.Cleanup(s.Fini)

	root := view.NewBox(core.Vertical)
	f := New()
	f.SetHeight(4)
	content := view.NewBox(core.Vertical)
	labels := make([]*view.Label, 10)
	for i := range labels {
		labels[i] = view.NewLabel(string(rune('a' + i)))
		content.AddView(labels[i])
	}
	require.NoError(t, f.AddView(content))
	root.AddView(spacer(core.Vertical, 2))
	root.AddView(f)
	root.SetSize(20, 12)

	tree := view.NewTree(root)
	tree.Layout()
	f.SetContentOffset(3, false)
	tree.Layout()
	tree.Root().Draw(renderRegion(s))

	at := func(x, y int) rune {
		r, _, _, _ := s.GetContent(x, y)
		return r
	}
	assert.Equal(t, ' ', at(0, 1), "row above the frame stays clear")
	assert.Equal(t, 'd', at(0, 2), "first visible row is offset 3")
	assert.Equal(t, 'g', at(0, 5))
	assert.Equal(t, ' ', at(0, 6), "row below the frame is clipped")
}

func TestFrame_TickRepositionsWithoutLayout(t *testing.T) {
	r := anim.NewRunner()
	content, items := tallList()
	f := New(WithRunner(r), WithIndicator(true))
	f.SetSize(40, 100)
	require.NoError(t, f.AddView(content))
	tree := standalone(t, f, r)
	require.False(t, tree.Root().Node().NeedsLayout())

	f.SetContentOffset(200, true)
	r.Tick(frameStep)

	assert.Greater(t, f.ContentOffset(), 0.0)
	assert.False(t, tree.Root().Node().NeedsLayout())
	assert.Equal(t, -f.ContentOffset(), items[0].Frame().Y, "content follows the offset")
	got, shown := f.IndicatorFrame()
	require.True(t, shown)
	assert.Greater(t, got.Y, 0.0)
}

func TestFrame_AddNilViewWithContent(t *testing.T) {
	first, _ := rows(3, 1)
	f := New()
	require.NoError(t, f.AddView(first))

	assert.NotPanics(t, func() {
		assert.ErrorIs(t, f.AddView(nil), ErrContentViewSet)
	})
	assert.Same(t, first, f.ContentView())
}

func TestFrame_IsView(t *testing.T) {
	var v view.View = New()
	assert.Same(t, v, v.Node().Self())
}
