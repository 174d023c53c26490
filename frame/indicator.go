package frame

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/render"
	"github.com/lixenwraith/scrollframe/view"
)

// ScrollingIndicatorVisible reports whether the indicator is enabled
func (f *Frame) ScrollingIndicatorVisible() bool { return f.showIndicator }

// SetScrollingIndicatorVisible enables the indicator
// It is still hidden while the content fits the viewport
func (f *Frame) SetScrollingIndicatorVisible(show bool) {
	f.showIndicator = show
	f.layoutIndicator()
}

// SetIndicatorStyle sets the indicator fill style
func (f *Frame) SetIndicatorStyle(style tcell.Style) {
	f.ensureIndicator().SetStyle(style)
}

// IndicatorFrame returns the indicator rectangle relative to the frame, ok is false when hidden
func (f *Frame) IndicatorFrame() (core.Rect, bool) {
	if f.indicator == nil || !f.indicator.Visible() {
		return core.Rect{}, false
	}
	return f.indicator.LocalFrame(), true
}

func (f *Frame) ensureIndicator() *view.Rectangle {
	if f.indicator == nil {
		f.indicator = view.NewRectangle(' ', render.DefaultTheme.IndicatorStyle())
		f.indicator.ID = "indicator"
		view.Attach(f, f.indicator)
		f.indicator.SetDetached(true)
	}
	return f.indicator
}

// layoutIndicator places the indicator along the trailing edge across the axis
func (f *Frame) layoutIndicator() {
	if !f.showIndicator {
		if f.indicator != nil && f.indicator.Visible() {
			f.indicator.SetVisible(false)
		}
		return
	}

	pos, length, ok := indicatorGeometry(f.ContentOffset(), f.ContentExtent(), f.ViewportExtent())
	ind := f.ensureIndicator()
	if ind.Visible() != ok {
		ind.SetVisible(ok)
	}
	if !ok {
		return
	}

	// Placement only, the indicator is detached and never needs a layout pass
	if f.orientation == core.Horizontal {
		ind.SetLayoutExtent(core.Horizontal, length)
		ind.SetLayoutExtent(core.Vertical, 1)
		ind.SetPosition(pos, f.Height()-1)
	} else {
		ind.SetLayoutExtent(core.Horizontal, 1)
		ind.SetLayoutExtent(core.Vertical, length)
		ind.SetPosition(f.Width()-1, pos)
	}
}
