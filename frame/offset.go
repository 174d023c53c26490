package frame

import (
	"time"

	"github.com/lixenwraith/scrollframe/anim"
	"github.com/lixenwraith/scrollframe/core"
)

// SetContentOffset moves the active axis to v, clamped to the scroll range
// Animated requests retarget from the displayed value, the latest call wins
func (f *Frame) SetContentOffset(v float64, animated bool) {
	f.startScrolling(v, animated, f.duration)
}

// SetContentOffsetY moves a vertical frame, ignored on horizontal frames
func (f *Frame) SetContentOffsetY(v float64, animated bool) {
	if f.orientation != core.Vertical {
		f.log.V(1).Info("vertical offset on horizontal frame ignored", "id", f.ID)
		return
	}
	f.SetContentOffset(v, animated)
}

// SetContentOffsetX moves a horizontal frame, ignored on vertical frames
func (f *Frame) SetContentOffsetX(v float64, animated bool) {
	if f.orientation != core.Horizontal {
		f.log.V(1).Info("horizontal offset on vertical frame ignored", "id", f.ID)
		return
	}
	f.SetContentOffset(v, animated)
}

// ScrollBy moves the offset by delta relative to the pending target
func (f *Frame) ScrollBy(delta float64, animated bool) {
	f.SetContentOffset(f.TargetOffset()+delta, animated)
}

// ContentOffsetY returns the displayed vertical offset
func (f *Frame) ContentOffsetY() float64 { return f.offsetY.Value() }

// ContentOffsetX returns the displayed horizontal offset
func (f *Frame) ContentOffsetX() float64 { return f.offsetX.Value() }

// ContentOffset returns the displayed offset on the active axis
func (f *Frame) ContentOffset() float64 { return f.axisOffset().Value() }

// TargetOffset returns where the active axis is heading, the displayed offset when idle
func (f *Frame) TargetOffset() float64 { return f.axisOffset().Target() }

// Scrolling reports whether an offset animation is in flight
func (f *Frame) Scrolling() bool { return f.axisOffset().Running() }

func (f *Frame) axisOffset() *anim.Animatable {
	if f.orientation == core.Horizontal {
		return f.offsetX
	}
	return f.offsetY
}

func (f *Frame) crossOffset() *anim.Animatable {
	if f.orientation == core.Horizontal {
		return f.offsetY
	}
	return f.offsetX
}

// startScrolling is the single entry for offset changes
func (f *Frame) startScrolling(v float64, animated bool, d time.Duration) {
	f.prebake()
	v = f.Clamp(v)
	a := f.axisOffset()

	if !animated {
		a.Set(v)
		f.scrollTick()
		return
	}

	if a.Running() && a.Target() == v {
		return
	}
	if !a.Running() && a.Value() == v {
		return
	}
	a.AnimateTo(v, d, f.easing)
}

// prebake refreshes boundaries and bounds the offsets from the current layout
func (f *Frame) prebake() {
	f.bounds = f.ViewportBoundaries()
	f.axisOffset().Clamp(0, f.MaxOffset())
	if f.crossOffset().Value() != 0 {
		f.crossOffset().Set(0)
	}
}

// scrollTick runs after every offset change
// It repositions the content and indicator only, the tree keeps its layout
func (f *Frame) scrollTick() {
	f.axisOffset().Clamp(0, f.MaxOffset())
	f.applyOffset()
}

// applyOffset translates the content and places the indicator
func (f *Frame) applyOffset() {
	if f.content != nil {
		f.content.Node().SetTranslation(-f.offsetX.Value(), -f.offsetY.Value())
	}
	f.layoutIndicator()
}
