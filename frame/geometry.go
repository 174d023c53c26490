package frame

import (
	"math"

	"github.com/lixenwraith/scrollframe/view"
)

// ViewportBoundaries returns the absolute viewport edges along the scroll axis
func (f *Frame) ViewportBoundaries() Boundaries {
	r := f.Frame()
	top, bottom := r.Min(f.orientation), r.Max(f.orientation)
	return Boundaries{Top: top, Bottom: bottom, Middle: (top + bottom) / 2}
}

// ViewportExtent returns the viewport size along the scroll axis
func (f *Frame) ViewportExtent() float64 {
	return f.Extent(f.orientation)
}

// ContentExtent returns the content size along the scroll axis including the forwarded padding
func (f *Frame) ContentExtent() float64 {
	if f.content == nil {
		return 0
	}
	o := f.orientation
	return f.content.Node().Extent(o) + f.padding.Start(o) + f.padding.End(o)
}

// MaxOffset returns the largest valid offset, zero when the content fits
func (f *Frame) MaxOffset() float64 {
	return math.Max(0, f.ContentExtent()-f.ViewportExtent())
}

// Clamp bounds v to the valid offset range
func (f *Frame) Clamp(v float64) float64 {
	return clampOffset(v, f.ContentExtent(), f.ViewportExtent())
}

// ContentPosition returns the leading and trailing edge of v in content space
// Content space is the frame's offset space, independent of the current offset
// ok is false when v is not inside the content view
func (f *Frame) ContentPosition(v view.View) (start, end float64, ok bool) {
	if f.content == nil || !view.Contains(f.content, v) {
		return 0, 0, false
	}
	o := f.orientation
	abs := v.Node().Frame()
	start = abs.Min(o) - f.Frame().Min(o) + f.ContentOffset()
	return start, start + abs.Extent(o), true
}

// fullyVisible reports whether [start, end] lies inside the viewport at offset
func (f *Frame) fullyVisible(start, end, offset float64) bool {
	return start >= offset-epsilon && end <= offset+f.ViewportExtent()+epsilon
}

// partiallyVisible reports whether [start, end] overlaps the viewport at offset
func (f *Frame) partiallyVisible(start, end, offset float64) bool {
	return end > offset+epsilon && start < offset+f.ViewportExtent()-epsilon
}

func clampOffset(v, content, viewport float64) float64 {
	hi := math.Max(0, content-viewport)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// revealOffset returns the smallest move from offset that fully shows [start, end]
// Views longer than the viewport are aligned on their leading edge
func revealOffset(start, end, offset, viewport float64) float64 {
	switch {
	case end-start > viewport:
		return start
	case start < offset:
		return start
	case end > offset+viewport:
		return end - viewport
	}
	return offset
}

// centerOffset returns the offset placing the middle of [start, end] on the viewport middle
func centerOffset(start, end, viewport float64) float64 {
	return (start+end)/2 - viewport/2
}

// indicatorGeometry returns the indicator position and length along the axis, in viewport space
// Hidden when the content fits the viewport
func indicatorGeometry(offset, content, viewport float64) (pos, length float64, visible bool) {
	if viewport <= 0 || content <= viewport {
		return 0, 0, false
	}
	length = math.Max(1, math.Round(viewport*viewport/content))
	travel := viewport - length
	pos = math.Round(travel * offset / (content - viewport))
	return pos, length, true
}
