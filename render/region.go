package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/scrollframe/core"
)

// Region is a rectangular drawing target on a screen with a clip rectangle
// X, Y, W, H describe the region itself and may extend past the clip, which is how
// translated (scrolled) content stays addressable while only its visible part is drawn
type Region struct {
	screen tcell.Screen
	X, Y   int // Absolute origin on screen
	W, H   int // Region dimensions

	clipX0, clipY0 int // Inclusive
	clipX1, clipY1 int // Exclusive
}

// NewRegion creates a region covering x,y,w,h clipped to itself
func NewRegion(screen tcell.Screen, x, y, w, h int) Region {
	return Region{
		screen: screen,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		clipX0: x,
		clipY0: y,
		clipX1: x + w,
		clipY1: y + h,
	}
}

// At returns a region placed at the absolute rectangle rect, clip is inherited unchanged
func (r Region) At(rect core.Rect) Region {
	x0, y0, x1, y1 := snap(rect)
	return Region{
		screen: r.screen,
		X:      x0,
		Y:      y0,
		W:      x1 - x0,
		H:      y1 - y0,
		clipX0: r.clipX0,
		clipY0: r.clipY0,
		clipX1: r.clipX1,
		clipY1: r.clipY1,
	}
}

// Clip returns a region placed at rect whose clip is the intersection of the current clip and rect
func (r Region) Clip(rect core.Rect) Region {
	n := r.At(rect)
	n.clipX0 = max(n.clipX0, n.X)
	n.clipY0 = max(n.clipY0, n.Y)
	n.clipX1 = min(n.clipX1, n.X+n.W)
	n.clipY1 = min(n.clipY1, n.Y+n.H)
	return n
}

// Sub returns a nested region with coordinates relative to r, clipped to r
func (r Region) Sub(x, y, w, h int) Region {
	return r.Clip(core.Rect{X: float64(r.X + x), Y: float64(r.Y + y), W: float64(w), H: float64(h)})
}

// Visible reports whether any cell of the region survives clipping
func (r Region) Visible() bool {
	return max(r.X, r.clipX0) < min(r.X+r.W, r.clipX1) && max(r.Y, r.clipY0) < min(r.Y+r.H, r.clipY1)
}

// Cell sets a single cell relative to the region origin, with bounds and clip checks
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if r.screen == nil || x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y
	if absX < r.clipX0 || absX >= r.clipX1 || absY < r.clipY0 || absY >= r.clipY1 {
		return
	}
	r.screen.SetContent(absX, absY, ch, nil, style)
}

// Fill paints every cell of the region with a space in style
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Text renders s starting at x,y, wide runes take two cells, truncated at the region edge
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		r.Cell(col, y, ch, style)
		if w == 2 {
			r.Cell(col+1, y, ' ', style)
		}
		col += w
	}
	return col - x
}

// TextCenter renders s centered on row y
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	w := runewidth.StringWidth(s)
	x := (r.W - w) / 2
	if x < 0 {
		x = 0
	}
	r.Text(x, y, s, style)
}

// snap converts a fractional rectangle to cell edges
func snap(rect core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Round(rect.X))
	y0 = int(math.Round(rect.Y))
	x1 = int(math.Round(rect.X + rect.W))
	y1 = int(math.Round(rect.Y + rect.H))
	return x0, y0, x1, y1
}
