package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollframe/render"
)

// Rectangle is a solid block, sized and positioned by its owner
type Rectangle struct {
	Base

	style tcell.Style
	ch    rune
}

// NewRectangle creates a rectangle drawn with ch in style
func NewRectangle(ch rune, style tcell.Style) *Rectangle {
	rect := &Rectangle{style: style, ch: ch}
	rect.Init(rect)
	return rect
}

// SetStyle replaces the fill style
func (rc *Rectangle) SetStyle(style tcell.Style) { rc.style = style }

// Layout is a no-op, geometry is assigned by the owner
func (rc *Rectangle) Layout() {}

// Draw fills the rectangle area
func (rc *Rectangle) Draw(r render.Region) {
	area := r.At(rc.Frame())
	for y := 0; y < area.H; y++ {
		for x := 0; x < area.W; x++ {
			area.Cell(x, y, rc.ch, rc.style)
		}
	}
}
