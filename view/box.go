package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/render"
)

// Box lays its children out in a line along its axis
// Children are stretched across the cross axis unless their size is fixed
// Without a fixed main-axis size the box grows to fit its children
type Box struct {
	Base

	axis       core.Orientation
	spacing    float64
	padding    core.Insets
	background tcell.Style
	filled     bool
}

// NewBox creates an empty box laying out along axis
func NewBox(axis core.Orientation) *Box {
	b := &Box{axis: axis}
	b.Init(b)
	return b
}

// Axis returns the layout axis
func (b *Box) Axis() core.Orientation { return b.axis }

// SetAxis changes the layout axis
func (b *Box) SetAxis(axis core.Orientation) {
	b.axis = axis
	b.Invalidate()
}

// SetSpacing sets the gap between consecutive children
func (b *Box) SetSpacing(s float64) {
	b.spacing = s
	b.Invalidate()
}

// SetPadding sets the inner padding
func (b *Box) SetPadding(p core.Insets) {
	b.padding = p
	b.Invalidate()
}

// Padding returns the inner padding
func (b *Box) Padding() core.Insets { return b.padding }

// SetBackground fills the box area with style before drawing children
func (b *Box) SetBackground(style tcell.Style) {
	b.background = style
	b.filled = true
}

// AddView appends v as the last child
func (b *Box) AddView(v View) {
	Attach(b.Self(), v)
}

// RemoveView detaches v, calling Free when requested and supported
func (b *Box) RemoveView(v View, free bool) {
	Detach(v)
	if f, ok := v.(Freer); free && ok {
		f.Free()
	}
}

// Layout positions children and sizes the box to fit when not fixed
func (b *Box) Layout() {
	cross := b.axis.Cross()
	innerCross := b.Extent(cross) - b.padding.Start(cross) - b.padding.End(cross)
	if innerCross < 0 {
		innerCross = 0
	}

	pos := b.padding.Start(b.axis)
	placed := 0
	for _, c := range b.children {
		cn := c.Node()
		if !cn.visible || cn.detached {
			continue
		}
		cn.SetLayoutExtent(cross, innerCross)
		c.Layout()

		if placed > 0 {
			pos += b.spacing
		}
		if b.axis == core.Vertical {
			cn.SetPosition(b.padding.Left, pos)
		} else {
			cn.SetPosition(pos, b.padding.Top)
		}
		pos += cn.Extent(b.axis)
		placed++
	}

	if !b.FixedExtent(b.axis) {
		b.setLayoutSize(b.axis, pos+b.padding.End(b.axis))
	}
}

// Draw fills the background if set and draws children unclipped
func (b *Box) Draw(r render.Region) {
	if b.filled {
		r.At(b.Frame()).Fill(b.background)
	}
	drawChildren(b.Node(), r)
}

// NextFocus picks the nearest sibling along the box axis that resolves to a focus target
func (b *Box) NextFocus(dir core.Direction, current View) View {
	if !dir.On(b.axis) {
		return nil
	}
	idx := -1
	for i, c := range b.children {
		if c == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	step := -1
	if dir.Forward() {
		step = 1
	}
	for i := idx + step; i >= 0 && i < len(b.children); i += step {
		c := b.children[i]
		if c.Node().detached {
			continue
		}
		if f := ResolveDefaultFocus(c); f != nil {
			return f
		}
	}
	return nil
}
