package view

import (
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/render"
)

// View is the capability set every node exposes to the tree
type View interface {
	Node() *Base
	Layout()
	Draw(r render.Region)
}

// Base is the shared state embedded by every view
type Base struct {
	self     View
	parent   View
	children []View

	ID string

	x, y   float64 // Local position inside the parent
	w, h   float64
	fixedW bool
	fixedH bool
	tx, ty float64 // Translation, applied to the node and its subtree

	focusable bool
	focused   bool
	detached  bool
	dirty     bool
	visible   bool
}

// Init binds the node to the view embedding it, must be called by constructors
func (n *Base) Init(self View) {
	n.self = self
	n.visible = true
	n.dirty = true
}

// Node returns the node itself, satisfying View for embedders
func (n *Base) Node() *Base { return n }

// Self returns the embedding view
func (n *Base) Self() View { return n.self }

// Parent returns the parent view or nil
func (n *Base) Parent() View { return n.parent }

// Children returns the child views in insertion order
func (n *Base) Children() []View { return n.children }

// --- Geometry ---

// SetSize fixes both dimensions
func (n *Base) SetSize(w, h float64) {
	n.w, n.h = w, h
	n.fixedW, n.fixedH = true, true
	n.Invalidate()
}

// SetWidth fixes the width
func (n *Base) SetWidth(w float64) {
	n.w = w
	n.fixedW = true
	n.Invalidate()
}

// SetHeight fixes the height
func (n *Base) SetHeight(h float64) {
	n.h = h
	n.fixedH = true
	n.Invalidate()
}

// Width returns the current width
func (n *Base) Width() float64 { return n.w }

// Height returns the current height
func (n *Base) Height() float64 { return n.h }

// Extent returns the size along the orientation's axis
func (n *Base) Extent(o core.Orientation) float64 {
	if o == core.Horizontal {
		return n.w
	}
	return n.h
}

// FixedExtent reports whether the size along the axis was set explicitly
func (n *Base) FixedExtent(o core.Orientation) bool {
	if o == core.Horizontal {
		return n.fixedW
	}
	return n.fixedH
}

// setLayoutSize is used by containers, it never marks the size as fixed
func (n *Base) setLayoutSize(o core.Orientation, v float64) {
	if o == core.Horizontal {
		n.w = v
	} else {
		n.h = v
	}
}

// SetLayoutExtent sizes the node along an axis on behalf of its container
// Ignored when the extent was fixed by SetSize/SetWidth/SetHeight
func (n *Base) SetLayoutExtent(o core.Orientation, v float64) {
	if n.FixedExtent(o) {
		return
	}
	n.setLayoutSize(o, v)
}

// SetPosition places the node relative to its parent
func (n *Base) SetPosition(x, y float64) {
	n.x, n.y = x, y
}

// LocalFrame returns position and size relative to the parent, without translation
func (n *Base) LocalFrame() core.Rect {
	return core.Rect{X: n.x, Y: n.y, W: n.w, H: n.h}
}

// SetTranslation shifts the node and its subtree without touching layout
func (n *Base) SetTranslation(tx, ty float64) {
	n.tx, n.ty = tx, ty
}

// Translation returns the current translation
func (n *Base) Translation() (float64, float64) {
	return n.tx, n.ty
}

// Frame returns the absolute rectangle including all ancestor translations
func (n *Base) Frame() core.Rect {
	r := core.Rect{X: n.x + n.tx, Y: n.y + n.ty, W: n.w, H: n.h}
	if n.parent != nil {
		p := n.parent.Node().Frame()
		r.X += p.X
		r.Y += p.Y
	}
	return r
}

// --- Flags ---

// SetFocusable marks the node as a focus target
func (n *Base) SetFocusable(f bool) { n.focusable = f }

// Focusable reports whether the node accepts focus
func (n *Base) Focusable() bool { return n.focusable && n.visible }

// IsFocused reports whether the node currently holds focus
func (n *Base) IsFocused() bool { return n.focused }

// SetDetached excludes the node from its parent's flow layout
func (n *Base) SetDetached(d bool) {
	n.detached = d
	n.Invalidate()
}

// Detached reports whether the node is excluded from flow layout
func (n *Base) Detached() bool { return n.detached }

// SetVisible hides or shows the node, hidden nodes are skipped by layout, draw and focus
func (n *Base) SetVisible(v bool) {
	n.visible = v
	n.Invalidate()
}

// Visible reports whether the node is shown
func (n *Base) Visible() bool { return n.visible }

// Invalidate requests a layout pass, propagated to the root
func (n *Base) Invalidate() {
	for cur := n; cur != nil; {
		cur.dirty = true
		if cur.parent == nil {
			return
		}
		cur = cur.parent.Node()
	}
}

// NeedsLayout reports whether a layout pass was requested
func (n *Base) NeedsLayout() bool { return n.dirty }

// --- Tree structure ---

// Attach appends child to parent, detaching it from any previous parent first
func Attach(parent, child View) {
	cn := child.Node()
	if cn.parent != nil {
		Detach(child)
	}
	pn := parent.Node()
	pn.children = append(pn.children, child)
	cn.parent = parent
	pn.Invalidate()
}

// Detach removes child from its parent, no-op for roots
func Detach(child View) {
	cn := child.Node()
	if cn.parent == nil {
		return
	}
	pn := cn.parent.Node()
	for i, c := range pn.children {
		if c == child {
			pn.children = append(pn.children[:i], pn.children[i+1:]...)
			break
		}
	}
	cn.parent = nil
	pn.Invalidate()
}

// Contains reports whether v is ancestor itself or one of its descendants
func Contains(ancestor, v View) bool {
	if ancestor == nil || v == nil {
		return false
	}
	for cur := v; cur != nil; cur = cur.Node().parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// Walk visits v and its descendants depth-first, stops descending when fn returns false
func Walk(v View, fn func(View) bool) {
	if v == nil || !fn(v) {
		return
	}
	for _, c := range v.Node().children {
		Walk(c, fn)
	}
}

// drawChildren draws visible children into r
func drawChildren(n *Base, r render.Region) {
	for _, c := range n.children {
		if c.Node().visible {
			c.Draw(r)
		}
	}
}

// clearDirty resets layout requests for the subtree
func clearDirty(v View) {
	Walk(v, func(c View) bool {
		c.Node().dirty = false
		return true
	})
}
