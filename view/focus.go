package view

import "github.com/lixenwraith/scrollframe/core"

// ResolveDefaultFocus returns the view that should receive focus when v is focused
func ResolveDefaultFocus(v View) View {
	if v == nil || !v.Node().visible {
		return nil
	}
	if d, ok := v.(DefaultFocuser); ok {
		return d.DefaultFocus()
	}
	return FirstFocusable(v)
}

// FirstFocusable is the default resolution: v if focusable, else the first child resolving to a focus target
func FirstFocusable(v View) View {
	n := v.Node()
	if n.Focusable() {
		return v
	}
	for _, c := range n.children {
		if f := ResolveDefaultFocus(c); f != nil {
			return f
		}
	}
	return nil
}

// NextFocus runs the default directional search starting at from
// Each ancestor gets a chance to pick a sibling of the child on the path, innermost first
func NextFocus(from View, dir core.Direction) View {
	if from == nil {
		return nil
	}
	child := from
	for parent := from.Node().parent; parent != nil; parent = parent.Node().parent {
		var next View
		if nav, ok := parent.(Navigator); ok {
			next = nav.NextFocus(dir, child)
		}
		if next != nil {
			return next
		}
		child = parent
	}
	return nil
}

// Focusables returns the focusable descendants of v in tree order
func Focusables(v View) []View {
	var out []View
	Walk(v, func(c View) bool {
		n := c.Node()
		if !n.visible {
			return false
		}
		if n.Focusable() {
			out = append(out, c)
		}
		return true
	})
	return out
}

// soundFor finds the innermost Sounder on the path from v to the root
func soundFor(v View) core.SoundType {
	for cur := v; cur != nil; cur = cur.Node().parent {
		if s, ok := cur.(Sounder); ok {
			return s.FocusSound()
		}
	}
	return core.SoundFocusChange
}
