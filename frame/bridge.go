package frame

import (
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/input"
	"github.com/lixenwraith/scrollframe/view"
)

// OnChildFocusGained scrolls focused into view per the active policy
// Pointer input never scrolls on focus change
func (f *Frame) OnChildFocusGained(_, focused view.View) {
	f.childFocused = true
	f.lastFocus = focused
	if f.inputType == input.TypePointer {
		return
	}
	f.scrollToFocus(focused, true)
}

// OnChildFocusLost clears the focus flag, the offset stays
func (f *Frame) OnChildFocusLost(_, _ view.View) {
	f.childFocused = false
	f.natural = StateIdle
}

// ChildFocused reports whether focus is inside the frame
func (f *Frame) ChildFocused() bool { return f.childFocused }

// InterceptNavigation lets the policy consume a directional press before focus moves
func (f *Frame) InterceptNavigation(focused, candidate view.View, dir core.Direction, repeat bool) bool {
	if f.content == nil {
		return false
	}
	return f.policy.intercept(f, focused, candidate, dir, repeat)
}

// ParentNavigationDecision lets the policy replace the focus search result for moves starting inside the frame
func (f *Frame) ParentNavigationDecision(from, newFocus view.View, dir core.Direction) view.View {
	if f.content == nil {
		return newFocus
	}
	return f.policy.decide(f, from, newFocus, dir)
}

// WillAppear refreshes boundaries before the frame is shown
// With resetState the offset jumps to zero and the focused view is revealed on the next draw
func (f *Frame) WillAppear(resetState bool) {
	f.prebake()
	if !resetState {
		return
	}
	f.offsetX.Set(0)
	f.offsetY.Set(0)
	f.natural = StateIdle
	f.applyOffset()
	f.updateOnNextFrame = true
}
