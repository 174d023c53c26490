package view

import "github.com/lixenwraith/scrollframe/core"

// FocusHandler is notified when the view itself gains or loses focus
type FocusHandler interface {
	OnFocusGained()
	OnFocusLost()
}

// ChildFocusHandler is notified when focus enters or leaves a descendant
// child is the direct child on the path to focused
type ChildFocusHandler interface {
	OnChildFocusGained(child, focused View)
	OnChildFocusLost(child, focused View)
}

// Navigator overrides the sibling search for focus moves starting at a direct child
// Returning nil continues the search at the next ancestor
type Navigator interface {
	NextFocus(dir core.Direction, current View) View
}

// DefaultFocuser picks the view that receives focus when focus is given to this view
type DefaultFocuser interface {
	DefaultFocus() View
}

// NavigationDecider may replace the focus search result for a move starting inside it
// Returning from keeps focus in place, returning nil blocks the move
type NavigationDecider interface {
	ParentNavigationDecision(from, newFocus View, dir core.Direction) View
}

// NavigationInterceptor sees directional input before focus changes
// Returning true consumes the input, focus stays where it is
type NavigationInterceptor interface {
	InterceptNavigation(focused, candidate View, dir core.Direction, repeat bool) bool
}

// Appearer is notified when the tree is shown
type Appearer interface {
	WillAppear(resetState bool)
}

// Freer releases resources held by a view that is removed with free=true
type Freer interface {
	Free()
}

// Sounder selects the sound played when focus moves into the view's subtree
type Sounder interface {
	FocusSound() core.SoundType
}

// SoundPlayer plays UI feedback sounds
type SoundPlayer interface {
	Play(core.SoundType)
}
