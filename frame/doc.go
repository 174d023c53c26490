// Package frame implements the scrolling frame: a container holding one content view,
// clipped to its own bounds and scrolled along one axis.
//
// The frame reconciles its scroll offset with directional focus movement. On every focus
// change and layout pass it decides the offset, whether the move is instant or animated,
// and whether a directional press is consumed by panning or passed to the focus search.
// Two policies are available: natural (pan first, move focus once panning is exhausted)
// and centered (keep the focused view on the middle of the viewport).
//
// Per frame the owning loop runs input, view.Tree.Navigate, anim.Runner.Tick, layout and
// draw in that order. The frame never ticks its own animations.
package frame
