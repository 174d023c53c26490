package frame

import (
	"math"

	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/view"
)

// policy is one focus navigation strategy
// Implementations are stateless, the natural state machine lives on the frame
type policy interface {
	behavior() Behavior
	// target returns the offset revealing v, ok is false when v has no content position
	target(f *Frame, v view.View) (float64, bool)
	intercept(f *Frame, focused, candidate view.View, dir core.Direction, repeat bool) bool
	decide(f *Frame, from, newFocus view.View, dir core.Direction) view.View
	defaultFocus(f *Frame) view.View
}

func policyFor(b Behavior) policy {
	if b == BehaviorCentered {
		return centeredPolicy{}
	}
	return naturalPolicy{}
}

// --- Centered ---

type centeredPolicy struct{}

func (centeredPolicy) behavior() Behavior { return BehaviorCentered }

func (centeredPolicy) target(f *Frame, v view.View) (float64, bool) {
	start, end, ok := f.ContentPosition(v)
	if !ok || f.ViewportExtent() <= 0 {
		return 0, false
	}
	return centerOffset(start, end, f.ViewportExtent()), true
}

func (centeredPolicy) intercept(*Frame, view.View, view.View, core.Direction, bool) bool {
	return false
}

func (centeredPolicy) decide(_ *Frame, _, newFocus view.View, _ core.Direction) view.View {
	return newFocus
}

func (centeredPolicy) defaultFocus(f *Frame) view.View {
	return view.ResolveDefaultFocus(f.content)
}

// --- Natural ---

type naturalPolicy struct{}

func (naturalPolicy) behavior() Behavior { return BehaviorNatural }

func (naturalPolicy) target(f *Frame, v view.View) (float64, bool) {
	start, end, ok := f.ContentPosition(v)
	if !ok || f.ViewportExtent() <= 0 {
		return 0, false
	}
	return revealOffset(start, end, f.TargetOffset(), f.ViewportExtent()), true
}

// intercept pans the viewport while the focused view stays fully visible
func (naturalPolicy) intercept(f *Frame, focused, candidate view.View, dir core.Direction, repeat bool) bool {
	if !dir.On(f.orientation) {
		f.natural = StateIdle
		return false
	}

	cur := f.TargetOffset()
	maxOff := f.MaxOffset()
	forward := dir.Forward()

	// Exhausted in that direction
	if (forward && cur >= maxOff-epsilon) || (!forward && cur <= epsilon) {
		f.natural = StateIdle
		return false
	}

	// Next focus target is already on screen
	if candidate != nil {
		if start, end, ok := f.ContentPosition(candidate); ok && f.fullyVisible(start, end, cur) {
			f.natural = StateIdle
			return false
		}
	}

	start, end, ok := f.ContentPosition(focused)
	if !ok {
		f.natural = StateIdle
		return false
	}

	// A view longer than the viewport pans until its trailing edge lines up
	vp := f.ViewportExtent()
	long := end-start > vp
	var room, remaining float64
	switch {
	case forward && long:
		room = end - (cur + vp)
		remaining = maxOff - cur
	case forward:
		room = start - cur
		remaining = maxOff - cur
	case long:
		room = cur - start
		remaining = cur
	default:
		room = cur + vp - end
		remaining = cur
	}
	if room <= epsilon {
		f.natural = StateIdle
		return false
	}

	nav := f.navConstants()
	step := nav.Step
	d := f.duration
	if repeat && f.natural == StateNaturalScrolling {
		step = nav.RepeatStep
		if nav.RepeatDuration > 0 {
			d = nav.RepeatDuration
		}
	}
	delta := math.Min(step, math.Min(room, remaining))
	if !forward {
		delta = -delta
	}

	f.natural = StateNaturalScrolling
	f.startScrolling(cur+delta, true, d)
	f.log.V(2).Info("natural scroll", "id", f.ID, "dir", dir, "target", cur+delta, "repeat", repeat)
	return true
}

// decide refuses sideways moves onto content views that are entirely off screen
// The nearest candidate outside the frame is substituted, or nil when there is none
func (naturalPolicy) decide(f *Frame, from, newFocus view.View, dir core.Direction) view.View {
	if newFocus == nil || dir.On(f.orientation) {
		return newFocus
	}
	start, end, ok := f.ContentPosition(newFocus)
	if !ok || f.partiallyVisible(start, end, f.TargetOffset()) {
		return newFocus
	}
	f.log.V(1).Info("hidden sideways candidate refused", "id", f.ID, "candidate", newFocus.Node().ID)
	return view.NextFocus(f, dir)
}

func (naturalPolicy) defaultFocus(f *Frame) view.View {
	return f.TopMostFocusable()
}
