package view

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/lixenwraith/scrollframe/anim"
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/render"
)

// Outcome reports what a directional input did
type Outcome uint8

const (
	OutcomeNone     Outcome = iota
	OutcomeMoved            // Focus changed
	OutcomeConsumed         // An interceptor or decider kept focus in place
	OutcomeBlocked          // No candidate in that direction
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeConsumed:
		return "consumed"
	case OutcomeBlocked:
		return "blocked"
	}
	return "none"
}

// Tree owns the root view, current focus and the animation runner
type Tree struct {
	root   View
	focus  View
	runner *anim.Runner
	sounds SoundPlayer
	log    logr.Logger
}

// TreeOption configures a Tree
type TreeOption func(*Tree)

// WithRunner sets the animation runner ticked by Frame
func WithRunner(r *anim.Runner) TreeOption {
	return func(t *Tree) { t.runner = r }
}

// WithSoundPlayer sets the focus feedback sink
func WithSoundPlayer(p SoundPlayer) TreeOption {
	return func(t *Tree) { t.sounds = p }
}

// WithLogger sets the tree logger
func WithLogger(l logr.Logger) TreeOption {
	return func(t *Tree) { t.log = l }
}

// NewTree wraps root, focus is empty until Appear or GiveFocus
func NewTree(root View, opts ...TreeOption) *Tree {
	t := &Tree{
		root: root,
		log:  logr.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the root view
func (t *Tree) Root() View { return t.root }

// Runner returns the animation runner, may be nil
func (t *Tree) Runner() *anim.Runner { return t.runner }

// Focus returns the focused view, may be nil
func (t *Tree) Focus() View { return t.focus }

// Resize fixes the root to the screen size
func (t *Tree) Resize(w, h float64) {
	t.root.Node().SetSize(w, h)
}

// Layout runs a full layout pass from the root
func (t *Tree) Layout() {
	t.root.Layout()
	clearDirty(t.root)
}

// Appear lays the tree out, notifies Appearers and focuses the root's default target
func (t *Tree) Appear() {
	t.Layout()
	Walk(t.root, func(v View) bool {
		if a, ok := v.(Appearer); ok {
			a.WillAppear(true)
		}
		return true
	})
	if t.focus == nil {
		t.GiveFocus(t.root)
	}
}

// GiveFocus resolves v's default focus and moves focus there
// Returns false when nothing in v can take focus
func (t *Tree) GiveFocus(v View) bool {
	if v == nil {
		return false
	}
	target := ResolveDefaultFocus(v)
	if target == nil {
		t.log.V(1).Info("no focus target", "view", v.Node().ID)
		return false
	}
	if target == t.focus {
		return true
	}

	if old := t.focus; old != nil {
		old.Node().focused = false
		if h, ok := old.(FocusHandler); ok {
			h.OnFocusLost()
		}
		notifyChildFocus(old, false)
	}

	t.focus = target
	target.Node().focused = true
	if h, ok := target.(FocusHandler); ok {
		h.OnFocusGained()
	}
	notifyChildFocus(target, true)

	t.log.V(2).Info("focus changed", "view", target.Node().ID)
	return true
}

// Navigate processes one directional press or repeat
// Order: default search, interceptors (innermost first), deciders (innermost first), focus change
func (t *Tree) Navigate(dir core.Direction, repeat bool) Outcome {
	if t.focus == nil {
		if t.GiveFocus(t.root) {
			return OutcomeMoved
		}
		return OutcomeBlocked
	}

	from := t.focus
	candidate := NextFocus(from, dir)

	for a := from.Node().parent; a != nil; a = a.Node().parent {
		if ic, ok := a.(NavigationInterceptor); ok && ic.InterceptNavigation(from, candidate, dir, repeat) {
			return OutcomeConsumed
		}
	}
	for a := from.Node().parent; a != nil; a = a.Node().parent {
		if d, ok := a.(NavigationDecider); ok {
			candidate = d.ParentNavigationDecision(from, candidate, dir)
		}
	}

	switch {
	case candidate == from:
		return OutcomeConsumed
	case candidate == nil:
		t.play(core.SoundFocusError)
		return OutcomeBlocked
	}

	t.play(soundFor(candidate))
	t.GiveFocus(candidate)
	return OutcomeMoved
}

// Frame advances animations by dt, re-lays out when invalidated and draws into r
func (t *Tree) Frame(dt time.Duration, r render.Region) {
	if t.runner != nil {
		t.runner.Tick(dt)
	}
	if t.root.Node().NeedsLayout() {
		t.Layout()
	}
	t.root.Draw(r)
}

// ViewAt returns the deepest visible view containing the cell x,y, pruning subtrees whose parent misses it
func (t *Tree) ViewAt(x, y float64) View {
	var hit View
	p := core.Rect{X: x + 0.25, Y: y + 0.25, W: 0.5, H: 0.5}
	Walk(t.root, func(v View) bool {
		n := v.Node()
		if !n.visible || !n.Frame().Overlaps(p) {
			return false
		}
		hit = v
		return true
	})
	return hit
}

func (t *Tree) play(s core.SoundType) {
	if t.sounds != nil && s != core.SoundNone {
		t.sounds.Play(s)
	}
}

// notifyChildFocus walks from v to the root calling ChildFocusHandler hooks
func notifyChildFocus(v View, gained bool) {
	child := v
	for parent := v.Node().parent; parent != nil; parent = parent.Node().parent {
		if h, ok := parent.(ChildFocusHandler); ok {
			if gained {
				h.OnChildFocusGained(child, v)
			} else {
				h.OnChildFocusLost(child, v)
			}
		}
		child = parent
	}
}
