package frame

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/lixenwraith/scrollframe/anim"
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/event"
	"github.com/lixenwraith/scrollframe/input"
	"github.com/lixenwraith/scrollframe/render"
	"github.com/lixenwraith/scrollframe/view"
)

// Frame is a scrolling container with a single content view
// Its size is assigned by the parent or fixed with SetSize, it never sizes itself
type Frame struct {
	view.Base

	content       view.View
	indicator     *view.Rectangle
	showIndicator bool

	orientation core.Orientation
	behavior    Behavior
	policy      policy

	padding core.Insets

	offsetX  *anim.Animatable
	offsetY  *anim.Animatable
	runner   *anim.Runner
	duration time.Duration
	easing   anim.Easing

	bounds Boundaries

	childFocused      bool
	lastFocus         view.View
	updateOnNextFrame bool
	natural           NaturalState
	needsValidation   bool

	inputType input.Type
	types     *event.Event[input.Type]
	typeSub   *event.Subscription
	nav       map[input.Type]NavConstants

	log logr.Logger
}

// Option configures a Frame
type Option func(*Frame)

// WithRunner animates offsets on r, without a runner every scroll is instant
func WithRunner(r *anim.Runner) Option {
	return func(f *Frame) { f.runner = r }
}

// WithOrientation sets the scroll axis, default vertical
func WithOrientation(o core.Orientation) Option {
	return func(f *Frame) { f.orientation = o }
}

// WithBehavior sets the navigation policy, default natural
func WithBehavior(b Behavior) Option {
	return func(f *Frame) { f.behavior = b }
}

// WithAnimationDuration sets the scroll animation length
func WithAnimationDuration(d time.Duration) Option {
	return func(f *Frame) { f.duration = d }
}

// WithEasing sets the scroll animation curve
func WithEasing(e anim.Easing) Option {
	return func(f *Frame) { f.easing = e }
}

// WithLogger sets the frame logger
func WithLogger(l logr.Logger) Option {
	return func(f *Frame) { f.log = l }
}

// WithInputTypes subscribes to input modality changes, current is the modality at construction
func WithInputTypes(ev *event.Event[input.Type], current input.Type) Option {
	return func(f *Frame) {
		f.types = ev
		f.inputType = current
	}
}

// WithNavConstants overrides the natural scrolling constants for one input type
func WithNavConstants(t input.Type, c NavConstants) Option {
	return func(f *Frame) { f.nav[t] = c }
}

// WithIndicator shows the scrolling indicator
func WithIndicator(show bool) Option {
	return func(f *Frame) { f.showIndicator = show }
}

// New creates an empty frame
func New(opts ...Option) *Frame {
	f := &Frame{
		duration: DefaultAnimationDuration,
		easing:   anim.QuadraticOut,
		nav:      DefaultNavConstants(),
		log:      logr.Discard(),
	}
	f.Init(f)
	for _, opt := range opts {
		opt(f)
	}

	f.policy = policyFor(f.behavior)
	f.offsetX = anim.NewAnimatable(f.runner, 0)
	f.offsetY = anim.NewAnimatable(f.runner, 0)
	f.offsetX.SetTickCallback(f.scrollTick)
	f.offsetY.SetTickCallback(f.scrollTick)

	if f.types != nil {
		f.typeSub = f.types.Subscribe(f.onInputTypeChanged)
	}
	return f
}

// --- Content ---

// ContentView returns the content view, nil when empty
func (f *Frame) ContentView() view.View { return f.content }

// SetContentView replaces the content view, nil clears it
// The content is taken out of flow layout and placed at the padding origin
func (f *Frame) SetContentView(v view.View) {
	if f.content == v {
		return
	}
	if old := f.content; old != nil {
		old.Node().SetTranslation(0, 0)
		view.Detach(old)
	}

	f.content = v
	f.lastFocus = nil
	f.childFocused = false
	f.natural = StateIdle
	f.offsetX.Set(0)
	f.offsetY.Set(0)

	if v != nil {
		view.Attach(f, v)
		v.Node().SetDetached(true)
		f.placeContent()
		f.needsValidation = true
	}
	f.applyOffset()
	f.Invalidate()
}

// AddView sets v as the content view
// A frame holds one content view, a second one is rejected and the first kept
func (f *Frame) AddView(v view.View) error {
	if f.content != nil {
		id := ""
		if v != nil {
			id = v.Node().ID
		}
		f.log.Error(ErrContentViewSet, "add view rejected", "id", f.ID, "view", id)
		return ErrContentViewSet
	}
	f.SetContentView(v)
	return nil
}

// RemoveView clears the content view if v is it, calling Free when requested and supported
func (f *Frame) RemoveView(v view.View, free bool) {
	if v == nil || v != f.content {
		return
	}
	f.SetContentView(nil)
	if fr, ok := v.(view.Freer); free && ok {
		fr.Free()
	}
}

func (f *Frame) placeContent() {
	if f.content != nil {
		f.content.Node().SetPosition(f.padding.Left, f.padding.Top)
	}
}

// --- Padding ---

// Padding returns the padding forwarded to the content
func (f *Frame) Padding() core.Insets { return f.padding }

// SetPadding sets all four paddings
func (f *Frame) SetPadding(p core.Insets) {
	f.padding = p
	f.placeContent()
	f.Invalidate()
}

// SetPaddingTop sets the top padding
func (f *Frame) SetPaddingTop(v float64) {
	p := f.padding
	p.Top = v
	f.SetPadding(p)
}

// SetPaddingRight sets the right padding
func (f *Frame) SetPaddingRight(v float64) {
	p := f.padding
	p.Right = v
	f.SetPadding(p)
}

// SetPaddingBottom sets the bottom padding
func (f *Frame) SetPaddingBottom(v float64) {
	p := f.padding
	p.Bottom = v
	f.SetPadding(p)
}

// SetPaddingLeft sets the left padding
func (f *Frame) SetPaddingLeft(v float64) {
	p := f.padding
	p.Left = v
	f.SetPadding(p)
}

// --- Configuration ---

// Orientation returns the scroll axis
func (f *Frame) Orientation() core.Orientation { return f.orientation }

// SetOrientation changes the scroll axis, both offsets reset to zero
func (f *Frame) SetOrientation(o core.Orientation) {
	if f.orientation == o {
		return
	}
	f.orientation = o
	f.offsetX.Set(0)
	f.offsetY.Set(0)
	f.natural = StateIdle
	f.applyOffset()
	f.Invalidate()
}

// ScrollingBehavior returns the active policy
func (f *Frame) ScrollingBehavior() Behavior { return f.behavior }

// SetScrollingBehavior switches the policy
// Not expected to change while focus is inside the frame
func (f *Frame) SetScrollingBehavior(b Behavior) {
	if f.behavior == b {
		return
	}
	f.behavior = b
	f.policy = policyFor(b)
	f.natural = StateIdle
	f.needsValidation = true
	f.Invalidate()
}

// NaturalState returns the natural policy state
func (f *Frame) NaturalState() NaturalState { return f.natural }

// Boundaries returns the viewport edges computed by the last prebake
func (f *Frame) Boundaries() Boundaries { return f.bounds }

// InputType returns the modality last reported to the frame
func (f *Frame) InputType() input.Type { return f.inputType }

// NavConstants returns the natural scrolling constants for t
func (f *Frame) NavConstants(t input.Type) NavConstants {
	if c, ok := f.nav[t]; ok {
		return c
	}
	return DefaultNavConstants()[input.TypeGamepad]
}

func (f *Frame) navConstants() NavConstants {
	return f.NavConstants(f.inputType)
}

// VisibleFrame returns the part of the content space shown by the viewport
func (f *Frame) VisibleFrame() core.Rect {
	r := f.LocalFrame()
	return core.Rect{X: f.offsetX.Value(), Y: f.offsetY.Value(), W: r.W, H: r.H}
}

// FocusSound is played when focus moves into the frame
func (f *Frame) FocusSound() core.SoundType {
	return core.SoundFocusChange
}

// --- Focus resolution ---

// DefaultFocus picks the view focused when focus is given to the frame
func (f *Frame) DefaultFocus() view.View {
	if f.content == nil {
		return nil
	}
	return f.policy.defaultFocus(f)
}

// TopMostFocusable returns the first focusable content view fully visible at the current offset
// Falls back to the content's default focus when none is visible
func (f *Frame) TopMostFocusable() view.View {
	if f.content == nil {
		return nil
	}
	cur := f.TargetOffset()
	for _, v := range view.Focusables(f.content) {
		if start, end, ok := f.ContentPosition(v); ok && f.fullyVisible(start, end, cur) {
			return v
		}
	}
	return view.ResolveDefaultFocus(f.content)
}

// Validate checks the natural scrolling precondition against the current layout
// Returns ErrNoTopFocusable when no focusable view is visible without scrolling
func (f *Frame) Validate() error {
	if f.behavior != BehaviorNatural || f.content == nil {
		return nil
	}
	for _, v := range view.Focusables(f.content) {
		if start, end, ok := f.ContentPosition(v); ok && f.fullyVisible(start, end, 0) {
			return nil
		}
	}
	return ErrNoTopFocusable
}

// --- Layout and draw ---

// Layout sizes the content across the axis, lets it size itself along the axis and re-clamps the offset
func (f *Frame) Layout() {
	if f.content != nil && f.content.Node().Visible() {
		cross := f.orientation.Cross()
		inner := f.Extent(cross) - f.padding.Start(cross) - f.padding.End(cross)
		if inner < 0 {
			inner = 0
		}
		f.content.Node().SetLayoutExtent(cross, inner)
		f.content.Layout()
		f.placeContent()
	}

	f.prebake()
	f.applyOffset()

	if f.needsValidation && f.ViewportExtent() > 0 {
		f.needsValidation = false
		if err := f.Validate(); err != nil {
			f.log.Error(err, "frame misconfigured", "id", f.ID)
		}
	}
}

// Draw draws the content clipped to the frame, then the indicator
// A scroll to focus scheduled by WillAppear is applied first, retried until it succeeds
func (f *Frame) Draw(r render.Region) {
	if f.updateOnNextFrame {
		if f.lastFocus == nil || !f.childFocused || f.scrollToFocus(f.lastFocus, false) {
			f.updateOnNextFrame = false
		}
	}

	clip := r.Clip(f.Frame())
	if f.content != nil && f.content.Node().Visible() {
		f.content.Draw(clip)
	}
	if f.indicator != nil && f.indicator.Visible() {
		f.indicator.Draw(clip)
	}
}

// --- Teardown ---

// Close releases the input type subscription, safe to call more than once
func (f *Frame) Close() {
	f.typeSub.Release()
	f.typeSub = nil
}

// Free releases resources when the frame is removed with free set
func (f *Frame) Free() {
	f.Close()
	f.offsetX.Stop()
	f.offsetY.Stop()
}

func (f *Frame) onInputTypeChanged(t input.Type) {
	f.inputType = t
	f.natural = StateIdle
}

func (f *Frame) scrollToFocus(v view.View, animated bool) bool {
	target, ok := f.policy.target(f, v)
	if !ok {
		return false
	}
	f.startScrolling(target, animated, f.duration)
	return true
}
