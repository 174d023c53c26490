package anim

import "time"

// Animatable is a float interpolated toward a target by an external tick
type Animatable struct {
	runner *Runner

	value  float64
	from   float64
	target float64

	elapsed  time.Duration
	duration time.Duration
	easing   Easing
	running  bool

	onTick func()
	onEnd  func()
}

// NewAnimatable creates an idle animatable bound to runner
// A nil runner makes every animation complete instantly
func NewAnimatable(runner *Runner, value float64) *Animatable {
	return &Animatable{
		runner: runner,
		value:  value,
		target: value,
		easing: QuadraticOut,
	}
}

// Value returns the currently displayed value
func (a *Animatable) Value() float64 { return a.value }

// Target returns the pending destination, equal to Value when idle
func (a *Animatable) Target() float64 { return a.target }

// Running reports whether an animation is in flight
func (a *Animatable) Running() bool { return a.running }

// Remaining returns the time left on the current animation
func (a *Animatable) Remaining() time.Duration {
	if !a.running {
		return 0
	}
	return a.duration - a.elapsed
}

// SetTickCallback installs fn, invoked after every tick that changes the value
func (a *Animatable) SetTickCallback(fn func()) { a.onTick = fn }

// SetEndCallback installs fn, invoked once when an animation reaches its target
func (a *Animatable) SetEndCallback(fn func()) { a.onEnd = fn }

// Set cancels any animation and jumps to v without invoking callbacks
func (a *Animatable) Set(v float64) {
	a.Stop()
	a.value = v
	a.target = v
}

// Stop freezes the value where it is
func (a *Animatable) Stop() {
	a.running = false
	a.target = a.value
	a.elapsed = 0
	if a.runner != nil {
		a.runner.remove(a)
	}
}

// AnimateTo starts interpolating from the current value to target over d
// An in-flight animation is superseded, continuing from the displayed value
func (a *Animatable) AnimateTo(target float64, d time.Duration, easing Easing) {
	if easing == nil {
		easing = QuadraticOut
	}
	if a.runner == nil || d <= 0 {
		a.running = false
		a.value = target
		a.target = target
		if a.onTick != nil {
			a.onTick()
		}
		return
	}

	a.from = a.value
	a.target = target
	a.elapsed = 0
	a.duration = d
	a.easing = easing
	if !a.running {
		a.running = true
		a.runner.add(a)
	}
}

// Clamp bounds both value and target to [lo, hi]
// A running animation whose target moves is kept, interpolating to the new bound
func (a *Animatable) Clamp(lo, hi float64) {
	if hi < lo {
		hi = lo
	}
	a.value = clamp(a.value, lo, hi)
	newTarget := clamp(a.target, lo, hi)
	if a.running && newTarget != a.target {
		a.from = a.value
		a.elapsed = 0
	}
	a.target = newTarget
	if !a.running {
		a.target = a.value
	}
}

// advance moves the animation by dt
func (a *Animatable) advance(dt time.Duration) {
	if !a.running {
		return
	}

	a.elapsed += dt
	done := a.elapsed >= a.duration
	if done {
		a.value = a.target
		a.running = false
		a.elapsed = 0
	} else {
		p := a.easing(float64(a.elapsed) / float64(a.duration))
		a.value = a.from + (a.target-a.from)*p
	}

	if a.onTick != nil {
		a.onTick()
	}
	if done && a.onEnd != nil {
		a.onEnd()
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
