package anim

import "time"

// Runner advances every running Animatable once per frame
// Owned by the UI loop, not safe for concurrent use
type Runner struct {
	active []*Animatable
	frames uint64
}

// NewRunner creates an empty runner
func NewRunner() *Runner {
	return &Runner{active: make([]*Animatable, 0, 8)}
}

// Tick advances all running animations by dt
// Animations started by tick callbacks are picked up on the next frame
func (r *Runner) Tick(dt time.Duration) {
	r.frames++
	if len(r.active) == 0 {
		return
	}

	current := make([]*Animatable, len(r.active))
	copy(current, r.active)
	for _, a := range current {
		a.advance(dt)
		// Callbacks may have restarted the animation
		if !a.running {
			r.remove(a)
		}
	}
}

// Active returns the number of running animations
func (r *Runner) Active() int {
	return len(r.active)
}

// Frames returns the number of ticks processed
func (r *Runner) Frames() uint64 {
	return r.frames
}

// Settle ticks with step until nothing is running or limit ticks elapsed
// Returns the number of ticks performed
func (r *Runner) Settle(step time.Duration, limit int) int {
	n := 0
	for n < limit && len(r.active) > 0 {
		r.Tick(step)
		n++
	}
	return n
}

func (r *Runner) add(a *Animatable) {
	for _, x := range r.active {
		if x == a {
			return
		}
	}
	r.active = append(r.active, a)
}

func (r *Runner) remove(a *Animatable) {
	for i, x := range r.active {
		if x == a {
			r.active = append(r.active[:i], r.active[i+1:]...)
			return
		}
	}
}
