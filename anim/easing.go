package anim

// Easing maps linear progress in [0,1] to eased progress
type Easing func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 { return t }

// QuadraticOut decelerates toward the target
func QuadraticOut(t float64) float64 { return t * (2 - t) }

// CubicOut decelerates harder than QuadraticOut
func CubicOut(t float64) float64 {
	t--
	return t*t*t + 1
}
