// Package anim provides the tick-driven interpolation primitive used by views.
//
// An Animatable is an explicit value+target+progress record. It never advances on
// its own: the owning loop calls Runner.Tick once per frame and every running
// Animatable moves toward its target, invoking its tick callback.
//
// Mutation goes through Set (instant), AnimateTo (animated, supersedes any
// in-flight animation) and Clamp (bounds enforcement). There are no exported
// fields.
package anim
