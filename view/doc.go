// Package view is a small retained-mode view tree for cell-based, controller-driven UIs.
//
// Every node embeds Base, which stores geometry, translation, focus flags and the
// parent/child links. Behaviour is attached through optional hook interfaces
// (FocusHandler, ChildFocusHandler, Navigator, DefaultFocuser, NavigationDecider,
// NavigationInterceptor, Appearer) that Tree discovers by type assertion.
//
// Coordinates are float64 cells. Frame() returns absolute coordinates including the
// translation of every ancestor, which is how scrolled content is positioned without
// a re-layout.
//
// One loop goroutine owns a tree. Per frame the order is:
//
//	tree.Navigate(dir, repeat) // input, interceptors, focus change and notifications
//	tree.Frame(dt, region)     // animation tick, layout when invalidated, draw
package view
