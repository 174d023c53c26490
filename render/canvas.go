package render

import "github.com/gdamore/tcell/v2"

// Canvas owns the screen for one draw pass
type Canvas struct {
	screen tcell.Screen
	theme  Theme
}

// NewCanvas wraps an initialized screen
func NewCanvas(screen tcell.Screen, theme Theme) *Canvas {
	return &Canvas{screen: screen, theme: theme}
}

// Begin clears the screen to the theme background and returns the full-screen region
func (c *Canvas) Begin() Region {
	w, h := c.screen.Size()
	root := NewRegion(c.screen, 0, 0, w, h)
	root.Fill(c.theme.Base())
	return root
}

// End presents the frame
func (c *Canvas) End() {
	c.screen.Show()
}

// Theme returns the canvas theme
func (c *Canvas) Theme() Theme {
	return c.theme
}

// Size returns the screen dimensions
func (c *Canvas) Size() (int, int) {
	return c.screen.Size()
}
