package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scrollframe/core"
)

// Theme defines semantic colors for views
type Theme struct {
	Bg      core.RGB
	Fg      core.RGB
	FocusFg core.RGB
	FocusBg core.RGB
	PanelBg core.RGB

	Indicator core.RGB
	HeaderBg  core.RGB
	HeaderFg  core.RGB
	HintFg    core.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:        core.RGB{R: 20, G: 20, B: 30},
	Fg:        core.RGB{R: 200, G: 200, B: 200},
	FocusFg:   core.RGB{R: 255, G: 255, B: 255},
	FocusBg:   core.RGB{R: 50, G: 90, B: 140},
	PanelBg:   core.RGB{R: 30, G: 35, B: 45},
	Indicator: core.RGB{R: 100, G: 200, B: 220},
	HeaderBg:  core.RGB{R: 40, G: 60, B: 90},
	HeaderFg:  core.RGB{R: 255, G: 255, B: 255},
	HintFg:    core.RGB{R: 100, G: 180, B: 200},
}

// Color converts an RGB triple to a tcell color
func Color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style builds a tcell style from foreground and background
func Style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}

// Base is the default text style
func (t Theme) Base() tcell.Style {
	return Style(t.Fg, t.Bg)
}

// Focused is the style of the focused view
func (t Theme) Focused() tcell.Style {
	return Style(t.FocusFg, t.FocusBg).Bold(true)
}

// Panel is the style for container backgrounds
func (t Theme) Panel() tcell.Style {
	return Style(t.Fg, t.PanelBg)
}

// Header is the style for title bars
func (t Theme) Header() tcell.Style {
	return Style(t.HeaderFg, t.HeaderBg).Bold(true)
}

// Hint is the style for status hints
func (t Theme) Hint() tcell.Style {
	return Style(t.HintFg, t.Bg)
}

// IndicatorStyle is the scroll indicator thumb style
func (t Theme) IndicatorStyle() tcell.Style {
	return Style(t.Indicator, t.Bg.Blend(t.Indicator, 0.8))
}
