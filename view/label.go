package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/scrollframe/render"
)

// Label is a single line of text, optionally focusable
// Auto size is the text width by one row; text is centered vertically in taller labels
type Label struct {
	Base

	text       string
	style      tcell.Style
	focusStyle tcell.Style
	pad        int
}

// NewLabel creates a non-focusable label styled with the default theme
func NewLabel(text string) *Label {
	l := &Label{
		text:       text,
		style:      render.DefaultTheme.Base(),
		focusStyle: render.DefaultTheme.Focused(),
	}
	l.Init(l)
	return l
}

// NewButton creates a focusable label with one cell of horizontal padding
func NewButton(text string) *Label {
	l := NewLabel(text)
	l.pad = 1
	l.SetFocusable(true)
	return l
}

// Text returns the label text
func (l *Label) Text() string { return l.text }

// SetText replaces the text, auto width is recomputed on the next layout
func (l *Label) SetText(text string) {
	l.text = text
	if !l.fixedW {
		l.w = 0
	}
	l.Invalidate()
}

// SetStyle sets the normal and focused styles
func (l *Label) SetStyle(normal, focused tcell.Style) {
	l.style = normal
	l.focusStyle = focused
}

// Layout fills in auto dimensions
func (l *Label) Layout() {
	if l.w == 0 {
		l.w = float64(runewidth.StringWidth(l.text) + 2*l.pad)
	}
	if l.h == 0 {
		l.h = 1
	}
}

// Draw renders the label, highlighted while focused
func (l *Label) Draw(r render.Region) {
	style := l.style
	if l.IsFocused() {
		style = l.focusStyle
	}
	cell := r.At(l.Frame())
	if !cell.Visible() {
		return
	}
	cell.Fill(style)
	cell.Text(l.pad, (cell.H-1)/2, l.text, style)
}
