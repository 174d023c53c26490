package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"

	"github.com/lixenwraith/scrollframe/anim"
	"github.com/lixenwraith/scrollframe/config"
	"github.com/lixenwraith/scrollframe/core"
	"github.com/lixenwraith/scrollframe/event"
	"github.com/lixenwraith/scrollframe/frame"
	"github.com/lixenwraith/scrollframe/input"
	"github.com/lixenwraith/scrollframe/render"
	"github.com/lixenwraith/scrollframe/view"
)

const (
	sidebarWidth = 24
	shelfHeight  = 3
	listSections = 8
	sectionItems = 4
	shelfTiles   = 24
	tileWidth    = 12
)

// soundSink is the part of audio.SoundManager the demo drives
type soundSink interface {
	view.SoundPlayer
	ToggleMute() bool
}

// sidebar is a vertical box with its own focus sound
type sidebar struct {
	view.Box
}

func newSidebar() *sidebar {
	s := &sidebar{Box: *view.NewBox(core.Vertical)}
	s.Init(s)
	return s
}

func (s *sidebar) FocusSound() core.SoundType { return core.SoundFocusSidebar }

// demo owns the view tree and maps intents onto it
type demo struct {
	tree    *view.Tree
	runner  *anim.Runner
	machine *input.Machine
	sounds  soundSink
	theme   render.Theme
	log     logr.Logger
	typeSub *event.Subscription

	root   *view.Box
	body   *view.Box
	status *view.Label
	list   *frame.Frame
	shelf  *frame.Frame
	side   *sidebar

	actions map[view.View]func()
	muted   bool
}

func newDemo(cfg *config.Config, sounds soundSink, log logr.Logger) *demo {
	d := &demo{
		runner:  anim.NewRunner(),
		machine: input.NewMachine(),
		sounds:  sounds,
		theme:   render.DefaultTheme,
		log:     log,
		actions: make(map[view.View]func()),
	}
	d.machine.SetKeyTable(cfg.KeyTable())
	d.machine.SetRepeatWindow(cfg.Input.RepeatWindow)
	d.typeSub = d.machine.InputTypeChanged().Subscribe(func(t input.Type) {
		d.log.V(1).Info("input type changed", "type", t.String())
	})

	d.list = d.newFrame(cfg, "list",
		frame.WithOrientation(cfg.Orientation()),
		frame.WithBehavior(cfg.Behavior()))
	d.list.SetPadding(cfg.Padding())
	d.list.SetContentView(d.buildList(cfg.Orientation()))

	d.shelf = d.newFrame(cfg, "shelf",
		frame.WithOrientation(core.Horizontal),
		frame.WithBehavior(frame.BehaviorCentered))
	d.shelf.SetContentView(d.buildShelf())

	d.side = d.buildSidebar()

	d.body = view.NewBox(core.Horizontal)
	d.body.ID = "body"
	d.body.AddView(d.list)
	d.body.AddView(d.side)

	header := view.NewLabel(" scrollframe demo")
	header.ID = "header"
	header.SetStyle(d.theme.Header(), d.theme.Header())

	d.status = view.NewLabel("")
	d.status.ID = "status"
	d.status.SetStyle(d.theme.Hint(), d.theme.Hint())

	d.root = view.NewBox(core.Vertical)
	d.root.ID = "root"
	d.root.AddView(header)
	d.root.AddView(d.body)
	d.root.AddView(d.shelf)
	d.root.AddView(d.status)

	d.tree = view.NewTree(d.root,
		view.WithRunner(d.runner),
		view.WithSoundPlayer(sounds),
		view.WithLogger(log.WithName("tree")))
	return d
}

func (d *demo) newFrame(cfg *config.Config, name string, opts ...frame.Option) *frame.Frame {
	all := append(cfg.FrameOptions(),
		frame.WithRunner(d.runner),
		frame.WithInputTypes(d.machine.InputTypeChanged(), d.machine.InputType()),
		frame.WithLogger(d.log.WithName(name)))
	f := frame.New(append(all, opts...)...)
	f.ID = name
	f.SetIndicatorStyle(d.theme.IndicatorStyle())
	return f
}

// buildList stacks sections of a non-focusable header, a note and focusable items
func (d *demo) buildList(axis core.Orientation) view.View {
	content := view.NewBox(axis)
	content.ID = "list-content"
	content.SetSpacing(1)
	for s := 0; s < listSections; s++ {
		title := view.NewLabel(fmt.Sprintf("Section %d", s+1))
		title.ID = fmt.Sprintf("section-%d", s+1)
		title.SetStyle(d.theme.Hint(), d.theme.Hint())
		content.AddView(title)

		if s%2 == 1 {
			note := view.NewLabel("Long note, scrolled through without moving focus")
			note.ID = fmt.Sprintf("note-%d", s+1)
			note.SetHeight(6)
			note.SetStyle(d.theme.Panel(), d.theme.Panel())
			content.AddView(note)
		}

		for i := 0; i < sectionItems; i++ {
			item := view.NewButton(fmt.Sprintf("Item %d.%d", s+1, i+1))
			item.ID = fmt.Sprintf("item-%d-%d", s+1, i+1)
			content.AddView(item)
		}
	}
	return content
}

func (d *demo) buildShelf() view.View {
	content := view.NewBox(core.Horizontal)
	content.ID = "shelf-content"
	content.SetSpacing(1)
	for i := 0; i < shelfTiles; i++ {
		tile := view.NewButton(fmt.Sprintf("Tile %02d", i+1))
		tile.ID = fmt.Sprintf("tile-%d", i+1)
		tile.SetWidth(tileWidth)
		content.AddView(tile)
	}
	return content
}

func (d *demo) buildSidebar() *sidebar {
	s := newSidebar()
	s.ID = "sidebar"
	s.SetWidth(sidebarWidth)
	s.SetPadding(core.Insets{Top: 1, Left: 1, Right: 1})
	s.SetSpacing(1)
	s.SetBackground(d.theme.Panel())

	buttons := []struct {
		id, text string
		action   func()
	}{
		{"toggle-indicator", "Indicator", d.toggleIndicator},
		{"toggle-behavior", "Behavior", d.toggleBehavior},
		{"toggle-mute", "Mute", d.toggleMute},
	}
	for _, b := range buttons {
		btn := view.NewButton(b.text)
		btn.ID = b.id
		s.AddView(btn)
		d.actions[btn] = b.action
	}
	return s
}

// resize lays the screen out: header, body (list + sidebar), shelf, status
func (d *demo) resize(w, h int) {
	d.tree.Resize(float64(w), float64(h))
	d.body.SetHeight(max(0, float64(h-2-shelfHeight)))
	d.list.SetWidth(max(0, float64(w-sidebarWidth)))
	d.shelf.SetHeight(shelfHeight)
}

// start shows the tree, focusing the list's default target
func (d *demo) start(w, h int) {
	d.resize(w, h)
	d.tree.Appear()
	d.refreshStatus()
}

// handle processes one terminal event, returns true when the demo should quit
func (d *demo) handle(ev tcell.Event) bool {
	in := d.machine.Process(ev)
	if in == nil {
		return false
	}
	if in.Type == input.IntentResize {
		if rs, ok := ev.(*tcell.EventResize); ok {
			d.resize(rs.Size())
		}
		return false
	}
	return d.apply(in)
}

// apply runs an intent against the tree
func (d *demo) apply(in *input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return true
	case input.IntentNavigate:
		out := d.tree.Navigate(in.Direction, in.Repeat)
		d.log.V(2).Info("navigate", "dir", in.Direction.String(), "repeat", in.Repeat, "outcome", out.String())
	case input.IntentActivate:
		d.activate(d.tree.Focus())
	case input.IntentWheel:
		if f := frameAt(d.tree.ViewAt(float64(in.X), float64(in.Y))); f != nil {
			f.ScrollBy(float64(in.Delta)*f.NavConstants(input.TypePointer).Step, true)
		}
	case input.IntentClick:
		v := d.tree.ViewAt(float64(in.X), float64(in.Y))
		if v != nil && v.Node().Focusable() && d.tree.GiveFocus(v) {
			d.activate(v)
		}
	case input.IntentToggleIndicator:
		d.toggleIndicator()
	case input.IntentToggleBehavior:
		d.toggleBehavior()
	case input.IntentToggleMute:
		d.toggleMute()
	}
	return false
}

func (d *demo) activate(v view.View) {
	if v == nil {
		return
	}
	d.sounds.Play(core.SoundClick)
	if action, ok := d.actions[v]; ok {
		action()
	}
	d.log.V(1).Info("activate", "view", v.Node().ID)
}

func (d *demo) toggleIndicator() {
	for _, f := range []*frame.Frame{d.list, d.shelf} {
		f.SetScrollingIndicatorVisible(!f.ScrollingIndicatorVisible())
	}
}

func (d *demo) toggleBehavior() {
	next := frame.BehaviorCentered
	if d.list.ScrollingBehavior() == frame.BehaviorCentered {
		next = frame.BehaviorNatural
	}
	d.list.SetScrollingBehavior(next)
}

func (d *demo) toggleMute() {
	d.muted = d.sounds.ToggleMute()
}

// step advances one tick: animations, layout, draw
func (d *demo) step(c *render.Canvas, dt time.Duration) {
	d.refreshStatus()
	d.tree.Frame(dt, c.Begin())
	c.End()
}

func (d *demo) refreshStatus() {
	focus := "-"
	if v := d.tree.Focus(); v != nil {
		focus = v.Node().ID
	}
	mute := ""
	if d.muted {
		mute = "  [muted]"
	}
	text := fmt.Sprintf(" %s  %s/%s  offset %.1f  input %s  focus %s%s",
		d.list.NaturalState(), d.list.ScrollingBehavior(), d.list.Orientation(),
		d.list.ContentOffset(), d.machine.InputType(), focus, mute)
	if text != d.status.Text() {
		d.status.SetText(text)
	}
}

func (d *demo) close() {
	d.typeSub.Release()
	d.list.Close()
	d.shelf.Close()
}

// frameAt returns the innermost frame containing v
func frameAt(v view.View) *frame.Frame {
	for cur := v; cur != nil; cur = cur.Node().Parent() {
		if f, ok := cur.(*frame.Frame); ok {
			return f
		}
	}
	return nil
}
