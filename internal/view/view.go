// Package view shows a stack tree in a terminal and lets the user poke at it.
package view

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	stack "github.com/grindlemire/go-stack"
	"github.com/grindlemire/go-stack/internal/canvas"
	"github.com/grindlemire/go-stack/internal/debug"
)

// Help is shown in the status line when nothing went wrong.
const Help = "q quit  r reload  1-9 toggle"

// layerColors cycles by tree depth so nesting is visible.
var layerColors = []tcell.Color{
	tcell.ColorSilver,
	tcell.ColorAqua,
	tcell.ColorYellow,
	tcell.ColorLime,
	tcell.ColorFuchsia,
	tcell.ColorOrange,
}

// reloadEvent asks the event loop to call load again.
type reloadEvent struct {
	tcell.EventTime
}

// quitEvent stops the event loop.
type quitEvent struct {
	tcell.EventTime
}

// Viewer lays a tree out to the screen size and redraws it on resize,
// reload, and visibility toggles. The bottom row is a status line.
type Viewer struct {
	screen tcell.Screen
	load   func() (*stack.Node, error)
	root   *stack.Node
	err    error
}

// New creates a viewer drawing to screen. load is called at start and on
// every reload. The caller owns the screen's Init and Fini.
func New(screen tcell.Screen, load func() (*stack.Node, error)) *Viewer {
	return &Viewer{screen: screen, load: load}
}

// Root returns the tree currently shown, or nil if none has loaded.
func (v *Viewer) Root() *stack.Node {
	return v.root
}

// Err returns the error from the most recent load, if any.
func (v *Viewer) Err() error {
	return v.err
}

// Reload asks a running viewer to load the tree again. It is safe to call
// from any goroutine.
func (v *Viewer) Reload() {
	ev := &reloadEvent{}
	ev.SetEventNow()
	if err := v.screen.PostEvent(ev); err != nil {
		debug.Log("view: reload dropped: %v", err)
	}
}

// Run loads the tree, draws it, and handles events until the user quits,
// the screen is finalized, or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			ev := &quitEvent{}
			ev.SetEventNow()
			_ = v.screen.PostEvent(ev) // best-effort; the loop may already be gone
		case <-done:
		}
	}()

	v.reload()
	v.Draw()

	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if v.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent applies one event and redraws if needed. It reports whether
// the viewer should stop.
func (v *Viewer) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		debug.Log("view: resize %dx%d", w, h)
		v.screen.Sync()
		v.Draw()

	case *tcell.EventKey:
		return v.handleKey(ev)

	case *reloadEvent:
		v.reload()
		v.Draw()

	case *quitEvent:
		return true
	}
	return false
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return true
	case r == 'r':
		v.reload()
		v.Draw()
	case r >= '1' && r <= '9':
		v.toggle(int(r - '1'))
		v.Draw()
	}
	return false
}

// toggle flips the visibility of the root's i-th child.
func (v *Viewer) toggle(i int) {
	if v.root == nil {
		return
	}
	children := v.root.Children()
	if i >= len(children) {
		return
	}
	child := children[i]
	child.SetVisible(!child.Visible())
	debug.Log("view: %s visible=%v", child.Path(), child.Visible())
}

// reload replaces the tree. On error the previous tree stays on screen.
func (v *Viewer) reload() {
	root, err := v.load()
	v.err = err
	if err != nil {
		debug.Log("view: load failed: %v", err)
		return
	}
	v.root = root
	debug.Log("view: loaded %s", root.Path())
}

// Draw lays the tree out to the current screen size and shows it.
func (v *Viewer) Draw() {
	w, h := v.screen.Size()
	c := canvas.New(w, h)
	if v.root != nil {
		stack.Calculate(v.root, w, h-1)
		canvas.DrawTree(c, v.root)
	}
	c.SetString(0, h-1, v.status(), 0, c.Rect())

	v.screen.Clear()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			cell := c.Cell(x, y)
			if cell.IsContinuation() {
				continue
			}
			style := tcell.StyleDefault.Foreground(layerColors[cell.Layer%len(layerColors)])
			v.screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	v.screen.Show()
}

func (v *Viewer) status() string {
	if v.err != nil {
		return fmt.Sprintf("error: %v", v.err)
	}
	return Help
}
