// Package tui is a small terminal widget kit built on tcell. Widgets expose
// their state as observable values (pkg/observe), which makes them usable as
// binding targets without any widget-specific glue: an Entry's text, a
// Checkbox's checked flag, and a Label's content are all observe.Values.
//
// Widgets that emit discrete user actions (Entry submit, Button press,
// Checkbox toggle) provide AddActionListener and therefore satisfy the
// binder's ActionSource.
//
// The kit runs single-threaded: Form owns the event loop, and all drawing,
// key handling, and the listener callbacks they trigger run on that
// goroutine. Refresh is the one loop-safe entry point for outsiders.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Widget is the minimal contract for drawable UI elements.
type Widget interface {
	SetRect(x, y, w, h int)
	Rect() (x, y, w, h int)
	Draw(screen tcell.Screen)
	Focusable() bool
	SetFocused(focused bool)
	Focused() bool
	HandleKey(ev *tcell.EventKey) bool
}

// BaseWidget provides common geometry and focus behaviour for widgets.
type BaseWidget struct {
	x, y, w, h int
	focused    bool
	focusable  bool
}

func (b *BaseWidget) SetRect(x, y, w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.x, b.y, b.w, b.h = x, y, w, h
}

func (b *BaseWidget) Rect() (int, int, int, int) { return b.x, b.y, b.w, b.h }

func (b *BaseWidget) Focusable() bool { return b.focusable }

func (b *BaseWidget) SetFocusable(f bool) { b.focusable = f }

func (b *BaseWidget) SetFocused(focused bool) {
	if focused && !b.focusable {
		return
	}
	b.focused = focused
}

func (b *BaseWidget) Focused() bool { return b.focused }

func (b *BaseWidget) HandleKey(ev *tcell.EventKey) bool { return false }

// drawText writes s starting at (x, y), clipped to maxWidth cells, and
// returns the number of cells consumed. Wide runes that would straddle the
// clip edge are dropped whole.
func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, s string) int {
	cx := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			rw = 1
		}
		if cx+rw > maxWidth {
			break
		}
		screen.SetContent(x+cx, y, r, nil, style)
		cx += rw
	}
	return cx
}
