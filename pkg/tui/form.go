package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type formRow struct {
	label  string
	widget Widget
}

// refreshEvent asks the running loop for a redraw without any input.
type refreshEvent struct {
	tcell.EventTime
}

// Form lays out captioned widgets in vertical rows and drives a tcell event
// loop over them.
//
// Key routing follows form-style data entry: the focused widget sees every
// key first; unconsumed Tab/Down and Shift-Tab/Up cycle focus; Esc and
// Ctrl-C stop the loop.
type Form struct {
	// AdvanceFocusOnEnter moves focus to the next focusable widget after
	// the focused widget handled an Enter. On by default.
	AdvanceFocusOnEnter bool

	// LabelStyle renders the row captions.
	LabelStyle tcell.Style

	screen     tcell.Screen
	rows       []formRow
	focus      int // row index of the focused widget, -1 when none
	labelWidth int
	stopped    bool
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{
		AdvanceFocusOnEnter: true,
		LabelStyle:          tcell.StyleDefault,
		focus:               -1,
	}
}

// AddRow appends a captioned widget row. The first focusable widget added
// receives focus.
func (f *Form) AddRow(label string, w Widget) {
	f.rows = append(f.rows, formRow{label: label, widget: w})
	if lw := runewidth.StringWidth(label); lw > f.labelWidth {
		f.labelWidth = lw
	}
	if f.focus < 0 && w.Focusable() {
		f.focus = len(f.rows) - 1
		w.SetFocused(true)
	}
}

// FocusedWidget returns the widget currently holding focus, or nil.
func (f *Form) FocusedWidget() Widget {
	if f.focus < 0 || f.focus >= len(f.rows) {
		return nil
	}
	return f.rows[f.focus].widget
}

// CycleFocus moves focus to the next focusable widget in the given
// direction, wrapping around. It reports whether a focusable widget was
// found.
func (f *Form) CycleFocus(forward bool) bool {
	n := len(f.rows)
	if n == 0 {
		return false
	}
	step := 1
	if !forward {
		step = -1
	}
	idx := f.focus
	for i := 0; i < n; i++ {
		idx = ((idx+step)%n + n) % n
		if f.rows[idx].widget.Focusable() {
			f.setFocus(idx)
			return true
		}
	}
	return false
}

func (f *Form) setFocus(idx int) {
	if f.focus == idx {
		return
	}
	if w := f.FocusedWidget(); w != nil {
		w.SetFocused(false)
	}
	f.focus = idx
	f.rows[idx].widget.SetFocused(true)
}

// HandleKey routes ev to the focused widget first, then applies the form's
// focus and exit keys. It reports whether the event was consumed.
func (f *Form) HandleKey(ev *tcell.EventKey) bool {
	if w := f.FocusedWidget(); w != nil && w.HandleKey(ev) {
		if f.AdvanceFocusOnEnter && ev.Key() == tcell.KeyEnter {
			f.CycleFocus(true)
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		return f.CycleFocus(true)
	case tcell.KeyBacktab, tcell.KeyUp:
		return f.CycleFocus(false)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		f.Stop()
		return true
	}
	return false
}

// Run creates a real terminal screen and drives the event loop until Stop,
// Esc, or Ctrl-C. It owns the screen for the duration of the call.
func (f *Form) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	defer screen.Fini()
	return f.RunWithScreen(screen)
}

// RunWithScreen drives the event loop on a caller-provided screen. The
// caller keeps ownership of the screen; tests pass a tcell simulation
// screen and inject events into it.
func (f *Form) RunWithScreen(screen tcell.Screen) error {
	f.screen = screen
	f.stopped = false
	f.draw()

	for !f.stopped {
		ev := f.screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			f.HandleKey(ev)
		case *tcell.EventResize:
			f.screen.Sync()
		case *refreshEvent:
			// redraw below, nothing else
		}
		f.draw()
	}
	return nil
}

// Stop makes the running loop exit after the current event.
func (f *Form) Stop() { f.stopped = true }

// Refresh posts a redraw request into the event loop. It is safe to call
// from any goroutine and is the way to repaint after changing the model
// from outside the loop. A full event queue drops the request; the next
// input repaints anyway.
func (f *Form) Refresh() {
	if f.screen == nil {
		return
	}
	ev := &refreshEvent{}
	ev.SetEventNow()
	_ = f.screen.PostEvent(ev)
}

func (f *Form) layout() {
	width, _ := f.screen.Size()
	wx := f.labelWidth + 2
	ww := width - wx
	for i, row := range f.rows {
		row.widget.SetRect(wx, i, ww, 1)
	}
}

func (f *Form) draw() {
	f.screen.Clear()
	f.screen.HideCursor()
	f.layout()
	for i, row := range f.rows {
		drawText(f.screen, 0, i, f.labelWidth, f.LabelStyle, row.label)
		row.widget.Draw(f.screen)
	}
	f.screen.Show()
}
