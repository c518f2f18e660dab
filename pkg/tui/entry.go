package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/petrijr/vinculo/internal/notify"
	"github.com/petrijr/vinculo/pkg/observe"
)

// Entry is a single-line text input. Its content lives in an observe.Value
// holding a string, so an Entry is directly usable as a binding target.
//
// Enter fires the entry's action listeners, which is what an action-gated
// binding subscribes to: keystrokes edit the observable text, and only the
// submit commits it to the model.
type Entry struct {
	BaseWidget

	Style        tcell.Style
	FocusedStyle tcell.Style

	text    *observe.Value
	cursor  int // rune index into the text
	scroll  int // first visible rune index
	actions notify.Hub[func()]
}

// NewEntry returns an empty, focusable entry.
func NewEntry() *Entry {
	e := &Entry{
		text:         observe.NewValue(""),
		Style:        tcell.StyleDefault,
		FocusedStyle: tcell.StyleDefault.Reverse(true),
	}
	e.SetFocusable(true)
	// A binding's forward sync can replace the text under the cursor.
	e.text.AddListener(e.clampCursor)
	return e
}

// TextProperty returns the entry's text as an observable value for binding.
func (e *Entry) TextProperty() *observe.Value { return e.text }

// Text returns the current text. Non-string content written through the
// observable reads as empty.
func (e *Entry) Text() string {
	s, _ := observe.Get[string](e.text)
	return s
}

// SetText replaces the content and places the cursor at its end.
func (e *Entry) SetText(s string) {
	e.text.Set(s)
	e.cursor = len([]rune(s))
	if e.scroll > e.cursor {
		e.scroll = e.cursor
	}
}

// AddActionListener registers fn to run on every Enter press.
func (e *Entry) AddActionListener(fn func()) observe.Subscription {
	if fn == nil {
		return observe.NoopSubscription()
	}
	return observe.NewSubscription(e.actions.Add(fn))
}

func (e *Entry) fireAction() {
	for _, fn := range e.actions.Snapshot() {
		fn()
	}
}

func (e *Entry) runes() []rune { return []rune(e.Text()) }

// clampCursor keeps cursor and scroll inside the text after external writes.
func (e *Entry) clampCursor() {
	if n := len(e.runes()); e.cursor > n {
		e.cursor = n
	}
	if e.scroll > e.cursor {
		e.scroll = e.cursor
	}
}

func (e *Entry) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		e.fireAction()
		return true
	case tcell.KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}
		return true
	case tcell.KeyRight:
		if e.cursor < len(e.runes()) {
			e.cursor++
		}
		return true
	case tcell.KeyHome:
		e.cursor = 0
		return true
	case tcell.KeyEnd:
		e.cursor = len(e.runes())
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.deleteBackward()
		return true
	case tcell.KeyDelete:
		e.deleteForward()
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return false
		}
		e.insertRune(ev.Rune())
		return true
	}
	return false
}

func (e *Entry) insertRune(r rune) {
	if r == 0 {
		return
	}
	rs := e.runes()
	out := make([]rune, 0, len(rs)+1)
	out = append(out, rs[:e.cursor]...)
	out = append(out, r)
	out = append(out, rs[e.cursor:]...)
	e.cursor++
	e.text.Set(string(out))
}

func (e *Entry) deleteBackward() {
	rs := e.runes()
	if e.cursor == 0 || len(rs) == 0 {
		return
	}
	out := append(append([]rune{}, rs[:e.cursor-1]...), rs[e.cursor:]...)
	e.cursor--
	e.text.Set(string(out))
}

func (e *Entry) deleteForward() {
	rs := e.runes()
	if e.cursor >= len(rs) {
		return
	}
	out := append(append([]rune{}, rs[:e.cursor]...), rs[e.cursor+1:]...)
	e.text.Set(string(out))
}

func (e *Entry) Draw(screen tcell.Screen) {
	x, y, w, _ := e.Rect()
	if w <= 0 {
		return
	}

	style := e.Style
	if e.Focused() {
		style = e.FocusedStyle
	}

	e.ensureVisible(w)

	for i := 0; i < w; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}

	rs := e.runes()
	cx := 0
	for i := e.scroll; i < len(rs); i++ {
		rw := runewidth.RuneWidth(rs[i])
		if rw == 0 {
			rw = 1
		}
		if cx+rw > w {
			break
		}
		screen.SetContent(x+cx, y, rs[i], nil, style)
		cx += rw
	}

	if e.Focused() {
		screen.ShowCursor(x+e.cellOffset(e.scroll, e.cursor), y)
	}
}

// ensureVisible scrolls the window so the cursor cell stays inside w cells.
func (e *Entry) ensureVisible(w int) {
	if w <= 0 {
		return
	}
	if e.scroll > e.cursor {
		e.scroll = e.cursor
	}
	for e.cellOffset(e.scroll, e.cursor) >= w {
		e.scroll++
	}
}

// cellOffset returns the display width of the rune range [from, to).
func (e *Entry) cellOffset(from, to int) int {
	rs := e.runes()
	if to > len(rs) {
		to = len(rs)
	}
	if from > to {
		from = to
	}
	return runewidth.StringWidth(string(rs[from:to]))
}
