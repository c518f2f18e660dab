package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/petrijr/vinculo/internal/notify"
	"github.com/petrijr/vinculo/pkg/observe"
)

// Button is a focusable action trigger rendered as < Label >. It carries no
// observable state of its own; its purpose is firing action listeners, which
// makes it a natural source for action-gated bindings (a Save button that
// commits UI edits into the model).
type Button struct {
	BaseWidget

	Label        string
	Style        tcell.Style
	FocusedStyle tcell.Style

	actions notify.Hub[func()]
}

// NewButton creates a focusable button.
func NewButton(label string) *Button {
	b := &Button{
		Label:        label,
		Style:        tcell.StyleDefault,
		FocusedStyle: tcell.StyleDefault.Reverse(true),
	}
	b.SetFocusable(true)
	return b
}

// AddActionListener registers fn to run on every press.
func (b *Button) AddActionListener(fn func()) observe.Subscription {
	if fn == nil {
		return observe.NoopSubscription()
	}
	return observe.NewSubscription(b.actions.Add(fn))
}

// Press fires the button's action listeners, exactly as a key press does.
func (b *Button) Press() {
	for _, fn := range b.actions.Snapshot() {
		fn()
	}
}

// HandleKey presses the button on space or enter.
func (b *Button) HandleKey(ev *tcell.EventKey) bool {
	if ev.Rune() == ' ' || ev.Key() == tcell.KeyEnter {
		b.Press()
		return true
	}
	return false
}

func (b *Button) Draw(screen tcell.Screen) {
	x, y, w, _ := b.Rect()
	if w <= 0 {
		return
	}

	style := b.Style
	if b.Focused() {
		style = b.FocusedStyle
	}
	drawText(screen, x, y, w, style, "< "+b.Label+" >")
}
