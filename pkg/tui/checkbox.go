package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/petrijr/vinculo/internal/notify"
	"github.com/petrijr/vinculo/pkg/observe"
)

// Checkbox is a toggleable widget rendering as [X] Label or [ ] Label.
// Its checked state lives in an observe.Value holding a bool.
type Checkbox struct {
	BaseWidget

	Label        string
	Style        tcell.Style
	FocusedStyle tcell.Style

	checked *observe.Value
	actions notify.Hub[func()]
}

// NewCheckbox creates an unchecked, focusable checkbox.
func NewCheckbox(label string) *Checkbox {
	c := &Checkbox{
		Label:        label,
		checked:      observe.NewValue(false),
		Style:        tcell.StyleDefault,
		FocusedStyle: tcell.StyleDefault.Reverse(true),
	}
	c.SetFocusable(true)
	return c
}

// CheckedProperty returns the checked state as an observable value for
// binding.
func (c *Checkbox) CheckedProperty() *observe.Value { return c.checked }

// Checked reports the current state.
func (c *Checkbox) Checked() bool {
	v, _ := observe.Get[bool](c.checked)
	return v
}

// SetChecked stores the state without firing action listeners. Bindings use
// the observable directly and see the change either way.
func (c *Checkbox) SetChecked(checked bool) { c.checked.Set(checked) }

// Toggle flips the state and fires action listeners, exactly as a key press
// does.
func (c *Checkbox) Toggle() {
	c.checked.Set(!c.Checked())
	c.fireAction()
}

// AddActionListener registers fn to run on every user toggle.
func (c *Checkbox) AddActionListener(fn func()) observe.Subscription {
	if fn == nil {
		return observe.NoopSubscription()
	}
	return observe.NewSubscription(c.actions.Add(fn))
}

func (c *Checkbox) fireAction() {
	for _, fn := range c.actions.Snapshot() {
		fn()
	}
}

// HandleKey toggles on space or enter.
func (c *Checkbox) HandleKey(ev *tcell.EventKey) bool {
	if ev.Rune() == ' ' || ev.Key() == tcell.KeyEnter {
		c.Toggle()
		return true
	}
	return false
}

func (c *Checkbox) Draw(screen tcell.Screen) {
	x, y, w, _ := c.Rect()
	if w <= 0 {
		return
	}

	style := c.Style
	if c.Focused() {
		style = c.FocusedStyle
	}

	box := "[ ] "
	if c.Checked() {
		box = "[X] "
	}
	drawText(screen, x, y, w, style, box+c.Label)
}
