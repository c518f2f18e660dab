package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/petrijr/vinculo/pkg/observe"
)

// Label is a read-only line of text backed by an observable value, which
// makes it a forward-only binding target. Non-string content written through
// the observable renders via fmt.Sprint.
type Label struct {
	BaseWidget

	Style tcell.Style

	text *observe.Value
}

// NewLabel creates a non-focusable label showing text.
func NewLabel(text string) *Label {
	return &Label{
		Style: tcell.StyleDefault,
		text:  observe.NewValue(text),
	}
}

// TextProperty returns the label's content as an observable value for
// binding.
func (l *Label) TextProperty() *observe.Value { return l.text }

// Text returns the rendered content.
func (l *Label) Text() string {
	v := l.text.Get()
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// SetText replaces the content.
func (l *Label) SetText(text string) { l.text.Set(text) }

func (l *Label) Draw(screen tcell.Screen) {
	x, y, w, _ := l.Rect()
	if w <= 0 {
		return
	}
	drawText(screen, x, y, w, l.Style, l.Text())
}
