package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func typeString(t *testing.T, e *Entry, s string) {
	t.Helper()
	for _, r := range s {
		if !e.HandleKey(runeKey(r)) {
			t.Fatalf("entry did not handle rune %q", r)
		}
	}
}

func TestEntryTypingUpdatesObservableText(t *testing.T) {
	e := NewEntry()

	changes := 0
	e.TextProperty().AddListener(func() { changes++ })

	typeString(t, e, "hi!")

	if got := e.Text(); got != "hi!" {
		t.Fatalf("expected text %q, got %q", "hi!", got)
	}
	if changes != 3 {
		t.Fatalf("expected 3 change notifications, got %d", changes)
	}
}

func TestEntryCursorEditing(t *testing.T) {
	e := NewEntry()
	typeString(t, e, "abc")

	e.HandleKey(namedKey(tcell.KeyLeft))
	typeString(t, e, "X")
	if got := e.Text(); got != "abXc" {
		t.Fatalf("expected %q after insert at cursor, got %q", "abXc", got)
	}

	e.HandleKey(namedKey(tcell.KeyHome))
	e.HandleKey(namedKey(tcell.KeyDelete))
	if got := e.Text(); got != "bXc" {
		t.Fatalf("expected %q after delete at home, got %q", "bXc", got)
	}

	e.HandleKey(namedKey(tcell.KeyEnd))
	e.HandleKey(namedKey(tcell.KeyBackspace2))
	if got := e.Text(); got != "bX" {
		t.Fatalf("expected %q after backspace at end, got %q", "bX", got)
	}

	e.HandleKey(namedKey(tcell.KeyBackspace))
	if got := e.Text(); got != "b" {
		t.Fatalf("expected %q after legacy backspace, got %q", "b", got)
	}
}

func TestEntryEditingAtBoundariesIsSafe(t *testing.T) {
	e := NewEntry()

	e.HandleKey(namedKey(tcell.KeyBackspace2))
	e.HandleKey(namedKey(tcell.KeyDelete))
	e.HandleKey(namedKey(tcell.KeyLeft))
	e.HandleKey(namedKey(tcell.KeyRight))
	if got := e.Text(); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}

	typeString(t, e, "ok")
	e.HandleKey(namedKey(tcell.KeyDelete))
	if got := e.Text(); got != "ok" {
		t.Fatalf("expected delete at end to be a no-op, got %q", got)
	}
}

func TestEntryEnterFiresActionListeners(t *testing.T) {
	e := NewEntry()
	typeString(t, e, "go")

	fired := 0
	sub := e.AddActionListener(func() { fired++ })

	if !e.HandleKey(namedKey(tcell.KeyEnter)) {
		t.Fatal("entry did not handle enter")
	}
	if fired != 1 {
		t.Fatalf("expected 1 action, got %d", fired)
	}
	if got := e.Text(); got != "go" {
		t.Fatalf("enter changed the text to %q", got)
	}

	sub.Unsubscribe()
	sub.Unsubscribe()
	e.HandleKey(namedKey(tcell.KeyEnter))
	if fired != 1 {
		t.Fatalf("expected no action after unsubscribe, got %d", fired)
	}
}

func TestEntrySetTextMovesCursorToEnd(t *testing.T) {
	e := NewEntry()
	e.SetText("hello")
	typeString(t, e, "!")
	if got := e.Text(); got != "hello!" {
		t.Fatalf("expected %q, got %q", "hello!", got)
	}
}

func TestEntryExternalWriteClampsCursor(t *testing.T) {
	e := NewEntry()
	e.SetText("hello")

	// A binding's forward sync writes through the observable directly.
	e.TextProperty().Set("hi")

	typeString(t, e, "!")
	if got := e.Text(); got != "hi!" {
		t.Fatalf("expected cursor clamped to new end, got %q", got)
	}
}

func TestEntryIgnoresModifiedRunes(t *testing.T) {
	e := NewEntry()
	ev := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt)
	if e.HandleKey(ev) {
		t.Fatal("entry consumed an alt-modified rune")
	}
	if got := e.Text(); got != "" {
		t.Fatalf("modified rune reached the text: %q", got)
	}
}

func TestEntryDrawScrollsToKeepCursorVisible(t *testing.T) {
	screen := newTestScreen(t, 20, 2)

	e := NewEntry()
	e.SetRect(0, 0, 5, 1)
	e.SetFocused(true)
	e.SetText("abcdefgh")

	e.Draw(screen)
	screen.Show()

	if line := readScreenLine(screen, 0, 0, 5); line != "efgh" {
		t.Fatalf("expected scrolled window %q, got %q", "efgh", line)
	}
	cx, cy, visible := screen.GetCursor()
	if !visible || cx != 4 || cy != 0 {
		t.Fatalf("expected cursor at (4,0), got (%d,%d) visible=%v", cx, cy, visible)
	}
}

func TestEntryDrawUnfocusedShowsNoCursor(t *testing.T) {
	screen := newTestScreen(t, 20, 2)

	e := NewEntry()
	e.SetRect(0, 0, 10, 1)
	e.SetText("abc")

	e.Draw(screen)
	screen.Show()

	if line := readScreenLine(screen, 0, 0, 10); line != "abc" {
		t.Fatalf("expected text %q, got %q", "abc", line)
	}
	if _, _, visible := screen.GetCursor(); visible {
		t.Fatal("unfocused entry showed a cursor")
	}
}
