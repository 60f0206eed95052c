package tui

import (
	"github.com/iw2rmb/inputfield/buffer"
	"github.com/iw2rmb/inputfield/field"
)

// ChangeEvent reports the field state after an edit or caret move.
type ChangeEvent struct {
	Version uint64
	Caret   int
	Anchor  int

	Selection struct {
		Range  buffer.Range
		Active bool
	}

	Text string
	// Display is the visible part of Text.
	Display string
}

func buildChangeEvent(f *field.Field) ChangeEvent {
	sel := f.Selection()
	ev := ChangeEvent{
		Version: f.Version(),
		Caret:   sel.Caret(),
		Anchor:  sel.Anchor(),
		Text:    f.Text(),
		Display: f.DisplayText(),
	}
	ev.Selection.Active = sel.Active()
	ev.Selection.Range = sel.Range()
	return ev
}
