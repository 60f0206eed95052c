package field

import (
	"testing"

	"github.com/iw2rmb/inputfield/buffer"
	"github.com/iw2rmb/inputfield/layout"
)

func TestNavigator_MoveTo_Clamps(t *testing.T) {
	s := newEditState("abc")

	s.nav.MoveTo(-5, false)
	if s.sel.Caret() != 0 || s.sel.Anchor() != 0 {
		t.Fatalf("caret=%d anchor=%d, want 0/0", s.sel.Caret(), s.sel.Anchor())
	}
	s.nav.MoveTo(99, false)
	if s.sel.Caret() != 3 || s.sel.Anchor() != 3 {
		t.Fatalf("caret=%d anchor=%d, want 3/3", s.sel.Caret(), s.sel.Anchor())
	}
}

func TestNavigator_LeftRightHomeEnd(t *testing.T) {
	s := newEditState("abcd")
	s.nav.MoveTo(2, false)

	s.nav.MoveLeft(true)
	if got, want := s.sel.Range(), (buffer.Range{Start: 1, End: 2}); got != want {
		t.Fatalf("range after shift-left: got %v, want %v", got, want)
	}
	s.nav.MoveEnd(true)
	if got, want := s.sel.Range(), (buffer.Range{Start: 2, End: 4}); got != want {
		t.Fatalf("range after shift-end: got %v, want %v", got, want)
	}
	s.nav.MoveHome(false)
	if s.sel.Active() || s.sel.Caret() != 0 {
		t.Fatalf("caret=%d active=%v, want 0/false", s.sel.Caret(), s.sel.Active())
	}
	s.nav.MoveLeft(false)
	if s.sel.Caret() != 0 {
		t.Fatalf("caret after left at 0: got %d, want 0", s.sel.Caret())
	}
	s.nav.MoveEnd(false)
	s.nav.MoveRight(false)
	if s.sel.Caret() != 4 {
		t.Fatalf("caret after right at end: got %d, want 4", s.sel.Caret())
	}
}

func TestNavigator_LineMovesKeepColumn(t *testing.T) {
	// Lines: [0,3) "abc", [4,9) "defgh", [10,12) "ij".
	s := newEditState("abc\ndefgh\nij")
	s.nav.MoveTo(2, false)

	steps := []struct {
		name string
		move func()
		want int
	}{
		{"down to longer line", func() { s.nav.MoveLineDown(false, false) }, 6},
		{"down to shorter line", func() { s.nav.MoveLineDown(false, false) }, 12},
		{"down on last line", func() { s.nav.MoveLineDown(false, false) }, 12},
		{"up", func() { s.nav.MoveLineUp(false, false) }, 6},
		{"up again", func() { s.nav.MoveLineUp(false, false) }, 2},
		{"up on first line", func() { s.nav.MoveLineUp(false, false) }, 2},
	}
	for _, step := range steps {
		step.move()
		if got := s.sel.Caret(); got != step.want {
			t.Fatalf("%s: caret=%d, want %d", step.name, got, step.want)
		}
	}
}

func TestNavigator_LineMovesGoToEdge(t *testing.T) {
	s := newEditState("abc\ndef")
	s.nav.MoveTo(1, false)

	s.nav.MoveLineUp(true, true)
	if s.sel.Caret() != 0 || s.sel.Anchor() != 1 {
		t.Fatalf("caret=%d anchor=%d, want 0/1", s.sel.Caret(), s.sel.Anchor())
	}

	s.nav.MoveTo(5, false)
	s.nav.MoveLineDown(true, false)
	if s.sel.Caret() != 7 {
		t.Fatalf("caret after down on last line: got %d, want 7", s.sel.Caret())
	}
}

func TestNavigator_LineMovesOverSoftWrap(t *testing.T) {
	// Wrapped at 3 cells: [0,3) "abc", [3,6) "def".
	buf := buffer.New("abcdef")
	var sel buffer.Selection
	l := cellsLayout(buf.Text(), layout.CellsOptions{Wrap: layout.WrapRune}, 3)
	nav := NewNavigator(buf, &sel, l)

	nav.MoveTo(5, false)
	nav.MoveLineUp(false, false)
	if got := sel.Caret(); got != 2 {
		t.Fatalf("caret after up from wrapped line: got %d, want 2", got)
	}
	nav.MoveLineDown(false, false)
	if got := sel.Caret(); got != 5 {
		t.Fatalf("caret after down: got %d, want 5", got)
	}
}

func TestNavigator_OnMoveSeesEveryPlacement(t *testing.T) {
	s := newEditState("abc")
	var seen []int
	s.nav.OnMove(func(sel buffer.Selection) { seen = append(seen, sel.Caret()) })

	s.nav.MoveTo(0, false)
	s.nav.MoveTo(3, true)
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 3 {
		t.Fatalf("moves=%v, want [0 3]", seen)
	}
}
