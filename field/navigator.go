package field

import (
	"github.com/iw2rmb/inputfield/buffer"
	"github.com/iw2rmb/inputfield/layout"
)

// Navigator resolves relative caret moves into absolute buffer indices.
//
// Line moves query the layout of the full text, which must be populated with
// the current buffer content.
type Navigator struct {
	buf    *buffer.Buffer
	sel    *buffer.Selection
	layout layout.Provider

	onMove func(buffer.Selection)
}

func NewNavigator(buf *buffer.Buffer, sel *buffer.Selection, l layout.Provider) *Navigator {
	return &Navigator{buf: buf, sel: sel, layout: l}
}

// OnMove registers fn to observe every caret placement, including the
// intermediate ones of multi-step commands such as select-all.
func (n *Navigator) OnMove(fn func(buffer.Selection)) { n.onMove = fn }

func (n *Navigator) Buffer() *buffer.Buffer { return n.buf }

func (n *Navigator) Selection() buffer.Selection { return *n.sel }

func (n *Navigator) Caret() int { return n.sel.Caret() }

// MoveTo clamps index into [0, Len] and places the caret there.
func (n *Navigator) MoveTo(index int, withSelection bool) {
	index = buffer.Clamp(index, 0, n.buf.Len())
	n.sel.MoveTo(index, withSelection)
	if n.onMove != nil {
		n.onMove(*n.sel)
	}
}

func (n *Navigator) MoveLeft(withSelection bool) {
	n.MoveTo(n.sel.Caret()-1, withSelection)
}

func (n *Navigator) MoveRight(withSelection bool) {
	n.MoveTo(n.sel.Caret()+1, withSelection)
}

func (n *Navigator) MoveHome(withSelection bool) {
	n.MoveTo(0, withSelection)
}

func (n *Navigator) MoveEnd(withSelection bool) {
	n.MoveTo(n.buf.Len(), withSelection)
}

// MoveLineUp moves to the line above, keeping the horizontal position.
// On the first line goToEdge snaps to the buffer start; otherwise the caret
// stays put.
func (n *Navigator) MoveLineUp(goToEdge, withSelection bool) {
	n.MoveTo(n.lineUpIndex(goToEdge, n.sel.Caret()), withSelection)
}

// MoveLineDown moves to the line below, keeping the horizontal position.
// On the last line goToEdge snaps to the buffer end; otherwise the caret
// stays put.
func (n *Navigator) MoveLineDown(goToEdge, withSelection bool) {
	n.MoveTo(n.lineDownIndex(goToEdge, n.sel.Caret()), withSelection)
}

func (n *Navigator) lineDownIndex(goToEdge bool, index int) int {
	l := n.layout
	cur := l.LineOfChar(index)
	if cur >= l.LineCount()-1 {
		if goToEdge {
			return n.buf.Len()
		}
		return index
	}

	x := l.CursorPosition(index).X
	next := cur + 1
	last := lastCaretIndex(l, next)
	for i := l.LineStart(next); i < last; i++ {
		if l.CursorPosition(i).X >= x {
			return i
		}
	}
	return last
}

func (n *Navigator) lineUpIndex(goToEdge bool, index int) int {
	l := n.layout
	cur := l.LineOfChar(index)
	if cur <= 0 {
		if goToEdge {
			return 0
		}
		return index
	}

	x := l.CursorPosition(index).X
	prev := cur - 1
	begin := l.LineStart(prev)
	for i := lastCaretIndex(l, prev); i > begin; i-- {
		if l.CursorPosition(i).X <= x {
			return i
		}
	}
	return begin
}

// lastCaretIndex is the rightmost caret index that still renders on line.
// A soft-wrapped line ends where the next line starts, and that index
// belongs to the next line.
func lastCaretIndex(l layout.Provider, line int) int {
	end := l.LineEnd(line)
	if line+1 < l.LineCount() && end >= l.LineStart(line+1) && end > l.LineStart(line) {
		end--
	}
	return end
}
