package field

import (
	"github.com/iw2rmb/inputfield/buffer"
	"github.com/iw2rmb/inputfield/layout"
)

// Window is the visible slice [Start, End) of the buffer.
type Window struct {
	Start, End int
}

func (w Window) Len() int { return w.End - w.Start }

// Contains reports whether a caret at index is visible. Both ends count.
func (w Window) Contains(index int) bool {
	return index >= w.Start && index <= w.End
}

func (w Window) clamp(n int) Window {
	w.Start = buffer.Clamp(w.Start, 0, n)
	w.End = buffer.Clamp(w.End, w.Start, n)
	return w
}

// SingleLineWindow recomputes the horizontal window for a text of n runes
// laid out in l, keeping the caret visible within width.
//
// The window only moves when it must: while the caret stays inside, Start is
// kept and End is filled to the width. A caret past End (or at the end of a
// scrolled text) aligns the window's right edge on the caret.
func SingleLineWindow(l layout.Provider, n, caret int, width float64, prev Window) Window {
	caret = buffer.Clamp(caret, 0, n)
	w := prev.clamp(n)

	if caret > w.End || (caret == n && w.Start > 0) {
		return rightAligned(l, caret, width)
	}

	w.Start = min(w.Start, caret)
	w.End = w.Start
	var sum float64
	for w.End < n {
		cw := l.CharWidth(w.End)
		if sum+cw > width {
			break
		}
		sum += cw
		w.End++
	}
	if caret > w.End {
		return rightAligned(l, caret, width)
	}
	return w
}

func rightAligned(l layout.Provider, caret int, width float64) Window {
	w := Window{Start: caret, End: caret}
	var sum float64
	for w.Start > 0 {
		cw := l.CharWidth(w.Start - 1)
		if sum+cw > width {
			break
		}
		sum += cw
		w.Start--
	}
	return w
}

// MultiLineWindow recomputes the vertical window for a text of n runes laid
// out in l. The window always spans whole lines and holds at least the
// caret's line, even when that line alone is taller than height.
func MultiLineWindow(l layout.Provider, n, caret int, height float64, prev Window) Window {
	caret = buffer.Clamp(caret, 0, n)
	w := prev.clamp(n)
	caretLine := l.LineOfChar(caret)

	if caret > w.End {
		return bottomAligned(l, caretLine, height)
	}

	if caret < w.Start {
		w.Start = l.LineStart(caretLine)
	}
	first := l.LineOfChar(w.Start)
	top := l.LineTop(first)
	last := first
	for last+1 < l.LineCount() && lineBottom(l, last+1)-top <= height {
		last++
	}
	first = growUp(l, first, lineBottom(l, last), height)

	if caretLine < first || caretLine > last {
		return bottomAligned(l, caretLine, height)
	}
	return Window{Start: l.LineStart(first), End: l.LineEnd(last)}.clamp(n)
}

func bottomAligned(l layout.Provider, line int, height float64) Window {
	first := growUp(l, line, lineBottom(l, line), height)
	return Window{Start: l.LineStart(first), End: l.LineEnd(line)}
}

// growUp extends first upward while the lines down to bottom fit height.
func growUp(l layout.Provider, first int, bottom, height float64) int {
	for first > 0 && bottom-l.LineTop(first-1) <= height {
		first--
	}
	return first
}

func lineBottom(l layout.Provider, line int) float64 {
	return l.LineTop(line) + l.LineHeight(line)
}
