package field

import (
	"math"

	"github.com/iw2rmb/inputfield/buffer"
	"github.com/iw2rmb/inputfield/layout"
)

// Geometry functions take a layout of the display text and indices local to
// it. n is the display text length.

// SingleLineRect returns the caret or selection highlight of a single-line
// field. A collapsed selection yields a caret one unit wide.
func SingleLineRect(l layout.Provider, n, caret, anchor int) layout.Rect {
	caret = buffer.Clamp(caret, 0, n)
	anchor = buffer.Clamp(anchor, 0, n)

	x0 := l.CursorPosition(min(caret, anchor)).X
	x1 := l.CursorPosition(max(caret, anchor)).X
	w := x1 - x0
	if caret == anchor {
		w = 1
	}
	return layout.Rect{X: x0, Y: l.LineTop(0), W: w, H: l.LineHeight(0)}
}

// MultiLineCaretRect returns the caret rectangle: one unit wide and as tall
// as the caret's line.
func MultiLineCaretRect(l layout.Provider, n, caret int) layout.Rect {
	caret = buffer.Clamp(caret, 0, n)
	p := l.CursorPosition(caret)
	return layout.Rect{X: p.X, Y: p.Y, W: 1, H: l.LineHeight(l.LineOfChar(caret))}
}

// MultiLineSelectionRects returns one highlight rectangle per line touched
// by the selection between caret and anchor, top to bottom.
func MultiLineSelectionRects(l layout.Provider, n, caret, anchor int) []layout.Rect {
	s := buffer.Clamp(min(caret, anchor), 0, n)
	e := buffer.Clamp(max(caret, anchor), 0, n)

	first, last := l.LineOfChar(s), l.LineOfChar(e)
	if first == last {
		return []layout.Rect{spanRect(l, first, s, e)}
	}

	rects := make([]layout.Rect, 0, last-first+1)
	rects = append(rects, spanRect(l, first, s, l.LineEnd(first)))
	for line := first + 1; line < last; line++ {
		rects = append(rects, spanRect(l, line, l.LineStart(line), l.LineEnd(line)))
	}
	rects = append(rects, spanRect(l, last, l.LineStart(last), e))
	return rects
}

// spanRect covers [start, end] on line: the width includes the rune at end,
// so a caret parked at the end of the span stays inside the highlight.
func spanRect(l layout.Provider, line, start, end int) layout.Rect {
	p0 := l.CursorPosition(start)
	x1 := l.CursorPosition(end).X + l.CharWidth(end)
	// The end of a soft-wrapped line reports the next line's position.
	if l.LineOfChar(end) != line {
		x1 = p0.X
		for i := start; i < end; i++ {
			x1 += l.CharWidth(i)
		}
	}
	return layout.Rect{
		X: p0.X,
		Y: l.LineTop(line),
		W: math.Abs(x1 - p0.X),
		H: l.LineHeight(line),
	}
}
