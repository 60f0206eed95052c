package buffer

// Selection is the caret plus the selection anchor.
//
// A selection exists iff Caret != Anchor. The caret is the moving end; the
// anchor stays fixed while the selection is extended.
type Selection struct {
	caret  int
	anchor int
}

func (s Selection) Caret() int { return s.caret }

func (s Selection) Anchor() int { return s.anchor }

// Active reports whether a non-empty selection exists.
func (s Selection) Active() bool { return s.caret != s.anchor }

// Range returns the selected span in document order.
func (s Selection) Range() Range {
	return NormalizeRange(Range{Start: s.anchor, End: s.caret})
}

// MoveTo places the caret at index. Without withSelection the anchor
// follows, collapsing any selection.
//
// MoveTo does not clamp; callers must pass an index valid for the buffer.
func (s *Selection) MoveTo(index int, withSelection bool) {
	if !withSelection {
		s.anchor = index
	}
	s.caret = index
}

// Clamp keeps both ends within [0, n] after the text changed underneath.
func (s *Selection) Clamp(n int) {
	s.caret = Clamp(s.caret, 0, n)
	s.anchor = Clamp(s.anchor, 0, n)
}
