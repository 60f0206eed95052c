package layout

// Point is a position in display-local coordinates.
type Point struct {
	X, Y float64
}

// Size is a display extent.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle with Y at its top edge.
type Rect struct {
	X, Y, W, H float64
}

// Provider lays out one text and answers metric queries about it.
//
// Indices are rune offsets into the text passed to the last Populate call.
// Queries never panic on out-of-range input: lines are clamped and rune
// queries past the end yield zero widths or the end position.
type Provider interface {
	Populate(text string, extents Size)

	// LineCount is at least 1, even for empty text.
	LineCount() int
	LineStart(line int) int
	// LineEnd is the exclusive end of the line's content; a trailing line
	// break is not part of it. For a soft-wrapped line it equals the next
	// line's start.
	LineEnd(line int) int
	LineHeight(line int) float64
	LineTop(line int) float64

	CharWidth(index int) float64
	CursorPosition(index int) Point
	// LineOfChar returns the last line whose start is <= index.
	LineOfChar(index int) int
	IndexFromLocalPoint(p Point) int
}

// WrapMode controls how lines longer than the display width are broken.
type WrapMode int

const (
	// WrapNone breaks lines only at '\n'.
	WrapNone WrapMode = iota
	// WrapWord breaks after the last whitespace run that fits, falling back
	// to WrapRune for words wider than the display.
	WrapWord
	// WrapRune breaks before the first rune that does not fit.
	WrapRune
)
