package buffer

// Buffer is the mutable text content of an input field.
//
// All mutation is synchronous and immediately reflected in subsequent reads.
type Buffer struct {
	text    []rune
	version uint64
}

func New(text string) *Buffer {
	return &Buffer{text: []rune(text)}
}

func (b *Buffer) Text() string { return string(b.text) }

func (b *Buffer) Len() int { return len(b.text) }

// Version increases on every effective text mutation.
func (b *Buffer) Version() uint64 { return b.version }

// At returns the rune at index i, or 0 when i is out of bounds.
func (b *Buffer) At(i int) rune {
	if i < 0 || i >= len(b.text) {
		return 0
	}
	return b.text[i]
}

// Slice returns the text in [start, end). Bounds are clamped.
func (b *Buffer) Slice(start, end int) string {
	r := NormalizeRange(ClampRange(Range{Start: start, End: end}, len(b.text)))
	if r.IsEmpty() {
		return ""
	}
	return string(b.text[r.Start:r.End])
}

// SliceRange is Slice for a Range.
func (b *Buffer) SliceRange(r Range) string {
	return b.Slice(r.Start, r.End)
}

// Reset replaces the whole content.
func (b *Buffer) Reset(text string) {
	next := []rune(text)
	if string(next) == string(b.text) {
		return
	}
	b.text = next
	b.version++
}

func (b *Buffer) String() string { return string(b.text) }
