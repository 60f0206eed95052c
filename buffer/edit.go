package buffer

import (
	"errors"
	"fmt"
)

// ErrInvalidRange reports a RemoveRange call with start > end or a bound
// outside [0, Len]. It indicates a caller bug, not a runtime condition.
var ErrInvalidRange = errors.New("buffer: invalid range")

// Insert inserts r at index at. at is clamped into [0, Len].
func (b *Buffer) Insert(r rune, at int) {
	at = Clamp(at, 0, len(b.text))
	b.text = append(b.text, 0)
	copy(b.text[at+1:], b.text[at:])
	b.text[at] = r
	b.version++
}

// InsertString inserts s at index at and returns the index right after the
// inserted text.
func (b *Buffer) InsertString(s string, at int) int {
	at = Clamp(at, 0, len(b.text))
	if s == "" {
		return at
	}
	ins := []rune(s)
	out := make([]rune, 0, len(b.text)+len(ins))
	out = append(out, b.text[:at]...)
	out = append(out, ins...)
	out = append(out, b.text[at:]...)
	b.text = out
	b.version++
	return at + len(ins)
}

// RemoveRange removes the runes in [start, end).
//
// An empty range is a no-op. start > end or a bound outside [0, Len] fails
// with ErrInvalidRange and leaves the buffer untouched.
func (b *Buffer) RemoveRange(start, end int) error {
	if start > end || start < 0 || end > len(b.text) {
		return fmt.Errorf("%w: [%d, %d) with length %d", ErrInvalidRange, start, end, len(b.text))
	}
	if start == end {
		return nil
	}
	b.text = append(b.text[:start], b.text[end:]...)
	b.version++
	return nil
}
