// Package buffer implements the pure text model of an input field: the
// editable rune sequence and the caret/anchor selection over it.
//
// Indices are 0-based rune offsets. An index equal to Len denotes the
// position after the last rune. Ranges are half-open: [Start, End).
package buffer
