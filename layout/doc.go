// Package layout defines the text layout contract consumed by the field
// core, and two implementations of it.
//
// Cells measures text in terminal cells and is what the tui adapter uses.
// Face measures text with a golang.org/x/image/font.Face for pixel hosts.
//
// Coordinates: x grows right, y grows down. LineTop is the y of a line's top
// edge and CursorPosition returns the top-left point of a caret placed
// before the given rune.
package layout
