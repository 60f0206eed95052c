// Package field is the framework-agnostic core of a text input field.
//
// A Field owns a buffer.Buffer and a buffer.Selection, turns key events into
// Commands, applies them, and keeps a Window of the text that is visible in
// the display area. Single-line fields scroll horizontally, multi-line
// fields scroll vertically by whole lines. Hosts render DisplayText and the
// rectangles from CaretGeometry; they never compute layout themselves.
//
// All methods are expected to be called from one goroutine. The only
// exception is the caret blink, which may tick on a scheduler goroutine and
// only touches an atomic visibility flag and Host.MarkDirty.
package field
