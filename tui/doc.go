// Package tui hosts a field.Field as a Bubble Tea component.
//
// Model translates tea.KeyMsg and tea.MouseMsg into field events, drives the
// caret blink with tea.Tick, and renders the field's display text through a
// fixed-size viewport. Scrolling is done by the field's window, so the
// viewport never scrolls on its own.
package tui
