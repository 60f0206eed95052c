package tui

import "github.com/iw2rmb/inputfield/field"

// Keyboard is an on-screen keyboard. When configured, focusing the model
// shows the keyboard and points it at the model's field.
type Keyboard interface {
	IsActive() bool
	SetActive(active bool)
	SetInputField(f *field.Field)
}
