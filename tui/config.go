package tui

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/inputfield/field"
	"github.com/iw2rmb/inputfield/layout"
)

// Config configures the Model.
type Config struct {
	Mode field.Mode

	// Initial text.
	Text string
	// Placeholder is shown while the field is empty and unfocused.
	Placeholder string

	// Initial size in cells. Hosts usually call SetSize or forward
	// tea.WindowSizeMsg instead.
	Width, Height int

	// Focused activates the field on creation.
	Focused bool

	// NewLayout builds the field's layout providers (default: terminal
	// cells, word-wrapped in multi-line mode).
	NewLayout func() layout.Provider

	Clipboard field.Clipboard
	// Keyboard, if set, is shown whenever the model gains focus.
	Keyboard Keyboard

	KeyMap KeyMap // zero value: DefaultKeyMap()
	Style  Style

	// OnChange is called after an update that changed the text or the
	// selection.
	OnChange func(ChangeEvent)
	// OnFinish is called with the text when a single-line field accepts
	// its input (Enter).
	OnFinish func(text string)

	BlinkInterval time.Duration
	Logger        *slog.Logger
}
