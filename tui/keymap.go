package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inputfield/field"
)

// KeyMap defines the terminal key bindings.
//
// Terminals cannot report the Command key, so shortcuts are bound to ctrl
// and the field runs with field.PlatformOther.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Cancel            key.Binding

	SelectAll        key.Binding
	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "text start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "text end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline / accept")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop editing")),

		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.SelectAll, km.Copy, km.Cut, km.Paste, km.Cancel}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down, km.Home, km.End},
		{km.ShiftLeft, km.ShiftRight, km.ShiftUp, km.ShiftDown, km.ShiftHome, km.ShiftEnd},
		{km.Backspace, km.Delete, km.Enter, km.Cancel},
		{km.SelectAll, km.Copy, km.Cut, km.Paste},
	}
}

// keyEvents translates msg into field key events. Enter is left to the
// caller because its meaning depends on the field mode.
func (km KeyMap) keyEvents(msg tea.KeyMsg) []field.KeyEvent {
	named := func(code field.KeyCode, mods field.Modifiers) []field.KeyEvent {
		return []field.KeyEvent{{Code: code, Mods: mods}}
	}
	shortcut := func(code field.KeyCode) []field.KeyEvent {
		return []field.KeyEvent{{Code: code, Mods: field.ModCtrl, Char: rune(code)}}
	}

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		return runeEvents(msg.Runes)
	}

	switch {
	case key.Matches(msg, km.Left):
		return named(field.KeyLeft, 0)
	case key.Matches(msg, km.Right):
		return named(field.KeyRight, 0)
	case key.Matches(msg, km.Up):
		return named(field.KeyUp, 0)
	case key.Matches(msg, km.Down):
		return named(field.KeyDown, 0)
	case key.Matches(msg, km.ShiftLeft):
		return named(field.KeyLeft, field.ModShift)
	case key.Matches(msg, km.ShiftRight):
		return named(field.KeyRight, field.ModShift)
	case key.Matches(msg, km.ShiftUp):
		return named(field.KeyUp, field.ModShift)
	case key.Matches(msg, km.ShiftDown):
		return named(field.KeyDown, field.ModShift)
	case key.Matches(msg, km.Home):
		return named(field.KeyHome, 0)
	case key.Matches(msg, km.End):
		return named(field.KeyEnd, 0)
	case key.Matches(msg, km.ShiftHome):
		return named(field.KeyHome, field.ModShift)
	case key.Matches(msg, km.ShiftEnd):
		return named(field.KeyEnd, field.ModShift)
	case key.Matches(msg, km.Backspace):
		return named(field.KeyBackspace, 0)
	case key.Matches(msg, km.Delete):
		return named(field.KeyDelete, 0)
	case key.Matches(msg, km.Cancel):
		return named(field.KeyEscape, 0)
	case key.Matches(msg, km.SelectAll):
		return shortcut(field.KeyA)
	case key.Matches(msg, km.Copy):
		return shortcut(field.KeyC)
	case key.Matches(msg, km.Cut):
		return shortcut(field.KeyX)
	case key.Matches(msg, km.Paste):
		return shortcut(field.KeyV)
	}

	switch msg.Type {
	case tea.KeyTab:
		return []field.KeyEvent{{Code: field.KeyTab, Char: '\t'}}
	case tea.KeySpace:
		return runeEvents([]rune{' '})
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return runeEvents(msg.Runes)
	}
	return nil
}

func runeEvents(rs []rune) []field.KeyEvent {
	evs := make([]field.KeyEvent, 0, len(rs))
	for _, r := range rs {
		evs = append(evs, field.KeyEvent{Code: field.LetterKey(r), Char: r})
	}
	return evs
}
