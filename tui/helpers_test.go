package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/inputfield/field"
)

func stripANSI(s string) string { return ansi.Strip(s) }

// viewLines returns the view without styling and trailing padding.
func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(stripANSI(lines[i]), " ")
	}
	return lines
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

type memClipboard struct{ s string }

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

type fakeKeyboard struct {
	active bool
	target *field.Field
	shows  int
}

func (k *fakeKeyboard) IsActive() bool { return k.active }
func (k *fakeKeyboard) SetActive(active bool) {
	k.active = active
	if active {
		k.shows++
	}
}
func (k *fakeKeyboard) SetInputField(f *field.Field) { k.target = f }
