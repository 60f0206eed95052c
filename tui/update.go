package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inputfield/field"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.field.Active() {
		return m
	}

	if !msg.Paste && key.Matches(msg, m.cfg.KeyMap.Enter) {
		if m.field.Mode() == field.MultiLine {
			m.field.ProcessEvent(field.KeyEvent{Char: '\r'})
			return m
		}
		m.field.ProcessEvent(field.KeyEvent{Code: field.KeyReturn})
		m.field.FinishInput()
		return m
	}

	for _, ev := range m.cfg.KeyMap.keyEvents(msg) {
		if !m.field.ProcessEvent(ev) {
			break
		}
	}
	return m
}
