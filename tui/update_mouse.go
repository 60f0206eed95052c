package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inputfield/field"
	"github.com/iw2rmb/inputfield/layout"
)

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.wheel(field.CmdMoveLineUp)
			return m
		case tea.MouseButtonWheelDown:
			m.wheel(field.CmdMoveLineDown)
			return m
		case tea.MouseButtonLeft:
		default:
			return m
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m
		}
		if !m.field.Active() {
			m.focus()
		}
		m.field.PointerDown(localPoint(msg))
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m
		}
		// Points outside the field scroll it; the field handles them.
		m.field.Drag(localPoint(msg))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m
}

// wheel scrolls a multi-line field by moving its caret.
func (m Model) wheel(kind field.CommandKind) {
	if m.field.Mode() != field.MultiLine || !m.field.Active() {
		return
	}
	m.field.Apply(field.Command{Kind: kind})
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func localPoint(msg tea.MouseMsg) layout.Point {
	return layout.Point{X: float64(msg.X), Y: float64(msg.Y)}
}
