package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellClass int

const (
	classText cellClass = iota
	classSelection
	classCursor
)

// runWriter renders runs of cells that share a style.
type runWriter struct {
	sb    strings.Builder
	style func(cellClass) lipgloss.Style
	class cellClass
	run   strings.Builder
}

func (w *runWriter) add(c cellClass, s string) {
	if c != w.class {
		w.flush()
		w.class = c
	}
	w.run.WriteString(s)
}

func (w *runWriter) flush() {
	if w.run.Len() == 0 {
		return
	}
	w.sb.WriteString(w.style(w.class).Render(w.run.String()))
	w.run.Reset()
}

func (m *Model) renderContent() string {
	f := m.field
	st := m.cfg.Style
	if !f.Active() && f.Text() == "" && m.cfg.Placeholder != "" {
		return st.Placeholder.Render(m.cfg.Placeholder)
	}

	l := f.DisplayLayout()
	runes := []rune(f.DisplayText())
	win := f.VisibleWindow()
	sel := f.Selection()
	caret := sel.Caret() - win.Start
	r := sel.Range()
	lo, hi := r.Start-win.Start, r.End-win.Start

	showCursor := f.CaretVisible() && !sel.Active()
	caretLine := l.LineOfChar(caret)

	styleOf := func(c cellClass) lipgloss.Style {
		switch c {
		case classSelection:
			return st.Selection.Inherit(st.Text)
		case classCursor:
			return st.Cursor.Inherit(st.Text)
		default:
			return st.Text
		}
	}

	out := make([]string, 0, l.LineCount())
	for line := 0; line < l.LineCount(); line++ {
		w := runWriter{style: styleOf}
		start, end := l.LineStart(line), min(l.LineEnd(line), len(runes))
		for i := start; i < end; i++ {
			c := classText
			switch {
			case showCursor && i == caret:
				c = classCursor
			case i >= lo && i < hi:
				c = classSelection
			}
			w.add(c, cellText(runes[i], int(l.CharWidth(i))))
		}
		if showCursor && line == caretLine && caret == end {
			w.add(classCursor, " ")
		}
		w.flush()
		out = append(out, w.sb.String())
	}
	return strings.Join(out, "\n")
}

func cellText(r rune, width int) string {
	switch {
	case r == '\t':
		return strings.Repeat(" ", width)
	case r < 0x20 || r == 0x7f:
		return ""
	default:
		return string(r)
	}
}
