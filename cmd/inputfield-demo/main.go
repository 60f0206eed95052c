package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inputfield"
	"github.com/iw2rmb/inputfield/clipboard"
	"github.com/iw2rmb/inputfield/field"
	"github.com/iw2rmb/inputfield/tui"
)

// statusKeyboard stands in for an on-screen keyboard and reports which
// field it is attached to.
type statusKeyboard struct {
	active bool
	target *field.Field
	names  map[*field.Field]string
}

func (k *statusKeyboard) IsActive() bool               { return k.active }
func (k *statusKeyboard) SetActive(active bool)        { k.active = active }
func (k *statusKeyboard) SetInputField(f *field.Field) { k.target = f }

func (k *statusKeyboard) String() string {
	if !k.active || k.target == nil {
		return "keyboard: hidden"
	}
	return "keyboard: typing into " + k.names[k.target]
}

type model struct {
	name  tui.Model
	notes tui.Model

	keyboard *statusKeyboard
	help     help.Model
	keys     tui.KeyMap

	submitted string
}

func newModel(text string, blink time.Duration, log *slog.Logger) model {
	kb := &statusKeyboard{names: map[*field.Field]string{}}
	clip := clipboard.New()
	style := tui.DefaultStyle()

	m := model{keyboard: kb, help: help.New(), keys: tui.DefaultKeyMap()}
	m.name = tui.New(tui.Config{
		Text:          text,
		Placeholder:   "Your name",
		Width:         30,
		Height:        1,
		Focused:       true,
		Clipboard:     clip,
		Keyboard:      kb,
		Style:         style,
		BlinkInterval: blink,
		Logger:        log.With("field", "name"),
	})
	m.notes = tui.New(tui.Config{
		Mode:          field.MultiLine,
		Placeholder:   "Notes (multi-line)",
		Width:         30,
		Height:        5,
		Clipboard:     clip,
		Keyboard:      kb,
		Style:         style,
		BlinkInterval: blink,
		Logger:        log.With("field", "notes"),
	})
	kb.names[m.name.Field()] = "name"
	kb.names[m.notes.Field()] = "notes"
	return m
}

func (m model) Init() tea.Cmd { return m.name.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := max(msg.Width-2, 1)
		m.name = m.name.SetSize(w, 1)
		m.notes = m.notes.SetSize(w, max(msg.Height-10, 1))
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "tab", "shift+tab":
			// The name field drops tabs anyway, so tab moves focus there.
			if !m.notes.Focused() || msg.String() == "shift+tab" {
				return m.toggleFocus()
			}
		case "enter":
			if m.name.Focused() {
				m.submitted = m.name.Value()
			}
		}
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var c1, c2 tea.Cmd
	m.name, c1 = m.name.Update(msg)
	m.notes, c2 = m.notes.Update(msg)
	return m, tea.Batch(c1, c2)
}

// Models expect mouse coordinates relative to their own origin; both sit
// inside a one-cell border, the notes box below the three-row name box.
func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wasName := m.name.Focused()

	var c1, c2 tea.Cmd
	m.name, c1 = m.name.Update(offset(msg, 1, 1))
	m.notes, c2 = m.notes.Update(offset(msg, 1, 4))
	if m.name.Focused() && m.notes.Focused() {
		if wasName {
			m.name = m.name.Blur()
		} else {
			m.notes = m.notes.Blur()
		}
	}
	return m, tea.Batch(c1, c2)
}

func offset(msg tea.MouseMsg, dx, dy int) tea.MouseMsg {
	msg.X -= dx
	msg.Y -= dy
	return msg
}

func (m model) toggleFocus() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.name.Focused() {
		m.name = m.name.Blur()
		m.notes, cmd = m.notes.Focus()
	} else {
		m.notes = m.notes.Blur()
		m.name, cmd = m.name.Focus()
	}
	return m, cmd
}

func (m model) View() string {
	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	active := frame.BorderForeground(lipgloss.Color("63"))

	styleFor := func(t tui.Model) lipgloss.Style {
		if t.Focused() {
			return active
		}
		return frame
	}

	submitted := "-"
	if m.submitted != "" {
		submitted = m.submitted
	}

	return strings.Join([]string{
		styleFor(m.name).Render(m.name.View()),
		styleFor(m.notes).Render(m.notes.View()),
		fmt.Sprintf("submitted: %s | %s | inputfield %s", submitted, m.keyboard, inputfield.VersionTag()),
		m.help.View(m.keys),
	}, "\n")
}

func main() {
	var (
		text    = flag.String("text", "", "initial text of the name field")
		logPath = flag.String("log", "", "write JSON debug logs to this file")
		blink   = flag.Duration("blink", field.DefaultBlinkInterval, "caret blink interval")
		version = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(inputfield.VersionTag())
		return
	}

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	log := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := tea.NewProgram(newModel(*text, *blink, log), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
