package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inputfield/buffer"
	"github.com/iw2rmb/inputfield/field"
	"github.com/iw2rmb/inputfield/layout"
)

// Model is a Bubble Tea component wrapping a field.Field.
//
// Model is a value, but the field and the blink scheduler behind it are
// shared by all copies.
type Model struct {
	cfg   Config
	field *field.Field
	sched *tickScheduler

	viewport viewport.Model

	mouseDragging bool

	lastVersion uint64
	lastSel     buffer.Selection
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.NewLayout == nil {
		wrap := layout.WrapNone
		if cfg.Mode == field.MultiLine {
			wrap = layout.WrapWord
		}
		cfg.NewLayout = func() layout.Provider {
			return layout.NewCells(layout.CellsOptions{Wrap: wrap})
		}
	}
	width, height := max(cfg.Width, 0), max(cfg.Height, 0)

	sched := newTickScheduler()
	f := field.New(field.Config{
		Mode:      cfg.Mode,
		Platform:  field.PlatformOther,
		Text:      cfg.Text,
		Size:      contentSize(width, height),
		NewLayout: cfg.NewLayout,
		Clipboard: cfg.Clipboard,
		Host: field.HostFuncs{
			EditingFinished: cfg.OnFinish,
		},
		Scheduler:     sched,
		BlinkInterval: cfg.BlinkInterval,
		Logger:        cfg.Logger,
	})

	m := Model{
		cfg:      cfg,
		field:    f,
		sched:    sched,
		viewport: viewport.New(width, height),
	}
	if cfg.Focused {
		m.focus()
	}
	m.lastVersion = f.Version()
	m.lastSel = f.Selection()
	m.rebuildContent()
	return m
}

// contentSize reserves the last column for a caret placed after the text.
func contentSize(width, height int) layout.Size {
	return layout.Size{W: float64(max(width-1, 0)), H: float64(height)}
}

func (m Model) Field() *field.Field { return m.field }

// Init starts the caret blink of a field created focused.
func (m Model) Init() tea.Cmd { return m.sched.cmd() }

func (m Model) Value() string { return m.field.Text() }

// SetValue replaces the text and selects all of it.
func (m Model) SetValue(s string) Model {
	m.field.SetText(s)
	m.sync()
	return m
}

func (m Model) SetSize(width, height int) Model {
	width, height = max(width, 0), max(height, 0)
	m.viewport.Width = width
	m.viewport.Height = height
	m.field.SetSize(contentSize(width, height))
	m.rebuildContent()
	return m
}

// Focus activates the field. The returned command starts the caret blink.
func (m Model) Focus() (Model, tea.Cmd) {
	m.focus()
	m.rebuildContent()
	return m, m.sched.cmd()
}

func (m *Model) focus() {
	m.field.Activate()
	if kb := m.cfg.Keyboard; kb != nil {
		if !kb.IsActive() {
			kb.SetActive(true)
		}
		kb.SetInputField(m.field)
	}
}

func (m Model) Blur() Model {
	m.field.Deactivate()
	m.mouseDragging = false
	m.rebuildContent()
	return m
}

func (m Model) Focused() bool { return m.field.Active() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case BlinkMsg:
		cmd := m.sched.handle(msg)
		m.rebuildContent()
		return m, cmd
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	}
	m.sync()
	return m, m.sched.cmd()
}

func (m Model) View() string { return m.viewport.View() }

// sync reports changes made by the last update and redraws.
func (m *Model) sync() {
	ver := m.field.Version()
	sel := m.field.Selection()
	if ver != m.lastVersion || sel != m.lastSel {
		m.lastVersion = ver
		m.lastSel = sel
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.field))
		}
	}
	m.rebuildContent()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
