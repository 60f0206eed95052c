package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int { return int(lastID.Add(1)) }

// BlinkMsg is one caret blink tick. Models ignore ticks that carry another
// model's id or a stale tag.
type BlinkMsg struct {
	id  int
	tag int
}

// tickScheduler implements field.Scheduler on top of tea.Tick. One tick is
// in flight at a time; each handled tick schedules the next. Cancelling
// bumps the tag so the in-flight tick is dropped.
type tickScheduler struct {
	id       int
	tag      int
	interval time.Duration
	fn       func()
	pending  bool
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{id: nextID()}
}

func (s *tickScheduler) Every(interval time.Duration, fn func()) func() {
	s.tag++
	s.interval = interval
	s.fn = fn
	s.pending = true

	tag := s.tag
	return func() {
		if s.tag != tag {
			return
		}
		s.tag++
		s.fn = nil
		s.pending = false
	}
}

// cmd returns the next tick if one is due to be scheduled.
func (s *tickScheduler) cmd() tea.Cmd {
	if !s.pending || s.fn == nil {
		return nil
	}
	s.pending = false
	id, tag := s.id, s.tag
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return BlinkMsg{id: id, tag: tag}
	})
}

func (s *tickScheduler) handle(msg BlinkMsg) tea.Cmd {
	if msg.id != s.id || msg.tag != s.tag || s.fn == nil {
		return nil
	}
	s.fn()
	s.pending = true
	return s.cmd()
}
