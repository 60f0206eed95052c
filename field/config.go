package field

import (
	"log/slog"
	"strings"
	"time"

	"github.com/iw2rmb/inputfield/layout"
)

// Mode selects single-line or multi-line editing.
type Mode int

const (
	SingleLine Mode = iota
	MultiLine
)

func (m Mode) String() string {
	if m == MultiLine {
		return "multi-line"
	}
	return "single-line"
}

// Config configures a Field. The zero value is a usable single-line field
// laid out on terminal cells with no clipboard.
type Config struct {
	Mode     Mode
	Platform Platform

	// Text is the initial content.
	Text string

	// Size is the display extent in layout units.
	Size layout.Size

	// NewLayout builds a fresh provider. It is called twice: once for the
	// full text and once for the visible window (default: layout.NewCells
	// with word wrap in multi-line mode).
	NewLayout func() layout.Provider

	Clipboard Clipboard
	Host      Host

	// Scheduler drives the caret blink (default: TickerScheduler).
	Scheduler     Scheduler
	BlinkInterval time.Duration

	Logger *slog.Logger
}

func (c Config) normalized() Config {
	if c.NewLayout == nil {
		wrap := layout.WrapNone
		if c.Mode == MultiLine {
			wrap = layout.WrapWord
		}
		c.NewLayout = func() layout.Provider {
			return layout.NewCells(layout.CellsOptions{Wrap: wrap})
		}
	}
	if c.Host == nil {
		c.Host = HostFuncs{}
	}
	if c.Scheduler == nil {
		c.Scheduler = TickerScheduler{}
	}
	if c.BlinkInterval <= 0 {
		c.BlinkInterval = DefaultBlinkInterval
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Platform == PlatformAuto {
		c.Platform = DefaultPlatform()
	}
	return c
}

// acceptText strips runes a single-line field never holds. Tab stops and
// line breaks would make widths depend on where the window starts.
func (c Config) acceptText(s string) string {
	if c.Mode != SingleLine {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}
