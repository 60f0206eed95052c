package field

import (
	"log/slog"

	"github.com/iw2rmb/inputfield/buffer"
	"github.com/iw2rmb/inputfield/layout"
)

// Field is an editable text field independent of any UI toolkit.
//
// It owns the buffer, the selection, the visible window and the caret blink.
// Hosts feed it key and pointer events, read DisplayText and CaretGeometry on
// redraw, and receive change notifications through Config.Host.
//
// Field is not safe for concurrent use, except that the blink scheduler may
// toggle caret visibility from its own goroutine.
type Field struct {
	cfg  Config
	log  *slog.Logger
	host Host

	buf *buffer.Buffer
	sel buffer.Selection
	nav *Navigator
	cmd *Processor

	// full holds the whole text, display only the visible window. Geometry
	// is local to display.
	full    layout.Provider
	display layout.Provider

	size layout.Size
	win  Window

	active bool
	blink  blinker

	version      uint64
	displayText  string
	lastNotified string
	notified     bool
}

func New(cfg Config) *Field {
	cfg = cfg.normalized()

	f := &Field{
		cfg:     cfg,
		log:     cfg.Logger,
		host:    cfg.Host,
		buf:     buffer.New(cfg.acceptText(cfg.Text)),
		full:    cfg.NewLayout(),
		display: cfg.NewLayout(),
		size:    cfg.Size,
	}
	f.version = f.buf.Version()
	f.blink = blinker{
		sched:    cfg.Scheduler,
		interval: cfg.BlinkInterval,
		dirty:    f.host.MarkDirty,
	}

	f.nav = NewNavigator(f.buf, &f.sel, f.full)
	f.nav.OnMove(func(s buffer.Selection) { f.blink.reset(s.Active()) })
	f.cmd = NewProcessor(f.nav, ProcessorOptions{
		Platform:   cfg.Platform,
		SingleLine: cfg.Mode == SingleLine,
		Clipboard:  cfg.Clipboard,
		Logger:     cfg.Logger,
	})

	f.layoutText()
	return f
}

func (f *Field) Mode() Mode { return f.cfg.Mode }

func (f *Field) Active() bool { return f.active }

func (f *Field) Text() string { return f.buf.Text() }

// Version changes whenever the text does.
func (f *Field) Version() uint64 { return f.buf.Version() }

func (f *Field) Selection() buffer.Selection { return f.sel }

func (f *Field) VisibleWindow() Window { return f.win }

func (f *Field) DisplayText() string { return f.displayText }

func (f *Field) Size() layout.Size { return f.size }

// DisplayLayout returns the provider holding the display text. Its indices
// are relative to VisibleWindow().Start.
func (f *Field) DisplayLayout() layout.Provider { return f.display }

// CaretVisible reports whether the caret should be drawn this frame.
func (f *Field) CaretVisible() bool {
	return f.active && f.blink.visible.Load()
}

// Activate starts editing: events are accepted and the caret blinks.
func (f *Field) Activate() {
	if f.active {
		return
	}
	f.update()
	f.active = true
	f.blink.reset(f.sel.Active())
	f.blink.start()
	f.log.Debug("field activated", "mode", f.cfg.Mode.String())
}

// Deactivate stops editing. The blink schedule is cancelled.
func (f *Field) Deactivate() {
	if !f.active {
		return
	}
	f.active = false
	f.blink.stop()
	f.host.MarkDirty()
	f.log.Debug("field deactivated")
}

// ProcessEvent applies one key event. It returns false, and leaves the field
// untouched, while the field is inactive. An unconsumed event (Escape)
// deactivates the field.
func (f *Field) ProcessEvent(ev KeyEvent) bool {
	if !f.active {
		return false
	}
	return f.Apply(f.cmd.Translate(ev))
}

// Apply runs a command as if it came from a key event.
func (f *Field) Apply(cmd Command) bool {
	if !f.active {
		return false
	}
	if !f.cmd.Apply(cmd) {
		f.Deactivate()
		return false
	}
	f.update()
	return true
}

// SetText replaces the content and selects all of it. Single-line fields
// drop tabs and line breaks, as they do for typed input.
func (f *Field) SetText(s string) {
	f.buf.Reset(f.cfg.acceptText(s))
	f.sel.Clamp(f.buf.Len())
	f.cmd.SelectAll()
	f.update()
}

// Select places the anchor and then the caret, both clamped.
func (f *Field) Select(caret, anchor int) {
	f.nav.MoveTo(anchor, false)
	f.nav.MoveTo(caret, true)
	f.update()
}

// SetSize changes the display extent and recomputes the window.
func (f *Field) SetSize(size layout.Size) {
	if size == f.size {
		return
	}
	f.size = size
	f.update()
}

// FinishInput reports the committed text to the host.
func (f *Field) FinishInput() {
	f.host.OnEditingFinished(f.buf.Text())
}

// PointerDown places the caret at p, in display-local coordinates.
func (f *Field) PointerDown(p layout.Point) {
	f.nav.MoveTo(f.indexAt(p), false)
	f.update()
}

// Drag extends the selection toward p. Dragging past the display edge
// scrolls by one rune (single-line) or one line (multi-line).
func (f *Field) Drag(p layout.Point) {
	switch f.cfg.Mode {
	case MultiLine:
		switch {
		case p.Y < 0:
			f.nav.MoveLineUp(true, true)
		case p.Y > f.size.H:
			f.nav.MoveLineDown(true, true)
		default:
			f.nav.MoveTo(f.indexAt(p), true)
		}
	default:
		switch {
		case p.X < 0:
			f.nav.MoveLeft(true)
		case p.X > f.size.W:
			f.nav.MoveRight(true)
		default:
			f.nav.MoveTo(f.indexAt(p), true)
		}
	}
	f.update()
}

// CaretGeometry returns the rectangles to draw: the selection highlight when
// a selection is active, else the caret. Coordinates are display-local.
func (f *Field) CaretGeometry() []layout.Rect {
	n := f.win.Len()
	caret := f.sel.Caret() - f.win.Start
	anchor := f.sel.Anchor() - f.win.Start

	if f.cfg.Mode == SingleLine {
		return []layout.Rect{SingleLineRect(f.display, n, caret, anchor)}
	}
	if f.sel.Active() {
		return MultiLineSelectionRects(f.display, n, caret, anchor)
	}
	return []layout.Rect{MultiLineCaretRect(f.display, n, caret)}
}

func (f *Field) indexAt(p layout.Point) int {
	return f.display.IndexFromLocalPoint(p) + f.win.Start
}

// update relays out the text and notifies the host.
func (f *Field) update() {
	f.layoutText()

	if v := f.buf.Version(); v != f.version {
		f.version = v
		f.host.OnTextChanged(f.buf.Text())
	}
	if !f.notified || f.displayText != f.lastNotified {
		f.notified = true
		f.lastNotified = f.displayText
		f.host.OnDisplayTextChanged(f.displayText)
	}
	f.host.MarkDirty()
}

func (f *Field) layoutText() {
	n := f.buf.Len()
	f.sel.Clamp(n)

	prev := f.win
	if f.cfg.Mode == SingleLine {
		// Single-line text never wraps; the window scrolls instead.
		f.full.Populate(f.buf.Text(), layout.Size{H: f.size.H})
		f.win = SingleLineWindow(f.full, n, f.sel.Caret(), f.size.W, prev)
	} else {
		f.full.Populate(f.buf.Text(), f.size)
		f.win = MultiLineWindow(f.full, n, f.sel.Caret(), f.size.H, prev)
	}
	f.displayText = f.buf.Slice(f.win.Start, f.win.End)
	f.display.Populate(f.displayText, f.size)

	if f.win != prev {
		f.log.Debug("window moved", "start", f.win.Start, "end", f.win.End, "caret", f.sel.Caret())
	}
}
