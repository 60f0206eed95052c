package field

import (
	"log/slog"
	"strings"

	"github.com/iw2rmb/inputfield/buffer"
)

// ProcessorOptions configures a Processor.
type ProcessorOptions struct {
	Platform Platform
	// SingleLine drops tabs and line breaks before they reach the buffer.
	SingleLine bool
	Clipboard  Clipboard
	Logger     *slog.Logger
}

// Processor maps key events to commands and applies them to the buffer and
// selection through a Navigator.
type Processor struct {
	nav *Navigator
	buf *buffer.Buffer
	opt ProcessorOptions
	log *slog.Logger
}

func NewProcessor(nav *Navigator, opt ProcessorOptions) *Processor {
	if opt.Platform == PlatformAuto {
		opt.Platform = DefaultPlatform()
	}
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Processor{
		nav: nav,
		buf: nav.Buffer(),
		opt: opt,
		log: log,
	}
}

// Process translates ev and applies the resulting command. It returns false
// only for a cancel, which tells the caller to stop editing.
func (p *Processor) Process(ev KeyEvent) bool {
	return p.Apply(p.Translate(ev))
}

// Translate maps one key event to a command. Unmatched keys become
// character insertion of ev.Char.
func (p *Processor) Translate(ev KeyEvent) Command {
	shift := ev.Mods.Has(ModShift)
	primaryOnly := ev.Mods.Has(p.opt.Platform.Primary()) && !ev.Mods.Has(ModAlt) && !shift

	switch ev.Code {
	case KeyBackspace:
		return Command{Kind: CmdBackspace}
	case KeyDelete:
		return Command{Kind: CmdForwardDelete}
	case KeyHome:
		return Command{Kind: CmdMoveHome, WithSelection: shift}
	case KeyEnd:
		return Command{Kind: CmdMoveEnd, WithSelection: shift}
	case KeyA:
		if primaryOnly {
			return Command{Kind: CmdSelectAll}
		}
	case KeyX:
		if primaryOnly {
			return Command{Kind: CmdCut}
		}
	case KeyC:
		if primaryOnly {
			return Command{Kind: CmdCopy}
		}
	case KeyV:
		if primaryOnly {
			return Command{Kind: CmdPaste}
		}
	case KeyLeft:
		return Command{Kind: CmdMoveLeft, WithSelection: shift}
	case KeyRight:
		return Command{Kind: CmdMoveRight, WithSelection: shift}
	case KeyUp:
		return Command{Kind: CmdMoveLineUp, WithSelection: shift}
	case KeyDown:
		return Command{Kind: CmdMoveLineDown, WithSelection: shift}
	case KeyReturn, KeyKeypadEnter:
		return Command{Kind: CmdAcceptLine}
	case KeyEscape:
		return Command{Kind: CmdCancel}
	}

	c := normalizeChar(ev.Char)
	if c == 0 {
		// Modifier-only presses produce no character.
		return Command{Kind: CmdNone}
	}
	return Command{Kind: CmdInsertChar, Char: c}
}

// Apply runs cmd. It returns false only for CmdCancel.
func (p *Processor) Apply(cmd Command) bool {
	sel := p.nav.Selection()
	p.log.Debug("apply command", "command", cmd.String(), "caret", sel.Caret(), "anchor", sel.Anchor())

	switch cmd.Kind {
	case CmdNone, CmdAcceptLine:
	case CmdCancel:
		return false
	case CmdBackspace:
		p.backspace()
	case CmdForwardDelete:
		p.forwardDelete()
	case CmdMoveHome:
		p.nav.MoveHome(cmd.WithSelection)
	case CmdMoveEnd:
		p.nav.MoveEnd(cmd.WithSelection)
	case CmdMoveLeft:
		if sel.Active() && !cmd.WithSelection {
			p.nav.MoveTo(sel.Range().Start, false)
		} else {
			p.nav.MoveLeft(cmd.WithSelection)
		}
	case CmdMoveRight:
		if sel.Active() && !cmd.WithSelection {
			p.nav.MoveTo(sel.Range().End, false)
		} else {
			p.nav.MoveRight(cmd.WithSelection)
		}
	case CmdMoveLineUp:
		if sel.Active() && !cmd.WithSelection {
			p.nav.MoveTo(sel.Range().Start, false)
		} else {
			p.nav.MoveLineUp(false, cmd.WithSelection)
		}
	case CmdMoveLineDown:
		if sel.Active() && !cmd.WithSelection {
			p.nav.MoveTo(sel.Range().End, false)
		} else {
			p.nav.MoveLineDown(false, cmd.WithSelection)
		}
	case CmdSelectAll:
		p.SelectAll()
	case CmdCut:
		p.cut()
	case CmdCopy:
		p.copy()
	case CmdPaste:
		p.paste()
	case CmdInsertChar:
		p.insertChar(normalizeChar(cmd.Char))
	}
	return true
}

// SelectAll selects the whole buffer in two steps: caret to 0, then extend
// to the end.
func (p *Processor) SelectAll() {
	p.nav.MoveTo(0, false)
	p.nav.MoveTo(p.buf.Len(), true)
}

func (p *Processor) backspace() {
	sel := p.nav.Selection()
	if sel.Active() {
		p.deleteRange(sel.Range())
		return
	}
	if c := sel.Caret(); c > 0 {
		p.deleteRange(buffer.Range{Start: c - 1, End: c})
	}
}

func (p *Processor) forwardDelete() {
	sel := p.nav.Selection()
	if sel.Active() {
		p.deleteRange(sel.Range())
		return
	}
	if c := sel.Caret(); c < p.buf.Len() {
		p.deleteRange(buffer.Range{Start: c, End: c + 1})
	}
}

// insertChar replaces the selection, if any, with c.
func (p *Processor) insertChar(c rune) {
	if c == 0 {
		return
	}
	if p.opt.SingleLine && (c == '\t' || c == '\r' || c == '\n') {
		return
	}

	sel := p.nav.Selection()
	at := sel.Range().Start
	if sel.Active() {
		p.deleteRange(sel.Range())
	}
	p.buf.Insert(c, at)
	p.nav.MoveTo(at+1, false)
}

func (p *Processor) deleteRange(r buffer.Range) {
	r = buffer.NormalizeRange(r)
	if err := p.buf.RemoveRange(r.Start, r.End); err != nil {
		// Ranges come from a clamped selection; an error is a caller bug.
		panic(err)
	}
	p.nav.MoveTo(r.Start, false)
}

func (p *Processor) copy() string {
	s := p.buf.SliceRange(p.nav.Selection().Range())
	if p.opt.Clipboard == nil {
		return s
	}
	if err := p.opt.Clipboard.WriteText(s); err != nil {
		p.log.Warn("clipboard write failed", "error", err)
	}
	return s
}

func (p *Processor) cut() {
	p.copy()
	if sel := p.nav.Selection(); sel.Active() {
		p.deleteRange(sel.Range())
	}
}

func (p *Processor) paste() {
	if p.opt.Clipboard == nil {
		return
	}
	s, err := p.opt.Clipboard.ReadText()
	if err != nil {
		p.log.Warn("clipboard read failed", "error", err)
		return
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, c := range s {
		p.insertChar(normalizeChar(c))
	}
}

// normalizeChar maps carriage return and end-of-text to line feed.
func normalizeChar(c rune) rune {
	if c == '\r' || c == 3 {
		return '\n'
	}
	return c
}
