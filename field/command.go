package field

import "fmt"

// CommandKind is an edit or navigation command.
type CommandKind int

const (
	// CmdNone is consumed without effect.
	CmdNone CommandKind = iota
	CmdBackspace
	CmdForwardDelete
	CmdMoveHome
	CmdMoveEnd
	CmdMoveLeft
	CmdMoveRight
	CmdMoveLineUp
	CmdMoveLineDown
	CmdSelectAll
	CmdCut
	CmdCopy
	CmdPaste
	CmdInsertChar
	CmdAcceptLine
	CmdCancel
)

var commandNames = [...]string{
	CmdNone:          "none",
	CmdBackspace:     "backspace",
	CmdForwardDelete: "forward-delete",
	CmdMoveHome:      "move-home",
	CmdMoveEnd:       "move-end",
	CmdMoveLeft:      "move-left",
	CmdMoveRight:     "move-right",
	CmdMoveLineUp:    "move-line-up",
	CmdMoveLineDown:  "move-line-down",
	CmdSelectAll:     "select-all",
	CmdCut:           "cut",
	CmdCopy:          "copy",
	CmdPaste:         "paste",
	CmdInsertChar:    "insert-char",
	CmdAcceptLine:    "accept-line",
	CmdCancel:        "cancel",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is produced once per processed key event.
type Command struct {
	Kind CommandKind
	// WithSelection extends the selection instead of collapsing it (Shift).
	// Only meaningful for movement commands.
	WithSelection bool
	// Char is the rune inserted by CmdInsertChar.
	Char rune
}

func (c Command) String() string {
	switch {
	case c.Kind == CmdInsertChar:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Char)
	case c.WithSelection:
		return c.Kind.String() + "+select"
	default:
		return c.Kind.String()
	}
}
