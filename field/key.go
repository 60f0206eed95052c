package field

import (
	"runtime"
	"unicode"
)

// KeyCode identifies a physical key. Letter keys use their lowercase rune
// value; named keys live above the Unicode range.
type KeyCode rune

const KeyNone KeyCode = 0

// Letter keys with editing shortcuts.
const (
	KeyA KeyCode = 'a'
	KeyC KeyCode = 'c'
	KeyV KeyCode = 'v'
	KeyX KeyCode = 'x'
)

const (
	KeyBackspace KeyCode = unicode.MaxRune + 1 + iota
	KeyDelete
	KeyTab
	KeyReturn
	KeyKeypadEnter
	KeyEscape
	KeyHome
	KeyEnd
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// LetterKey returns the key code of the letter key producing r.
func LetterKey(r rune) KeyCode {
	return KeyCode(unicode.ToLower(r))
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	// ModSuper is the Command key on macOS.
	ModSuper
)

func (m Modifiers) Has(x Modifiers) bool { return m&x != 0 }

// KeyEvent is one raw key press.
//
// Char is the character the key produced, or 0 when it produced none (for
// example a bare modifier press).
type KeyEvent struct {
	Code KeyCode
	Mods Modifiers
	Char rune
}

// Platform selects the primary shortcut modifier.
type Platform int

const (
	// PlatformAuto resolves to DefaultPlatform.
	PlatformAuto Platform = iota
	// PlatformMac uses Command as the primary modifier.
	PlatformMac
	// PlatformOther uses Control as the primary modifier.
	PlatformOther
)

// DefaultPlatform returns the platform family of the running binary.
func DefaultPlatform() Platform {
	switch runtime.GOOS {
	case "darwin", "ios":
		return PlatformMac
	default:
		return PlatformOther
	}
}

// Primary returns the modifier used for select-all, cut, copy and paste.
func (p Platform) Primary() Modifiers {
	if p == PlatformAuto {
		p = DefaultPlatform()
	}
	if p == PlatformMac {
		return ModSuper
	}
	return ModCtrl
}
