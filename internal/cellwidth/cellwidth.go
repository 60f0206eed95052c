// Package cellwidth measures runes in terminal cells.
package cellwidth

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a non-positive tab width is configured.
const DefaultTabWidth = 4

// Rune returns the cell width of r when drawn at visual column col.
//
// Tabs advance to the next tab stop. Line breaks and other control runes
// occupy no cells. Combining marks are zero width so a base rune and its
// marks share one cell run.
func Rune(r rune, col, tabWidth int) int {
	switch {
	case r == '\t':
		return TabAdvance(col, tabWidth)
	case unicode.IsControl(r):
		return 0
	case unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r):
		return 0
	}

	w := runewidth.RuneWidth(r)
	if w <= 0 {
		// runewidth reports 0 for some emoji presentation runes.
		w = uniseg.StringWidth(string(r))
	}
	if w < 0 {
		w = 0
	}
	return w
}

// String returns the cell width of s starting at visual column col.
func String(s string, col, tabWidth int) int {
	total := 0
	for _, r := range s {
		total += Rune(r, col+total, tabWidth)
	}
	return total
}

// TabAdvance returns the number of cells a tab at col takes.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if col < 0 {
		col = 0
	}
	adv := tabWidth - col%tabWidth
	if adv < 1 {
		return 1
	}
	return adv
}

// IsSpace reports whether r is Unicode whitespace other than a line break.
func IsSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}
