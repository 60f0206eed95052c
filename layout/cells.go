package layout

import "github.com/iw2rmb/inputfield/internal/cellwidth"

// CellsOptions configures a Cells layout.
type CellsOptions struct {
	// TabWidth is the tab stop distance in cells (default: 4).
	TabWidth int
	Wrap     WrapMode
}

// Cells lays text out on a terminal grid: every line is one cell tall and
// runes are as wide as the cells they occupy.
type Cells struct {
	opt  CellsOptions
	flow flow
}

var _ Provider = (*Cells)(nil)

func NewCells(opt CellsOptions) *Cells {
	if opt.TabWidth <= 0 {
		opt.TabWidth = cellwidth.DefaultTabWidth
	}
	c := &Cells{opt: opt}
	c.Populate("", Size{})
	return c
}

func (c *Cells) Populate(text string, extents Size) {
	tabWidth := c.opt.TabWidth
	c.flow = buildFlow(text, extents.W, c.opt.Wrap, 1, func(_, r rune, x float64) float64 {
		return float64(cellwidth.Rune(r, int(x), tabWidth))
	})
}

func (c *Cells) LineCount() int                  { return c.flow.lineCount() }
func (c *Cells) LineStart(line int) int          { return c.flow.lineStart(line) }
func (c *Cells) LineEnd(line int) int            { return c.flow.lineEnd(line) }
func (c *Cells) LineHeight(line int) float64     { return c.flow.lineHeightAt(line) }
func (c *Cells) LineTop(line int) float64        { return c.flow.lineTop(line) }
func (c *Cells) CharWidth(index int) float64     { return c.flow.charWidth(index) }
func (c *Cells) CursorPosition(index int) Point  { return c.flow.cursorPosition(index) }
func (c *Cells) LineOfChar(index int) int        { return c.flow.lineOfChar(index) }
func (c *Cells) IndexFromLocalPoint(p Point) int { return c.flow.indexFromLocalPoint(p) }
