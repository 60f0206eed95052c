package layout

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FaceOptions configures a Face layout.
type FaceOptions struct {
	// Face measures glyphs (default: basicfont.Face7x13).
	Face font.Face
	// TabWidth is the tab stop distance in space advances (default: 4).
	TabWidth int
	Wrap     WrapMode
}

// Face lays text out in pixels using font metrics.
//
// Only advances and kerning are used; there is no shaping.
type Face struct {
	opt  FaceOptions
	flow flow
}

var _ Provider = (*Face)(nil)

func NewFace(opt FaceOptions) *Face {
	if opt.Face == nil {
		opt.Face = basicfont.Face7x13
	}
	if opt.TabWidth <= 0 {
		opt.TabWidth = 4
	}
	f := &Face{opt: opt}
	f.Populate("", Size{})
	return f
}

func (f *Face) Populate(text string, extents Size) {
	face := f.opt.Face
	m := face.Metrics()
	height := fixedToFloat(m.Height)
	if height <= 0 {
		height = fixedToFloat(m.Ascent + m.Descent)
	}
	tabStop := fixedToFloat(glyphAdvance(face, ' ')) * float64(f.opt.TabWidth)

	f.flow = buildFlow(text, extents.W, f.opt.Wrap, height, func(prev, r rune, x float64) float64 {
		if r == '\t' {
			if tabStop <= 0 {
				return 0
			}
			next := float64(int(x/tabStop)+1) * tabStop
			return next - x
		}
		adv := glyphAdvance(face, r)
		if prev != 0 {
			adv += face.Kern(prev, r)
		}
		return fixedToFloat(adv)
	})
}

func (f *Face) LineCount() int                  { return f.flow.lineCount() }
func (f *Face) LineStart(line int) int          { return f.flow.lineStart(line) }
func (f *Face) LineEnd(line int) int            { return f.flow.lineEnd(line) }
func (f *Face) LineHeight(line int) float64     { return f.flow.lineHeightAt(line) }
func (f *Face) LineTop(line int) float64        { return f.flow.lineTop(line) }
func (f *Face) CharWidth(index int) float64     { return f.flow.charWidth(index) }
func (f *Face) CursorPosition(index int) Point  { return f.flow.cursorPosition(index) }
func (f *Face) LineOfChar(index int) int        { return f.flow.lineOfChar(index) }
func (f *Face) IndexFromLocalPoint(p Point) int { return f.flow.indexFromLocalPoint(p) }

func glyphAdvance(face font.Face, r rune) fixed.Int26_6 {
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		// Missing glyphs render as the face's replacement glyph.
		adv, _ = face.GlyphAdvance('\ufffd')
	}
	return adv
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
