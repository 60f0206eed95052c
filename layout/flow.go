package layout

import "github.com/iw2rmb/inputfield/internal/cellwidth"

type lineBox struct {
	start int
	end   int
}

// flow is the laid out form of one text shared by the providers: per-rune
// widths and caret x positions, plus line boxes of a uniform height.
type flow struct {
	text       []rune
	lines      []lineBox
	x          []float64 // caret x for every index in [0, len(text)]
	widths     []float64
	lineHeight float64
}

// advanceFunc measures r placed at x.
type advanceFunc func(prev, r rune, x float64) float64

func buildFlow(text string, width float64, mode WrapMode, lineHeight float64, advance advanceFunc) flow {
	f := flow{
		text:       []rune(text),
		lineHeight: lineHeight,
	}
	n := len(f.text)
	f.x = make([]float64, n+1)
	f.widths = make([]float64, n)
	f.lines = make([]lineBox, 0, 1)

	wrap := mode != WrapNone && width > 0
	lineStart := 0
	lastBreak := -1
	cx := 0.0
	var prev rune

	for i := 0; i < n; {
		r := f.text[i]
		if r == '\n' {
			f.x[i] = cx
			f.widths[i] = 0
			f.lines = append(f.lines, lineBox{start: lineStart, end: i})
			lineStart = i + 1
			lastBreak = -1
			cx = 0
			prev = 0
			i++
			continue
		}

		w := advance(prev, r, cx)
		if wrap && i > lineStart && cx+w > width {
			brk := i
			if mode == WrapWord && lastBreak > lineStart {
				brk = lastBreak
			}
			f.lines = append(f.lines, lineBox{start: lineStart, end: brk})
			lineStart = brk
			lastBreak = -1

			// Re-measure the runes carried over to the new line.
			cx = 0
			prev = 0
			for j := brk; j < i; j++ {
				cw := advance(prev, f.text[j], cx)
				f.x[j] = cx
				f.widths[j] = cw
				cx += cw
				prev = f.text[j]
			}
			continue
		}

		f.x[i] = cx
		f.widths[i] = w
		cx += w
		prev = r
		if cellwidth.IsSpace(r) {
			lastBreak = i + 1
		}
		i++
	}

	f.x[n] = cx
	f.lines = append(f.lines, lineBox{start: lineStart, end: n})
	return f
}

func (f *flow) lineCount() int {
	if len(f.lines) == 0 {
		return 1
	}
	return len(f.lines)
}

func (f *flow) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(f.lines) {
		return len(f.lines) - 1
	}
	return line
}

func (f *flow) lineStart(line int) int {
	if len(f.lines) == 0 {
		return 0
	}
	return f.lines[f.clampLine(line)].start
}

func (f *flow) lineEnd(line int) int {
	if len(f.lines) == 0 {
		return 0
	}
	return f.lines[f.clampLine(line)].end
}

func (f *flow) lineHeightAt(line int) float64 {
	if line < 0 || line >= len(f.lines) {
		return 0
	}
	return f.lineHeight
}

func (f *flow) lineTop(line int) float64 {
	if len(f.lines) == 0 {
		return 0
	}
	return float64(f.clampLine(line)) * f.lineHeight
}

func (f *flow) charWidth(index int) float64 {
	if index < 0 || index >= len(f.widths) {
		return 0
	}
	return f.widths[index]
}

func (f *flow) lineOfChar(index int) int {
	// Binary search for the last line whose start <= index.
	lo, hi := 0, len(f.lines)-1
	if hi < 0 {
		return 0
	}
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lines[mid].start <= index {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func (f *flow) cursorPosition(index int) Point {
	if len(f.x) == 0 {
		return Point{}
	}
	if index < 0 {
		index = 0
	}
	if index >= len(f.x) {
		index = len(f.x) - 1
	}
	return Point{X: f.x[index], Y: f.lineTop(f.lineOfChar(index))}
}

func (f *flow) indexFromLocalPoint(p Point) int {
	if len(f.lines) == 0 || p.Y < 0 {
		return 0
	}
	line := 0
	if f.lineHeight > 0 {
		line = int(p.Y / f.lineHeight)
	}
	if line >= len(f.lines) {
		return len(f.text)
	}

	lb := f.lines[line]
	for i := lb.start; i < lb.end; i++ {
		distToStart := p.X - f.x[i]
		distToEnd := f.x[i] + f.widths[i] - p.X
		if distToStart < distToEnd {
			return i
		}
	}
	return lb.end
}
