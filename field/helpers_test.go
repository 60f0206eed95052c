package field

import (
	"time"

	"github.com/iw2rmb/inputfield/buffer"
	"github.com/iw2rmb/inputfield/layout"
)

// fakeScheduler records registrations and lets tests tick by hand.
type fakeScheduler struct {
	interval time.Duration
	fn       func()
	starts   int
	cancels  int
}

func (s *fakeScheduler) Every(interval time.Duration, fn func()) func() {
	s.interval = interval
	s.fn = fn
	s.starts++
	return func() { s.cancels++ }
}

func (s *fakeScheduler) tick() {
	if s.fn != nil {
		s.fn()
	}
}

// recordingHost captures every host callback.
type recordingHost struct {
	texts    []string
	displays []string
	finished []string
	dirty    int
}

func (h *recordingHost) OnTextChanged(text string)        { h.texts = append(h.texts, text) }
func (h *recordingHost) OnDisplayTextChanged(text string) { h.displays = append(h.displays, text) }
func (h *recordingHost) MarkDirty()                       { h.dirty++ }
func (h *recordingHost) OnEditingFinished(text string)    { h.finished = append(h.finished, text) }

type failingClipboard struct{ err error }

func (c failingClipboard) ReadText() (string, error) { return "", c.err }
func (c failingClipboard) WriteText(string) error    { return c.err }

// editState is a buffer, a selection and a navigator over an unwrapped
// cells layout, for driving the navigator and processor directly.
type editState struct {
	buf *buffer.Buffer
	sel buffer.Selection
	l   *layout.Cells
	nav *Navigator
}

func newEditState(text string) *editState {
	s := &editState{
		buf: buffer.New(text),
		l:   layout.NewCells(layout.CellsOptions{}),
	}
	s.nav = NewNavigator(s.buf, &s.sel, s.l)
	s.relayout()
	return s
}

func (s *editState) relayout() { s.l.Populate(s.buf.Text(), layout.Size{}) }

// place sets the selection to [anchor, caret] with the caret moving last.
func (s *editState) place(caret, anchor int) {
	s.nav.MoveTo(anchor, false)
	s.nav.MoveTo(caret, true)
}

func cellsLayout(text string, opt layout.CellsOptions, width float64) *layout.Cells {
	l := layout.NewCells(opt)
	l.Populate(text, layout.Size{W: width})
	return l
}
