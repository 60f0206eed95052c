package field

import (
	"testing"

	"github.com/iw2rmb/inputfield/buffer"
	"github.com/iw2rmb/inputfield/clipboard"
	"github.com/iw2rmb/inputfield/layout"
)

func newTestField(cfg Config) (*Field, *recordingHost, *fakeScheduler) {
	host := &recordingHost{}
	sched := &fakeScheduler{}
	cfg.Host = host
	cfg.Scheduler = sched
	if cfg.Platform == PlatformAuto {
		cfg.Platform = PlatformOther
	}
	return New(cfg), host, sched
}

func TestField_InactiveIgnoresEvents(t *testing.T) {
	f, host, _ := newTestField(Config{Text: "ab", Size: layout.Size{W: 10, H: 1}})

	if f.ProcessEvent(char('x')) {
		t.Fatalf("inactive field consumed an event")
	}
	if f.Apply(Command{Kind: CmdMoveEnd}) {
		t.Fatalf("inactive field applied a command")
	}
	if got := f.Text(); got != "ab" {
		t.Fatalf("text: got %q, want %q", got, "ab")
	}
	if len(host.texts) != 0 || host.dirty != 0 {
		t.Fatalf("host notified while inactive: texts=%v dirty=%d", host.texts, host.dirty)
	}
}

func TestField_SingleLineScrollsWithCaret(t *testing.T) {
	f, host, _ := newTestField(Config{Text: "abcdefgh", Size: layout.Size{W: 5, H: 1}})

	if got := f.DisplayText(); got != "abcde" {
		t.Fatalf("display before activation: got %q, want %q", got, "abcde")
	}
	f.Activate()
	if len(host.displays) != 1 || host.displays[0] != "abcde" {
		t.Fatalf("display notifications after activation: %v", host.displays)
	}

	f.ProcessEvent(KeyEvent{Code: KeyEnd})
	if got, want := f.VisibleWindow(), (Window{Start: 3, End: 8}); got != want {
		t.Fatalf("window after end: got %+v, want %+v", got, want)
	}
	if got := f.DisplayText(); got != "defgh" {
		t.Fatalf("display after end: got %q, want %q", got, "defgh")
	}
	if got := f.CaretGeometry(); len(got) != 1 || got[0] != (layout.Rect{X: 5, Y: 0, W: 1, H: 1}) {
		t.Fatalf("caret geometry: got %+v", got)
	}

	f.ProcessEvent(char('X'))
	if got := f.DisplayText(); got != "efghX" {
		t.Fatalf("display after typing: got %q, want %q", got, "efghX")
	}
	if len(host.texts) != 1 || host.texts[0] != "abcdefghX" {
		t.Fatalf("text notifications: %v", host.texts)
	}
	if got := host.displays[len(host.displays)-1]; got != "efghX" {
		t.Fatalf("last display notification: got %q, want %q", got, "efghX")
	}
}

func TestField_MovesDoNotReportTextChanges(t *testing.T) {
	f, host, _ := newTestField(Config{Text: "abc", Size: layout.Size{W: 10, H: 1}})
	f.Activate()

	f.ProcessEvent(KeyEvent{Code: KeyRight})
	f.ProcessEvent(KeyEvent{Code: KeyEnd, Mods: ModShift})
	if len(host.texts) != 0 {
		t.Fatalf("text notifications for moves: %v", host.texts)
	}
	if len(host.displays) != 1 {
		t.Fatalf("display notifications: got %v, want one", host.displays)
	}
	if host.dirty < 3 {
		t.Fatalf("dirty=%d, want at least 3", host.dirty)
	}
}

func TestField_EscapeDeactivates(t *testing.T) {
	f, _, _ := newTestField(Config{Text: "abc"})
	f.Activate()

	if f.ProcessEvent(KeyEvent{Code: KeyEscape}) {
		t.Fatalf("escape consumed")
	}
	if f.Active() {
		t.Fatalf("field still active after escape")
	}
}

func TestField_SetTextSelectsAll(t *testing.T) {
	f, host, _ := newTestField(Config{Text: "abc", Size: layout.Size{W: 10, H: 1}})

	f.SetText("hello")
	if got := f.Text(); got != "hello" {
		t.Fatalf("text: got %q, want %q", got, "hello")
	}
	if got, want := f.Selection().Range(), (buffer.Range{Start: 0, End: 5}); got != want {
		t.Fatalf("selection: got %v, want %v", got, want)
	}
	if len(host.texts) != 1 || host.texts[0] != "hello" {
		t.Fatalf("text notifications: %v", host.texts)
	}
	if got := f.CaretGeometry(); len(got) != 1 || got[0] != (layout.Rect{X: 0, Y: 0, W: 5, H: 1}) {
		t.Fatalf("selection geometry: got %+v", got)
	}
}

func TestField_SingleLineSetTextDropsTabsAndBreaks(t *testing.T) {
	f, _, _ := newTestField(Config{Text: "a\tb", Size: layout.Size{W: 5, H: 1}})
	if got := f.Text(); got != "ab" {
		t.Fatalf("initial text: got %q, want %q", got, "ab")
	}

	f.Activate()
	f.SetText("abcdef\tgh\r\nij")
	if got, want := f.Text(), "abcdefghij"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	f.ProcessEvent(KeyEvent{Code: KeyEnd})

	d := f.DisplayLayout()
	n := len([]rune(f.DisplayText()))
	if w := d.CursorPosition(n).X; w > f.Size().W+1 {
		t.Fatalf("display width %v exceeds %v", w, f.Size().W)
	}
}

func TestField_MultiLineSetTextKeepsTabs(t *testing.T) {
	f, _, _ := newTestField(Config{Mode: MultiLine, Size: layout.Size{W: 20, H: 3}})
	f.SetText("a\tb\nc")
	if got, want := f.Text(), "a\tb\nc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestField_SetSizeRecomputesWindow(t *testing.T) {
	f, _, _ := newTestField(Config{Text: "abcdefgh", Size: layout.Size{W: 5, H: 1}})
	f.Activate()
	f.ProcessEvent(KeyEvent{Code: KeyEnd})

	f.SetSize(layout.Size{W: 8, H: 1})
	if got, want := f.VisibleWindow(), (Window{Start: 0, End: 8}); got != want {
		t.Fatalf("window: got %+v, want %+v", got, want)
	}
}

func TestField_PointerAndDrag_SingleLine(t *testing.T) {
	f, _, _ := newTestField(Config{Text: "hello", Size: layout.Size{W: 10, H: 1}})
	f.Activate()

	f.PointerDown(layout.Point{X: 2.2})
	if s := f.Selection(); s.Caret() != 2 || s.Active() {
		t.Fatalf("after pointer down: caret=%d active=%v, want 2/false", s.Caret(), s.Active())
	}

	f.Drag(layout.Point{X: 4.4})
	if got, want := f.Selection().Range(), (buffer.Range{Start: 2, End: 4}); got != want {
		t.Fatalf("after drag: got %v, want %v", got, want)
	}
	f.Drag(layout.Point{X: -1})
	if s := f.Selection(); s.Caret() != 3 || s.Anchor() != 2 {
		t.Fatalf("after drag left: caret=%d anchor=%d, want 3/2", s.Caret(), s.Anchor())
	}
	f.Drag(layout.Point{X: 11})
	if s := f.Selection(); s.Caret() != 4 || s.Anchor() != 2 {
		t.Fatalf("after drag right: caret=%d anchor=%d, want 4/2", s.Caret(), s.Anchor())
	}
}

func TestField_MultiLine(t *testing.T) {
	f, _, _ := newTestField(Config{
		Mode: MultiLine,
		Text: fiveLines,
		Size: layout.Size{W: 10, H: 2},
	})
	f.Activate()

	if got := f.DisplayText(); got != "l0\nl1" {
		t.Fatalf("display: got %q, want %q", got, "l0\nl1")
	}

	f.ProcessEvent(KeyEvent{Code: KeyDown})
	f.ProcessEvent(KeyEvent{Code: KeyDown})
	if got := f.Selection().Caret(); got != 6 {
		t.Fatalf("caret: got %d, want 6", got)
	}
	if got := f.DisplayText(); got != "l1\nl2" {
		t.Fatalf("display after scrolling: got %q, want %q", got, "l1\nl2")
	}
	assertRects(t, f.CaretGeometry(), []layout.Rect{{X: 0, Y: 1, W: 1, H: 1}})

	f.ProcessEvent(KeyEvent{Code: KeyUp, Mods: ModShift})
	assertRects(t, f.CaretGeometry(), []layout.Rect{
		{X: 0, Y: 0, W: 2, H: 1},
		{X: 0, Y: 1, W: 1, H: 1},
	})

	f.ProcessEvent(KeyEvent{Code: KeyReturn, Char: '\r'})
	if got := f.Text(); got != fiveLines {
		t.Fatalf("return changed text: %q", got)
	}
	f.ProcessEvent(KeyEvent{Char: '\r'})
	if got, want := f.Text(), "l0\n\nl2\nl3\nl4"; got != want {
		t.Fatalf("text after newline: got %q, want %q", got, want)
	}
}

func TestField_Drag_MultiLineScrollsByLine(t *testing.T) {
	f, _, _ := newTestField(Config{
		Mode: MultiLine,
		Text: fiveLines,
		Size: layout.Size{W: 10, H: 2},
	})
	f.Activate()
	f.PointerDown(layout.Point{X: 1, Y: 1})

	f.Drag(layout.Point{X: 1, Y: 3})
	if s := f.Selection(); s.Caret() != 7 || s.Anchor() != 4 {
		t.Fatalf("after drag below: caret=%d anchor=%d, want 7/4", s.Caret(), s.Anchor())
	}
	f.Drag(layout.Point{X: 1, Y: -1})
	f.Drag(layout.Point{X: 1, Y: -1})
	if s := f.Selection(); s.Caret() != 1 || s.Anchor() != 4 {
		t.Fatalf("after drag above: caret=%d anchor=%d, want 1/4", s.Caret(), s.Anchor())
	}
}

func TestField_FinishInput(t *testing.T) {
	f, host, _ := newTestField(Config{Text: "done"})

	f.FinishInput()
	if len(host.finished) != 1 || host.finished[0] != "done" {
		t.Fatalf("finished: %v", host.finished)
	}
}

func TestField_SingleLinePasteDropsLineBreaks(t *testing.T) {
	clip := clipboard.NewMem()
	_ = clip.WriteText("one\ntwo")
	f, _, _ := newTestField(Config{Size: layout.Size{W: 20, H: 1}, Clipboard: clip})
	f.Activate()

	f.ProcessEvent(KeyEvent{Code: KeyV, Mods: ModCtrl, Char: 'v'})
	if got := f.Text(); got != "onetwo" {
		t.Fatalf("text: got %q, want %q", got, "onetwo")
	}
}

func TestField_DefaultsAreUsable(t *testing.T) {
	f := New(Config{Text: "abc"})
	if got := f.Mode(); got != SingleLine {
		t.Fatalf("mode: got %v, want %v", got, SingleLine)
	}
	if got := f.VisibleWindow(); got != (Window{}) {
		t.Fatalf("window with zero size: got %+v", got)
	}
	f.FinishInput()
}
