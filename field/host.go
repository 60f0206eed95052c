package field

// Clipboard stores copied text for the field.
//
// Errors must not crash the field; failures are logged and ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Host consumes the field's output.
type Host interface {
	// OnTextChanged is called with the full text after an edit.
	OnTextChanged(text string)
	// OnDisplayTextChanged is called with the visible substring when the
	// window or its content changed.
	OnDisplayTextChanged(text string)
	// MarkDirty requests a redraw. It may be called from the blink
	// scheduler's goroutine.
	MarkDirty()
	// OnEditingFinished is called by FinishInput with the committed text.
	OnEditingFinished(text string)
}

// HostFuncs adapts optional callbacks to Host. Nil funcs are skipped.
type HostFuncs struct {
	TextChanged        func(text string)
	DisplayTextChanged func(text string)
	Dirty              func()
	EditingFinished    func(text string)
}

var _ Host = HostFuncs{}

func (h HostFuncs) OnTextChanged(text string) {
	if h.TextChanged != nil {
		h.TextChanged(text)
	}
}

func (h HostFuncs) OnDisplayTextChanged(text string) {
	if h.DisplayTextChanged != nil {
		h.DisplayTextChanged(text)
	}
}

func (h HostFuncs) MarkDirty() {
	if h.Dirty != nil {
		h.Dirty()
	}
}

func (h HostFuncs) OnEditingFinished(text string) {
	if h.EditingFinished != nil {
		h.EditingFinished(text)
	}
}
