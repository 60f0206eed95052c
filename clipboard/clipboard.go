// Package clipboard provides text clipboards for input fields.
//
// New uses the system clipboard (github.com/atotto/clipboard) when one is
// available and falls back to an in-memory buffer otherwise. Both satisfy
// field.Clipboard.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard stores and fetches text. Implementations are safe for
// concurrent use.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// New returns the system clipboard, or a memory clipboard when the platform
// has none.
func New() Clipboard {
	if clipboard.Unsupported {
		return NewMem()
	}
	return System{}
}

// System is the platform clipboard.
type System struct{}

func (System) ReadText() (string, error) { return clipboard.ReadAll() }

func (System) WriteText(s string) error { return clipboard.WriteAll(s) }

// Mem is a process-local clipboard. The zero value is empty and ready to use.
type Mem struct {
	mu   sync.Mutex
	text string
}

func NewMem() *Mem { return &Mem{} }

func (m *Mem) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Mem) WriteText(s string) error {
	m.mu.Lock()
	m.text = s
	m.mu.Unlock()
	return nil
}
