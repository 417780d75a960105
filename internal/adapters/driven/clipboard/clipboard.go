// Package clipboard writes to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// System is the OS clipboard.
type System struct {
	unsupported bool
	write       func(string) error
}

// New creates a clipboard backed by the host's copy utility.
func New() *System {
	return &System{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

// WriteText replaces the clipboard contents.
func (c *System) WriteText(text string) error {
	if c.unsupported {
		return domain.ErrClipboardUnavailable
	}
	return c.write(text)
}
