// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewEntry is the manual booking entry form.
	ViewEntry ViewType = iota
	// ViewResults shows a generated boarding sequence.
	ViewResults
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewEntry:
		return "entry"
	case ViewResults:
		return "results"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SequenceGenerated carries a processing result to the results view.
// Source names where the bookings came from, e.g. a file name.
type SequenceGenerated struct {
	Result domain.ProcessingResult
	Source string
}

// SequenceCopied signals a clipboard copy finished.
type SequenceCopied struct {
	Count int
	Err   error
}

// SequenceExported signals an export file was written.
type SequenceExported struct {
	Path string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
