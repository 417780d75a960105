// Package tui provides an interactive terminal user interface for boardseq.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/boardseq/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Boarding parses rows and generates sequences.
	Boarding driving.BoardingService

	// Settings supplies export defaults. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Boarding == nil {
		return ErrMissingBoardingService
	}
	return nil
}
