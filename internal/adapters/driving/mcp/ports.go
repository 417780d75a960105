package mcp

import (
	"github.com/custodia-labs/boardseq/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Boarding generates and exports boarding sequences.
	Boarding driving.BoardingService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Boarding == nil {
		return ErrMissingBoardingService
	}
	return nil
}
