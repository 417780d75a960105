// Package httpapi exposes boarding sequence generation over HTTP using echo.
package httpapi

import (
	"errors"

	"github.com/custodia-labs/boardseq/internal/core/ports/driving"
)

var (
	// ErrMissingBoardingService is returned when the boarding service is not provided.
	ErrMissingBoardingService = errors.New("httpapi: boarding service is required")

	// ErrMissingIntakeService is returned when the intake service is not provided.
	ErrMissingIntakeService = errors.New("httpapi: intake service is required")
)

// Ports aggregates the driving ports used by the HTTP API.
type Ports struct {
	Boarding driving.BoardingService
	Intake   driving.IntakeService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Boarding == nil {
		return ErrMissingBoardingService
	}
	if p.Intake == nil {
		return ErrMissingIntakeService
	}
	return nil
}
