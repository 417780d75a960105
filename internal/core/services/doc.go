// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The sequencing functions (NormalizeSeat, ProcessBooking, GenerateSequence)
// are pure: they keep no state, never log and never fail with a Go error.
// Services are pure Go with no CGO or external dependencies.
package services
