// Package domain defines the core business entities for boardseq.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Booking: A reservation with an identifier and raw seat tokens
//   - NormalizedSeat: A parsed seat (row letters + seat number)
//   - ProcessedBooking: A booking reduced to its ranking key
//   - SequenceEntry: A ranked booking in the final boarding order
//   - ProcessingResult: The outcome of one sequencing run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
