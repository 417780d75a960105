package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// unknownBookingID names a booking that arrived without an identifier.
const unknownBookingID = "Unknown ID"

// GenerateSequence ranks bookings into a boarding order.
//
// Bookings are ordered by their furthest seat, descending, then by booking ID
// ascending. IDs compare as plain strings, so "100" < "120" < "9". Rejected
// bookings become warnings when at least one booking is valid and errors
// otherwise. Ranks are 1..N over the valid bookings.
func GenerateSequence(bookings []domain.Booking) domain.ProcessingResult {
	var messages []string
	processed := make([]domain.ProcessedBooking, 0, len(bookings))

	for _, b := range bookings {
		if b.ID == "" || len(b.Seats) == 0 {
			id := b.ID
			if id == "" {
				id = unknownBookingID
			}
			messages = append(messages, fmt.Sprintf("Invalid booking: %s - missing ID or seats", id))
			continue
		}

		p, ok := ProcessBooking(b)
		if !ok {
			messages = append(messages, fmt.Sprintf("Booking %s: No valid seats found", b.ID))
			continue
		}
		processed = append(processed, p)
	}

	if len(processed) == 0 {
		return domain.NewFailureResult(messages)
	}

	slices.SortStableFunc(processed, compareBoardingOrder)

	sequence := make([]domain.SequenceEntry, len(processed))
	for i, p := range processed {
		sequence[i] = domain.SequenceEntry{
			Sequence:      i + 1,
			BookingID:     p.ID,
			MaxSeatNumber: p.MaxSeatNumber,
			Seats:         p.NormalizedSeats,
		}
	}

	return domain.NewSuccessResult(sequence, messages)
}

// compareBoardingOrder puts the furthest seat first, then the smaller ID.
func compareBoardingOrder(a, b domain.ProcessedBooking) int {
	if c := cmp.Compare(b.MaxSeatNumber, a.MaxSeatNumber); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// VerifySequence checks that entries form a valid boarding order: ranks
// run 1..N, every seat label is already normalized, each entry's maximum
// matches its seats, and consecutive entries respect the boarding order.
func VerifySequence(entries []domain.SequenceEntry) error {
	for i, e := range entries {
		if e.Sequence != i+1 {
			return fmt.Errorf("%w: entry %d has rank %d", domain.ErrInvalidInput, i+1, e.Sequence)
		}
		if e.BookingID == "" || len(e.Seats) == 0 {
			return fmt.Errorf("%w: entry %d is missing an ID or seats", domain.ErrInvalidInput, i+1)
		}

		highest := 0
		for _, label := range e.Seats {
			seat, ok := NormalizeSeat(label)
			if !ok || seat.Label() != label {
				return fmt.Errorf("%w: booking %s has malformed seat %q", domain.ErrInvalidInput, e.BookingID, label)
			}
			highest = max(highest, seat.Number)
		}
		if highest != e.MaxSeatNumber {
			return fmt.Errorf("%w: booking %s reports max seat %d, seats give %d",
				domain.ErrInvalidInput, e.BookingID, e.MaxSeatNumber, highest)
		}

		if i > 0 {
			prev := rankKey(entries[i-1])
			if compareBoardingOrder(prev, rankKey(e)) > 0 {
				return fmt.Errorf("%w: booking %s is out of order after %s",
					domain.ErrInvalidInput, e.BookingID, prev.ID)
			}
		}
	}
	return nil
}

func rankKey(e domain.SequenceEntry) domain.ProcessedBooking {
	return domain.ProcessedBooking{
		Booking:       domain.Booking{ID: e.BookingID},
		MaxSeatNumber: e.MaxSeatNumber,
	}
}
