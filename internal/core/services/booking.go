package services

import "github.com/custodia-labs/boardseq/internal/core/domain"

// ProcessBooking reduces a booking to its ranking key. Malformed seat tokens
// are dropped silently; the booking is rejected only when none remain.
//
// Only the furthest seat is kept as the key: a party boards when its
// rearmost member does.
func ProcessBooking(b domain.Booking) (domain.ProcessedBooking, bool) {
	labels := make([]string, 0, len(b.Seats))
	maxSeat := 0

	for _, token := range b.Seats {
		seat, ok := NormalizeSeat(token)
		if !ok {
			continue
		}
		labels = append(labels, seat.Label())
		if seat.Number > maxSeat {
			maxSeat = seat.Number
		}
	}

	if len(labels) == 0 {
		return domain.ProcessedBooking{}, false
	}

	return domain.ProcessedBooking{
		Booking:         b,
		MaxSeatNumber:   maxSeat,
		NormalizedSeats: labels,
	}, true
}
