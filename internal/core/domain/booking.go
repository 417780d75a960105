package domain

import "strconv"

// Booking is a reservation as supplied by a caller.
// IDs are not guaranteed to be unique.
type Booking struct {
	ID    string   `json:"booking_id" yaml:"booking_id"`
	Seats []string `json:"seats" yaml:"seats"`
}

// NormalizedSeat is a seat token reduced to its row letters and seat number.
// Row is upper case and non-empty; Number is always positive.
type NormalizedSeat struct {
	Row    string
	Number int
}

// Label renders the seat without leading zeros, e.g. "B2".
func (s NormalizedSeat) Label() string {
	return s.Row + strconv.Itoa(s.Number)
}

// ProcessedBooking is a booking with at least one valid seat.
type ProcessedBooking struct {
	Booking

	// MaxSeatNumber is the ranking key: the largest seat number among valid seats.
	MaxSeatNumber int

	// NormalizedSeats holds the labels of valid seats in input order.
	NormalizedSeats []string
}

// SequenceEntry is one booking in the final boarding order.
type SequenceEntry struct {
	Sequence      int      `json:"sequence" yaml:"sequence"`
	BookingID     string   `json:"booking_id" yaml:"booking_id"`
	MaxSeatNumber int      `json:"max_seat_number" yaml:"max_seat_number"`
	Seats         []string `json:"seats" yaml:"seats"`
}

// ManualRow is one hand-entered row: a booking ID and a free-typed seat list.
type ManualRow struct {
	BookingID string
	Seats     string
}
