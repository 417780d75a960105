package tabular

import (
	"strings"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.BookingDecoder = (*Decoder)(nil)

// Decoder parses booking lines. It never fails: lines without an ID and at
// least one seat are skipped.
type Decoder struct{}

// NewDecoder creates a new booking decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode turns raw text into bookings in line order. A leading UTF-8
// byte order mark is dropped.
func (d *Decoder) Decode(text string) []domain.Booking {
	text = strings.TrimPrefix(text, "\ufeff")
	lines := nonBlankLines(text)
	bookings := make([]domain.Booking, 0, len(lines))

	for i, line := range lines {
		if i == 0 && isHeader(line) {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			continue
		}

		id := strings.TrimSpace(fields[0])
		seats := make([]string, 0, len(fields)-1)
		for _, f := range fields[1:] {
			if f = strings.TrimSpace(f); f != "" {
				seats = append(seats, f)
			}
		}

		if id == "" || len(seats) == 0 {
			continue
		}
		bookings = append(bookings, domain.Booking{ID: id, Seats: seats})
	}

	return bookings
}

// nonBlankLines splits on newlines, trims each line and drops empty ones.
func nonBlankLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// isHeader reports whether a first line looks like column names.
// A data row whose ID contains "seat" or "booking" is misread as a header.
func isHeader(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "booking") || strings.Contains(lower, "seat")
}
