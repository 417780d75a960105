package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// ParseManualRows turns hand-entered rows into bookings. Rows with neither
// an ID nor seats are ignored; other incomplete rows produce a message naming
// the 1-based row number. Seat tokens are not validated here.
func ParseManualRows(rows []domain.ManualRow) ([]domain.Booking, []string) {
	var (
		bookings []domain.Booking
		problems []string
	)

	for i, row := range rows {
		n := i + 1
		id := strings.TrimSpace(row.BookingID)
		seatsText := strings.TrimSpace(row.Seats)

		if id == "" {
			if seatsText != "" {
				problems = append(problems, fmt.Sprintf("Row %d: Booking ID is required", n))
			}
			continue
		}

		if seatsText == "" {
			problems = append(problems, fmt.Sprintf("Row %d: At least one seat is required", n))
			continue
		}

		seats := splitSeats(seatsText)
		if len(seats) == 0 {
			problems = append(problems, fmt.Sprintf("Row %d: No valid seats found", n))
			continue
		}

		bookings = append(bookings, domain.Booking{ID: id, Seats: seats})
	}

	return bookings, problems
}

// splitSeats splits a free-typed seat list such as "A1, A2;A3 A4" on
// commas, semicolons and any Unicode space.
func splitSeats(text string) []string {
	return strings.FieldsFunc(text, isSeatSeparator)
}

func isSeatSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// FormatClipboardText renders the "Seq<TAB>Booking_ID" table pasted into
// spreadsheets and chat tools.
func FormatClipboardText(entries []domain.SequenceEntry) string {
	var sb strings.Builder
	sb.WriteString("Seq\tBooking_ID")
	for _, e := range entries {
		fmt.Fprintf(&sb, "\n%d\t%s", e.Sequence, e.BookingID)
	}
	return sb.String()
}
