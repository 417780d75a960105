package tabular

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
)

// Ensure Encoder implements the interface.
var _ driven.SequenceEncoder = (*Encoder)(nil)

// MIMEType is the content type of exported tables.
const MIMEType = "text/csv"

// Header lists the export columns.
var Header = []string{"Seq", "Booking_ID", "Max_Seat_Number", "Seats"}

// seatJoiner separates seat labels inside the Seats column.
const seatJoiner = ";"

// Encoder writes the quoted export table.
type Encoder struct{}

// NewEncoder creates a new table encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Format returns the export format this encoder produces.
func (e *Encoder) Format() domain.ExportFormat {
	return domain.ExportFormatCSV
}

// MIMEType returns the content type of the encoded output.
func (e *Encoder) MIMEType() string {
	return MIMEType
}

// Encode writes the header and one row per entry, newline-separated,
// without a trailing newline.
func (e *Encoder) Encode(entries []domain.SequenceEntry) ([]byte, error) {
	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, quoteRow(Header))

	for _, entry := range entries {
		rows = append(rows, quoteRow([]string{
			strconv.Itoa(entry.Sequence),
			entry.BookingID,
			strconv.Itoa(entry.MaxSeatNumber),
			strings.Join(entry.Seats, seatJoiner),
		}))
	}

	return []byte(strings.Join(rows, "\n")), nil
}

func quoteRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + c + `"`
	}
	return strings.Join(quoted, ",")
}
