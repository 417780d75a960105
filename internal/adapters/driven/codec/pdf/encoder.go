// Package pdf renders a boarding sequence as a printable manifest.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
)

// Ensure Encoder implements the interface.
var _ driven.SequenceEncoder = (*Encoder)(nil)

// Column widths in millimetres for an A4 portrait page.
var columns = []struct {
	title string
	width float64
}{
	{"Seq", 15},
	{"Booking ID", 55},
	{"Max Seat", 25},
	{"Seats", 95},
}

// Encoder draws the manifest table.
type Encoder struct {
	title string
}

// NewEncoder creates a manifest encoder with the given page title.
func NewEncoder(title string) *Encoder {
	if title == "" {
		title = "Boarding Sequence"
	}
	return &Encoder{title: title}
}

// Format returns the export format this encoder produces.
func (e *Encoder) Format() domain.ExportFormat {
	return domain.ExportFormatPDF
}

// MIMEType returns the content type of the encoded output.
func (e *Encoder) MIMEType() string {
	return "application/pdf"
}

// Encode renders one table row per entry, repeating the header on each page.
func (e *Encoder) Encode(entries []domain.SequenceEntry) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(e.title, false)
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.Cell(0, 10, e.title)
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "B", 10)
		for _, c := range columns {
			pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("%d bookings - page %d", len(entries), pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range entries {
		cells := []string{
			strconv.Itoa(entry.Sequence),
			entry.BookingID,
			strconv.Itoa(entry.MaxSeatNumber),
			strings.Join(entry.Seats, ", "),
		}
		for i, c := range columns {
			pdf.CellFormat(c.width, 6, fit(pdf, cells[i], c.width-2), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// fit shortens text with an ellipsis until it fits the given width.
func fit(pdf *gofpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
