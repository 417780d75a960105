package driving

import (
	"time"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// BoardingService computes boarding orders.
type BoardingService interface {
	// Generate ranks bookings into a boarding sequence.
	Generate(bookings []domain.Booking) domain.ProcessingResult

	// ParseRows turns hand-entered rows into bookings plus per-row problems.
	ParseRows(rows []domain.ManualRow) ([]domain.Booking, []string)

	// GenerateFromText decodes delimited text and ranks the bookings in it.
	GenerateFromText(text string) domain.ProcessingResult

	// Export encodes a sequence in the given format, naming the file for the given day.
	Export(entries []domain.SequenceEntry, format domain.ExportFormat, at time.Time) (*domain.Export, error)

	// CopyToClipboard writes "Seq<TAB>Booking_ID" lines to the clipboard.
	CopyToClipboard(entries []domain.SequenceEntry) error

	// Formats lists available export formats.
	Formats() []domain.ExportFormat

	// VerifyExport reads an exported CSV sequence and checks its boarding order.
	VerifyExport(text string) ([]domain.SequenceEntry, error)
}

// IntakeService reads booking files within the configured limits.
type IntakeService interface {
	// Check validates a file name and size without reading it.
	Check(name string, size int64) error

	// ReadFile validates and reads a whole file into memory.
	ReadFile(path string) (string, error)
}
