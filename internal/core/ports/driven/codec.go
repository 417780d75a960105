package driven

import "github.com/custodia-labs/boardseq/internal/core/domain"

// BookingDecoder turns raw delimited text into bookings.
// Decoding never fails: unparsable lines are skipped.
type BookingDecoder interface {
	Decode(text string) []domain.Booking
}

// SequenceEncoder writes a boarding sequence in one export format.
type SequenceEncoder interface {
	// Format returns the export format this encoder produces.
	Format() domain.ExportFormat

	// MIMEType returns the content type of the encoded output.
	MIMEType() string

	// Encode serialises the entries in rank order.
	Encode(entries []domain.SequenceEntry) ([]byte, error)
}

// SequenceDecoder reads a previously exported sequence.
type SequenceDecoder interface {
	DecodeSequence(text string) ([]domain.SequenceEntry, error)
}

// EncoderRegistry selects an encoder for an export format.
type EncoderRegistry interface {
	// Get returns the encoder for a format, or ErrUnsupportedFormat.
	Get(format domain.ExportFormat) (SequenceEncoder, error)

	// Formats lists registered formats.
	Formats() []domain.ExportFormat
}
