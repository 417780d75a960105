package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
	"github.com/custodia-labs/boardseq/internal/core/ports/driving"
	"github.com/custodia-labs/boardseq/internal/logger"
)

// Ensure BoardingService implements the interface.
var _ driving.BoardingService = (*BoardingService)(nil)

// BoardingService wires the sequencing algorithm to decoders, encoders
// and the clipboard.
type BoardingService struct {
	decoder   driven.BookingDecoder
	encoders  driven.EncoderRegistry
	clipboard driven.Clipboard
	reader    driven.SequenceDecoder
}

// NewBoardingService creates a new boarding service.
// The clipboard may be nil.
func NewBoardingService(
	decoder driven.BookingDecoder,
	encoders driven.EncoderRegistry,
	clipboard driven.Clipboard,
) *BoardingService {
	return &BoardingService{
		decoder:   decoder,
		encoders:  encoders,
		clipboard: clipboard,
	}
}

// WithSequenceReader enables VerifyExport.
func (s *BoardingService) WithSequenceReader(reader driven.SequenceDecoder) *BoardingService {
	s.reader = reader
	return s
}

// Generate ranks bookings into a boarding sequence.
func (s *BoardingService) Generate(bookings []domain.Booking) domain.ProcessingResult {
	logger.Section("Boarding Sequence")
	logger.Debug("Bookings received: %d", len(bookings))

	result := GenerateSequence(bookings)

	if result.Success {
		logger.Debug("Ranked %d bookings", len(result.Sequence))
		for _, w := range result.Warnings {
			logger.Warn("%s", w)
		}
	} else {
		logger.Debug("No valid bookings (%d errors)", len(result.Errors))
	}

	return result
}

// GenerateFromText decodes delimited text and ranks the bookings in it.
func (s *BoardingService) GenerateFromText(text string) domain.ProcessingResult {
	bookings := s.decoder.Decode(text)
	logger.Debug("Decoded %d bookings from %d bytes", len(bookings), len(text))
	if len(bookings) == 0 {
		return domain.NewFailureResult([]string{domain.NoBookingsInFileMessage})
	}
	return s.Generate(bookings)
}

// ParseRows turns hand-entered rows into bookings plus per-row problems.
func (s *BoardingService) ParseRows(rows []domain.ManualRow) ([]domain.Booking, []string) {
	bookings, problems := ParseManualRows(rows)
	logger.Debug("Parsed %d manual rows into %d bookings", len(rows), len(bookings))
	return bookings, problems
}

// Export encodes a sequence in the given format.
func (s *BoardingService) Export(
	entries []domain.SequenceEntry,
	format domain.ExportFormat,
	at time.Time,
) (*domain.Export, error) {
	if len(entries) == 0 {
		return nil, domain.ErrNoSequence
	}

	enc, err := s.encoders.Get(format)
	if err != nil {
		return nil, err
	}

	content, err := enc.Encode(entries)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	export := &domain.Export{
		FileName: domain.ExportFileName(format, at),
		MIMEType: enc.MIMEType(),
		Content:  content,
	}
	logger.Debug("Exported %d entries as %s (%d bytes)", len(entries), export.FileName, len(content))

	return export, nil
}

// CopyToClipboard writes the sequence as tab-separated rank/ID pairs.
func (s *BoardingService) CopyToClipboard(entries []domain.SequenceEntry) error {
	if len(entries) == 0 {
		return domain.ErrNoSequence
	}
	if s.clipboard == nil {
		return domain.ErrClipboardUnavailable
	}

	if err := s.clipboard.WriteText(FormatClipboardText(entries)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Formats lists available export formats.
func (s *BoardingService) Formats() []domain.ExportFormat {
	return s.encoders.Formats()
}

// VerifyExport reads an exported CSV sequence and checks its boarding order.
func (s *BoardingService) VerifyExport(text string) ([]domain.SequenceEntry, error) {
	if s.reader == nil {
		return nil, errors.New("sequence reader not configured")
	}

	entries, err := s.reader.DecodeSequence(text)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNoSequence
	}
	if err := VerifySequence(entries); err != nil {
		return nil, err
	}

	logger.Debug("Verified %d exported entries", len(entries))
	return entries, nil
}
