package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
)

// Ensure SequenceReader implements the interface.
var _ driven.SequenceDecoder = (*SequenceReader)(nil)

// SequenceReader reads tables written by Encoder back into entries.
type SequenceReader struct{}

// NewSequenceReader creates a new export reader.
func NewSequenceReader() *SequenceReader {
	return &SequenceReader{}
}

// DecodeSequence parses an exported table. The header row is skipped.
func (r *SequenceReader) DecodeSequence(text string) ([]domain.SequenceEntry, error) {
	return ReadSequence(text)
}

// ReadSequence parses an exported table. The header row is skipped.
// Malformed rows fail with domain.ErrInvalidInput.
func ReadSequence(text string) ([]domain.SequenceEntry, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = len(Header)

	var entries []domain.SequenceEntry
	for row := 1; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}

		if row == 1 && strings.EqualFold(record[0], Header[0]) {
			continue
		}

		entry, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrInvalidInput, row, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func parseRecord(record []string) (domain.SequenceEntry, error) {
	seq, err := strconv.Atoi(record[0])
	if err != nil {
		return domain.SequenceEntry{}, fmt.Errorf("sequence %q is not a number", record[0])
	}
	maxSeat, err := strconv.Atoi(record[2])
	if err != nil {
		return domain.SequenceEntry{}, fmt.Errorf("max seat %q is not a number", record[2])
	}

	seats := []string{}
	if record[3] != "" {
		seats = strings.Split(record[3], seatJoiner)
	}

	return domain.SequenceEntry{
		Sequence:      seq,
		BookingID:     record[1],
		MaxSeatNumber: maxSeat,
		Seats:         seats,
	}, nil
}
