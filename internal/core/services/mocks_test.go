package services

import (
	"errors"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
)

// mockDecoder implements driven.BookingDecoder for testing.
type mockDecoder struct {
	bookings []domain.Booking
	lastText string
}

func (m *mockDecoder) Decode(text string) []domain.Booking {
	m.lastText = text
	return m.bookings
}

// mockEncoder implements driven.SequenceEncoder for testing.
type mockEncoder struct {
	format  domain.ExportFormat
	output  []byte
	err     error
	encoded []domain.SequenceEntry
}

func (m *mockEncoder) Format() domain.ExportFormat { return m.format }

func (m *mockEncoder) MIMEType() string { return "text/x-test" }

func (m *mockEncoder) Encode(entries []domain.SequenceEntry) ([]byte, error) {
	m.encoded = entries
	return m.output, m.err
}

// mockRegistry implements driven.EncoderRegistry for testing.
type mockRegistry struct {
	encoders map[domain.ExportFormat]driven.SequenceEncoder
}

func newMockRegistry(encoders ...driven.SequenceEncoder) *mockRegistry {
	r := &mockRegistry{encoders: make(map[domain.ExportFormat]driven.SequenceEncoder)}
	for _, e := range encoders {
		r.encoders[e.Format()] = e
	}
	return r
}

func (m *mockRegistry) Get(format domain.ExportFormat) (driven.SequenceEncoder, error) {
	e, ok := m.encoders[format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	return e, nil
}

func (m *mockRegistry) Formats() []domain.ExportFormat {
	formats := make([]domain.ExportFormat, 0, len(m.encoders))
	for f := range m.encoders {
		formats = append(formats, f)
	}
	return formats
}

// mockClipboard implements driven.Clipboard for testing.
type mockClipboard struct {
	text string
	err  error
}

func (m *mockClipboard) WriteText(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

// mockSettingsService returns fixed settings or an error.
type mockSettingsService struct {
	SettingsService
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

var errMock = errors.New("mock failure")

// mockSequenceReader implements driven.SequenceDecoder for testing.
type mockSequenceReader struct {
	entries []domain.SequenceEntry
	err     error
}

func (m *mockSequenceReader) DecodeSequence(_ string) ([]domain.SequenceEntry, error) {
	return m.entries, m.err
}
