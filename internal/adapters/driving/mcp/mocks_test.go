package mcp

import (
	"time"

	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec"
	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec/tabular"
	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/services"
)

// mockBoardingService is a mock implementation of driving.BoardingService.
type mockBoardingService struct {
	result    domain.ProcessingResult
	export    *domain.Export
	err       error
	generated [][]domain.Booking
	texts     []string
}

func (m *mockBoardingService) Generate(bookings []domain.Booking) domain.ProcessingResult {
	m.generated = append(m.generated, bookings)
	return m.result
}

func (m *mockBoardingService) GenerateFromText(text string) domain.ProcessingResult {
	m.texts = append(m.texts, text)
	return m.result
}

func (m *mockBoardingService) ParseRows(_ []domain.ManualRow) ([]domain.Booking, []string) {
	return nil, nil
}

func (m *mockBoardingService) Export(
	_ []domain.SequenceEntry,
	_ domain.ExportFormat,
	_ time.Time,
) (*domain.Export, error) {
	return m.export, m.err
}

func (m *mockBoardingService) CopyToClipboard(_ []domain.SequenceEntry) error {
	return m.err
}

func (m *mockBoardingService) Formats() []domain.ExportFormat {
	return domain.AllExportFormats()
}

func (m *mockBoardingService) VerifyExport(_ string) ([]domain.SequenceEntry, error) {
	return m.result.Sequence, m.err
}

// newTestServer builds a server over the real boarding service with a fixed clock.
func newTestServer() *Server {
	boarding := services.NewBoardingService(tabular.NewDecoder(), codec.NewDefaultRegistry(), nil)
	s, err := NewServer(&Ports{Boarding: boarding})
	if err != nil {
		panic(err)
	}
	s.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }
	return s
}
