package codec

import (
	"errors"
	"slices"
	"testing"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

type stubEncoder struct {
	format domain.ExportFormat
}

func (s *stubEncoder) Format() domain.ExportFormat { return s.format }
func (s *stubEncoder) MIMEType() string            { return "text/plain" }
func (s *stubEncoder) Encode(_ []domain.SequenceEntry) ([]byte, error) {
	return []byte(s.format), nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.Formats()) != 0 {
		t.Errorf("expected no formats, got %v", r.Formats())
	}
}

func TestRegistry_Get_Unknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get(domain.ExportFormatCSV)
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRegistry_Register_Replaces(t *testing.T) {
	r := NewRegistry()
	first := &stubEncoder{format: domain.ExportFormatCSV}
	second := &stubEncoder{format: domain.ExportFormatCSV}

	r.Register(first)
	r.Register(second)

	enc, err := r.Get(domain.ExportFormatCSV)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if enc != second {
		t.Error("expected the later registration to win")
	}
}

func TestRegistry_Formats_Order(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubEncoder{format: "xml"})
	r.Register(&stubEncoder{format: domain.ExportFormatYAML})
	r.Register(&stubEncoder{format: domain.ExportFormatCSV})

	want := []domain.ExportFormat{domain.ExportFormatCSV, domain.ExportFormatYAML, "xml"}
	if got := r.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	for _, f := range domain.AllExportFormats() {
		enc, err := r.Get(f)
		if err != nil {
			t.Errorf("format %s not registered: %v", f, err)
			continue
		}
		if enc.Format() != f {
			t.Errorf("encoder for %s reports %s", f, enc.Format())
		}
	}
	if got := r.Formats(); !slices.Equal(got, domain.AllExportFormats()) {
		t.Errorf("Formats() = %v", got)
	}
}
