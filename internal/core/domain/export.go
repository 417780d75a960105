package domain

import (
	"strings"
	"time"
)

// ExportFormat identifies an output encoding for a boarding sequence.
type ExportFormat string

// Available export formats.
const (
	// ExportFormatCSV is the quoted comma-separated tabular format.
	ExportFormatCSV ExportFormat = "csv"

	// ExportFormatJSON is the indented JSON encoding of the entries.
	ExportFormatJSON ExportFormat = "json"

	// ExportFormatYAML is the YAML encoding of the entries.
	ExportFormatYAML ExportFormat = "yaml"

	// ExportFormatPDF is a printable boarding manifest.
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportFilePrefix is the leading part of every exported file name.
const ExportFilePrefix = "boarding-sequence-"

// AllExportFormats returns every supported format.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{ExportFormatCSV, ExportFormatJSON, ExportFormatYAML, ExportFormatPDF}
}

// ParseExportFormat converts a user-supplied name to an ExportFormat.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", ErrUnsupportedFormat
	}
	return f, nil
}

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatCSV, ExportFormatJSON, ExportFormatYAML, ExportFormatPDF:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// IsText returns true if the encoded output is printable text.
func (f ExportFormat) IsText() bool {
	return f != ExportFormatPDF
}

// Extension returns the file extension, without the dot.
func (f ExportFormat) Extension() string {
	return string(f)
}

// ExportFileName returns the download name for a sequence exported on the
// given day, e.g. "boarding-sequence-2024-05-01.csv".
func ExportFileName(f ExportFormat, at time.Time) string {
	return ExportFilePrefix + at.UTC().Format("2006-01-02") + "." + f.Extension()
}

// Export is an encoded boarding sequence ready to be written or downloaded.
type Export struct {
	FileName string
	MIMEType string
	Content  []byte
}
