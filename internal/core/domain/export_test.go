package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ExportFormat
		wantErr  bool
	}{
		{"csv", ExportFormatCSV, false},
		{" JSON ", ExportFormatJSON, false},
		{"yaml", ExportFormatYAML, false},
		{"pdf", ExportFormatPDF, false},
		{"xlsx", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExportFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExportFormat_IsText(t *testing.T) {
	assert.True(t, ExportFormatCSV.IsText())
	assert.True(t, ExportFormatYAML.IsText())
	assert.False(t, ExportFormatPDF.IsText())
}

func TestAllExportFormats_AreValid(t *testing.T) {
	for _, f := range AllExportFormats() {
		assert.True(t, f.IsValid(), f.String())
	}
}

func TestExportFileName(t *testing.T) {
	at := time.Date(2024, time.March, 9, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "boarding-sequence-2024-03-09.csv", ExportFileName(ExportFormatCSV, at))
	assert.Equal(t, "boarding-sequence-2024-03-09.pdf", ExportFileName(ExportFormatPDF, at))
}

func TestExportFileName_UsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	at := time.Date(2024, time.March, 10, 5, 0, 0, 0, loc)

	assert.Equal(t, "boarding-sequence-2024-03-09.json", ExportFileName(ExportFormatJSON, at))
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, 5*1024*1024, s.Intake.MaxBytes)
	assert.Equal(t, []string{".csv", ".txt"}, s.Intake.Extensions)
	assert.Equal(t, ExportFormatCSV, s.Export.Format)
	assert.Equal(t, ".", s.Export.Directory)
	assert.Equal(t, ":8080", s.Server.Address)
}
