package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{name: "Empty input returns default", input: "", maxVal: 4, defaultVal: 1, expected: 1},
		{name: "Valid choice within range", input: "3", maxVal: 4, defaultVal: 1, expected: 3},
		{name: "Choice below minimum returns default", input: "0", maxVal: 4, defaultVal: 2, expected: 2},
		{name: "Choice above maximum returns default", input: "5", maxVal: 4, defaultVal: 1, expected: 1},
		{name: "Invalid input returns default", input: "abc", maxVal: 4, defaultVal: 2, expected: 2},
		{name: "Maximum value is valid", input: "4", maxVal: 4, defaultVal: 1, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{5 * 1024 * 1024, "5 MiB"},
		{64 * 1024, "64 KiB"},
		{1500, "1500 bytes"},
		{512, "512 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatBytes(tt.input))
		})
	}
}

func TestParseExtensions(t *testing.T) {
	assert.Equal(t, []string{".csv", ".tsv"}, parseExtensions("CSV, .tsv,,"))
	assert.Empty(t, parseExtensions(" , "))
}

func TestSettingsCmd_Show(t *testing.T) {
	setupServices(t)

	stdout, _, err := execute(t, "", "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Max file size: 5 MiB")
	assert.Contains(t, stdout, "Extensions: .csv, .txt")
	assert.Contains(t, stdout, "Format: csv")
	assert.Contains(t, stdout, "Address: :8080")
}

func TestSettingsCmd_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{"export.format", "json", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.ExportFormatJSON, s.Export.Format)
		}},
		{"export.directory", "/tmp/exports", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "/tmp/exports", s.Export.Directory)
		}},
		{"intake.max_bytes", "2048", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 2048, s.Intake.MaxBytes)
		}},
		{"intake.extensions", "csv,tsv", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, []string{".csv", ".tsv"}, s.Intake.Extensions)
		}},
		{"server.address", ":9090", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, ":9090", s.Server.Address)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			env := setupServices(t)

			stdout, _, err := execute(t, "", "settings", "set", tt.key, tt.value)
			require.NoError(t, err)
			assert.Contains(t, stdout, "Set "+tt.key+" = "+tt.value)

			settings, err := env.settings.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsCmd_SetRejectsBadValues(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr error
	}{
		{"export.format", "docx", domain.ErrUnsupportedFormat},
		{"intake.max_bytes", "lots", domain.ErrInvalidInput},
		{"intake.max_bytes", "0", domain.ErrInvalidInput},
		{"intake.extensions", ",", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			setupServices(t)

			_, _, err := execute(t, "", "settings", "set", tt.key, tt.value)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSettingsCmd_SetUnknownKey(t *testing.T) {
	setupServices(t)

	_, _, err := execute(t, "", "settings", "set", "color", "blue")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown setting "color"`)
}

func TestSettingsCmd_Wizard(t *testing.T) {
	env := setupServices(t)

	stdout, _, err := execute(t, "3\nout\n:9090\n", "settings", "wizard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Settings saved.")

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFormatYAML, settings.Export.Format)
	assert.Equal(t, "out", settings.Export.Directory)
	assert.Equal(t, ":9090", settings.Server.Address)
}

func TestSettingsCmd_WizardKeepsDefaults(t *testing.T) {
	env := setupServices(t)

	_, _, err := execute(t, "\n\n\n", "settings", "wizard")
	require.NoError(t, err)

	settings, err := env.settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings().Export, settings.Export)
}

func TestSettingsCmd_NotConfigured(t *testing.T) {
	setupServices(t)
	settingsService = nil

	_, _, err := execute(t, "", "settings")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
