package driving

import "github.com/custodia-labs/boardseq/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetExportFormat updates the default export format.
	SetExportFormat(format domain.ExportFormat) error

	// SetExportDirectory updates where exported files are written.
	SetExportDirectory(dir string) error

	// SetMaxUploadBytes updates the input file size cap.
	SetMaxUploadBytes(n int) error

	// SetServerAddress updates the HTTP listen address.
	SetServerAddress(addr string) error

	// Validate checks the current settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
