package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driven"
	"github.com/custodia-labs/boardseq/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyIntakeMaxBytes   = "intake.max_bytes"
	keyIntakeExtensions = "intake.extensions"
	keyExportFormat     = "export.format"
	keyExportDirectory  = "export.directory"
	keyServerAddress    = "server.address"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Intake: domain.IntakeSettings{
			MaxBytes:   s.getInt(keyIntakeMaxBytes, defaults.Intake.MaxBytes),
			Extensions: s.getExtensions(defaults.Intake.Extensions),
		},
		Export: domain.ExportSettings{
			Format:    s.getExportFormat(defaults.Export.Format),
			Directory: s.getString(keyExportDirectory, defaults.Export.Directory),
		},
		Server: domain.ServerSettings{
			Address: s.getString(keyServerAddress, defaults.Server.Address),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyIntakeMaxBytes, settings.Intake.MaxBytes); err != nil {
		return fmt.Errorf("save intake max_bytes: %w", err)
	}
	if err := s.configStore.Set(keyIntakeExtensions, settings.Intake.Extensions); err != nil {
		return fmt.Errorf("save intake extensions: %w", err)
	}
	if err := s.configStore.Set(keyExportFormat, settings.Export.Format.String()); err != nil {
		return fmt.Errorf("save export format: %w", err)
	}
	if err := s.configStore.Set(keyExportDirectory, settings.Export.Directory); err != nil {
		return fmt.Errorf("save export directory: %w", err)
	}
	if err := s.configStore.Set(keyServerAddress, settings.Server.Address); err != nil {
		return fmt.Errorf("save server address: %w", err)
	}

	return nil
}

// SetExportFormat updates the default export format.
func (s *SettingsService) SetExportFormat(format domain.ExportFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("invalid export format %q: %w", format, domain.ErrUnsupportedFormat)
	}
	return s.configStore.Set(keyExportFormat, format.String())
}

// SetExportDirectory updates where exported files are written.
func (s *SettingsService) SetExportDirectory(dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return fmt.Errorf("export directory cannot be empty: %w", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyExportDirectory, dir)
}

// SetMaxUploadBytes updates the input file size cap.
func (s *SettingsService) SetMaxUploadBytes(n int) error {
	if n <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d: %w", n, domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyIntakeMaxBytes, n)
}

// SetServerAddress updates the HTTP listen address.
func (s *SettingsService) SetServerAddress(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("server address cannot be empty: %w", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyServerAddress, addr)
}

// Validate checks the current settings.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Intake.MaxBytes <= 0 {
		return fmt.Errorf("intake max bytes must be positive: %w", domain.ErrInvalidInput)
	}
	if len(settings.Intake.Extensions) == 0 {
		return fmt.Errorf("at least one intake extension is required: %w", domain.ErrInvalidInput)
	}
	for _, ext := range settings.Intake.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("intake extension %q must start with a dot: %w", ext, domain.ErrInvalidInput)
		}
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getExtensions(defaultVal []string) []string {
	vals := s.configStore.GetStringSlice(keyIntakeExtensions)
	if len(vals) == 0 {
		return defaultVal
	}
	exts := make([]string, 0, len(vals))
	for _, v := range vals {
		exts = append(exts, strings.ToLower(strings.TrimSpace(v)))
	}
	return exts
}

func (s *SettingsService) getExportFormat(defaultVal domain.ExportFormat) domain.ExportFormat {
	val := s.configStore.GetString(keyExportFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.ExportFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
