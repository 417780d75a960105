package services

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driving"
)

// Ensure IntakeService implements the interface.
var _ driving.IntakeService = (*IntakeService)(nil)

// IntakeService reads booking files within the configured size and
// extension limits. Files are read whole; nothing is streamed.
type IntakeService struct {
	settings driving.SettingsService
}

// NewIntakeService creates a new intake service.
func NewIntakeService(settings driving.SettingsService) *IntakeService {
	return &IntakeService{settings: settings}
}

// Check validates a file name and size without reading it.
func (s *IntakeService) Check(name string, size int64) error {
	limits, err := s.limits()
	if err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(limits.Extensions, ext) {
		return fmt.Errorf("%s: %w", filepath.Base(name), domain.ErrUnsupportedFile)
	}

	if size > int64(limits.MaxBytes) {
		return fmt.Errorf("%s is %d bytes: %w", filepath.Base(name), size, domain.ErrFileTooLarge)
	}

	return nil
}

// ReadFile validates and reads a whole file into memory.
func (s *IntakeService) ReadFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat input: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory: %w", path, domain.ErrInvalidInput)
	}

	if err := s.Check(path, info.Size()); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func (s *IntakeService) limits() (domain.IntakeSettings, error) {
	if s.settings == nil {
		return domain.DefaultAppSettings().Intake, nil
	}
	settings, err := s.settings.Get()
	if err != nil {
		return domain.IntakeSettings{}, fmt.Errorf("load intake settings: %w", err)
	}
	return settings.Intake, nil
}
