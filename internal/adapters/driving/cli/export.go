package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// now names exported files. Tests replace it.
var now = time.Now

var exportCmd = &cobra.Command{
	Use:   "export [file|-]",
	Short: "Write the boarding sequence to a dated file",
	Long: `Generates the boarding sequence and writes it as
boarding-sequence-<YYYY-MM-DD>.<ext> into the export directory.

The format and directory default to the export settings.
Available formats: csv, json, yaml, pdf.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "", "export format (default from settings)")
	exportCmd.Flags().StringP("dir", "d", "", "output directory (default from settings)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, dir, err := exportTarget(cmd)
	if err != nil {
		return err
	}

	result, err := generateFrom(cmd, args)
	if err != nil {
		return err
	}
	if err := checkResult(cmd, result); err != nil {
		return err
	}

	path, err := writeExport(result.Sequence, format, dir)
	if err != nil {
		return err
	}

	cmd.Printf("Wrote %d bookings to %s\n", len(result.Sequence), path)
	return nil
}

// exportTarget resolves the format and directory from flags, then settings.
func exportTarget(cmd *cobra.Command) (domain.ExportFormat, string, error) {
	defaults := domain.DefaultAppSettings().Export
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return "", "", fmt.Errorf("failed to get settings: %w", err)
		}
		defaults = settings.Export
	}

	format := defaults.Format
	if flag, _ := cmd.Flags().GetString("format"); flag != "" {
		f, err := domain.ParseExportFormat(flag)
		if err != nil {
			return "", "", fmt.Errorf("%w: %s", err, flag)
		}
		format = f
	}

	dir := defaults.Directory
	if flag, _ := cmd.Flags().GetString("dir"); flag != "" {
		dir = flag
	}

	return format, dir, nil
}

// writeExport encodes entries and writes them into dir, returning the path.
func writeExport(entries []domain.SequenceEntry, format domain.ExportFormat, dir string) (string, error) {
	if boardingService == nil {
		return "", errors.New("boarding service not configured")
	}

	export, err := boardingService.Export(entries, format, now())
	if err != nil {
		return "", fmt.Errorf("failed to export: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, export.FileName)
	if err := os.WriteFile(path, export.Content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
