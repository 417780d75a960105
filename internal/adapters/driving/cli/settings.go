package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure intake limits, export defaults and the HTTP address.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save it.

Keys:
  export.format      csv, json, yaml or pdf
  export.directory   where export writes files
  intake.max_bytes   largest accepted booking file, in bytes
  intake.extensions  comma-separated list, e.g. .csv,.txt
  server.address     HTTP listen address, e.g. :8080`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure export defaults step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Intake]")
	cmd.Printf("  Max file size: %s\n", formatBytes(settings.Intake.MaxBytes))
	cmd.Printf("  Extensions: %s\n", strings.Join(settings.Intake.Extensions, ", "))
	cmd.Println()

	cmd.Println("[Export]")
	cmd.Printf("  Format: %s\n", settings.Export.Format)
	cmd.Printf("  Directory: %s\n", settings.Export.Directory)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Address)

	if err := settingsService.Validate(); err != nil {
		cmd.Println()
		cmd.Printf("Warning: %v\n", err)
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := applySetting(key, value); err != nil {
		return err
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

// applySetting stores one dot-notation setting.
func applySetting(key, value string) error {
	switch key {
	case "export.format":
		format, err := domain.ParseExportFormat(value)
		if err != nil {
			return fmt.Errorf("%w: %s", err, value)
		}
		return settingsService.SetExportFormat(format)

	case "export.directory":
		return settingsService.SetExportDirectory(value)

	case "intake.max_bytes":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("intake.max_bytes must be a whole number: %w", domain.ErrInvalidInput)
		}
		return settingsService.SetMaxUploadBytes(n)

	case "intake.extensions":
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		settings.Intake.Extensions = parseExtensions(value)
		if len(settings.Intake.Extensions) == 0 {
			return fmt.Errorf("at least one extension is required: %w", domain.ErrInvalidInput)
		}
		return settingsService.Save(settings)

	case "server.address":
		return settingsService.SetServerAddress(value)

	default:
		return fmt.Errorf("unknown setting %q", key)
	}
}

// parseExtensions splits a comma-separated list, adding missing dots.
func parseExtensions(value string) []string {
	var exts []string
	for _, part := range strings.Split(value, ",") {
		ext := strings.ToLower(strings.TrimSpace(part))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("boardseq Setup Wizard")
	cmd.Println("=====================")
	cmd.Println()

	formats := domain.AllExportFormats()
	current := 1
	cmd.Println("Export format:")
	for i, f := range formats {
		cmd.Printf("  %d. %s\n", i+1, f)
		if f == settings.Export.Format {
			current = i + 1
		}
	}
	cmd.Printf("Choose [%d]: ", current)
	choice := parseChoice(readLine(reader), len(formats), current)
	settings.Export.Format = formats[choice-1]
	cmd.Println()

	cmd.Printf("Export directory [%s]: ", settings.Export.Directory)
	if dir := readLine(reader); dir != "" {
		settings.Export.Directory = dir
	}

	cmd.Printf("HTTP listen address [%s]: ", settings.Server.Address)
	if addr := readLine(reader); addr != "" {
		settings.Server.Address = addr
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings saved.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// parseChoice reads a 1-based menu choice, falling back to defaultVal.
func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > maxVal {
		return defaultVal
	}
	return n
}

// formatBytes renders a byte count using binary units.
func formatBytes(n int) string {
	const unit = 1024
	switch {
	case n >= unit*unit && n%(unit*unit) == 0:
		return fmt.Sprintf("%d MiB", n/(unit*unit))
	case n >= unit && n%unit == 0:
		return fmt.Sprintf("%d KiB", n/unit)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
