package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui"
)

// runApp starts the program. Tests replace it to inspect the app.
var runApp = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal UI for entering bookings by hand.

Given a booking file, the UI opens on its boarding sequence instead.

Controls:
  tab, shift+tab - Move between fields
  ctrl+n         - Add a booking row
  ctrl+d         - Delete the current row
  enter          - Generate the sequence
  c, e           - Copy or export the sequence
  esc            - Back to entry
  ?              - Toggle help (results view)
  q, ctrl+c      - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if boardingService == nil {
		return errors.New("boarding service not configured")
	}

	app, err := tui.NewApp(&tui.Ports{
		Boarding: boardingService,
		Settings: settingsService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if len(args) == 1 {
		if intakeService == nil {
			return errors.New("intake service not configured")
		}
		text, err := intakeService.ReadFile(args[0])
		if err != nil {
			return err
		}
		app.SetInitialResult(boardingService.GenerateFromText(text), filepath.Base(args[0]))
	}

	if err := runApp(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
