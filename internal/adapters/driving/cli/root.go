// Package cli provides the cobra commands of the boardseq binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/boardseq/internal/core/ports/driving"
	"github.com/custodia-labs/boardseq/internal/logger"
)

// version is set at build time.
var version = "dev"

// Services bundles the driving ports the commands call.
type Services struct {
	Boarding driving.BoardingService
	Intake   driving.IntakeService
	Settings driving.SettingsService
}

// ServiceFactory builds the services for a config directory.
// An empty directory selects the default location.
type ServiceFactory func(configDir string) (*Services, error)

var (
	serviceFactory ServiceFactory

	boardingService driving.BoardingService
	intakeService   driving.IntakeService
	settingsService driving.SettingsService
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "boardseq",
	Short: "Generate back-to-front bus boarding sequences",
	Long: `boardseq ranks bus bookings into a boarding order.

Passengers whose furthest seat is deepest in the bus board first, so nobody
has to squeeze past someone already seated. Ties go to the smaller booking ID.

Input is comma-separated text, one booking per line:
  Booking_ID,Seats
  101,A1,B1
  120,A20,C2`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers the function that builds services once flags
// are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default $BOARDSEQ_CONFIG_DIR or ~/.boardseq)")
}

// setup runs before every command.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	if serviceFactory == nil {
		return nil
	}

	svc, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	boardingService = svc.Boarding
	intakeService = svc.Intake
	settingsService = svc.Settings
	return nil
}

// loadDotEnv loads environment variables from path when it exists.
// Variables already set in the environment win.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		logger.Debug("Loaded environment from %s", path)
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}
