package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/boardseq/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/boardseq/internal/core/domain"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serves boarding sequence generation over HTTP.

Endpoints:
  GET  /healthz                  liveness check
  POST /v1/sequences             JSON {"bookings":[{"booking_id":"101","seats":["A1"]}]}
  POST /v1/sequences/text        raw Booking_ID,Seats text
  POST /v1/sequences/upload      multipart form with a "file" field
  POST /v1/sequences/export      JSON bookings, ?format=csv|json|yaml|pdf

The listen address defaults to the server.address setting.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("addr", "a", "", "listen address (default from settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if boardingService == nil || intakeService == nil {
		return errors.New("boarding service not configured")
	}

	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *s
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = settings.Server.Address
	}

	server, err := httpapi.NewServer(
		&httpapi.Ports{Boarding: boardingService, Intake: intakeService},
		httpapi.WithMaxBodyBytes(int64(settings.Intake.MaxBytes)),
	)
	if err != nil {
		return err
	}

	cmd.Printf("HTTP API listening on %s\n", addr)
	return server.Run(cmd.Context(), addr)
}
