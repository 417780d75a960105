package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy [file|-]",
	Short: "Copy the boarding order to the clipboard",
	Long: `Generates the boarding sequence and copies it to the system clipboard as
tab-separated "Seq" and "Booking_ID" columns, ready to paste into a spreadsheet.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	result, err := generateFrom(cmd, args)
	if err != nil {
		return err
	}
	if err := checkResult(cmd, result); err != nil {
		return err
	}

	if err := boardingService.CopyToClipboard(result.Sequence); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}

	cmd.Printf("Copied %d bookings to the clipboard\n", len(result.Sequence))
	return nil
}
