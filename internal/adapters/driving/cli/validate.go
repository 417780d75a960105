package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Check a booking file without printing the sequence",
	Long: `Reports every booking that would be skipped and how many can be ranked.

With --exported, the input is instead a CSV previously written by export,
and the command checks that its ranks, seats and boarding order are intact.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("exported", false, "validate an exported CSV sequence instead of bookings")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if exported, _ := cmd.Flags().GetBool("exported"); exported {
		return runValidateExported(cmd, args)
	}

	result, err := generateFrom(cmd, args)
	if err != nil {
		return err
	}
	if err := checkResult(cmd, result); err != nil {
		return err
	}

	cmd.Printf("%d bookings can be ranked", len(result.Sequence))
	if n := len(result.Warnings); n > 0 {
		cmd.Printf(", %d skipped\n", n)
	} else {
		cmd.Println()
	}
	return nil
}

func runValidateExported(cmd *cobra.Command, args []string) error {
	if boardingService == nil {
		return errors.New("boarding service not configured")
	}

	text, err := readBookings(cmd, args)
	if err != nil {
		return err
	}

	entries, err := boardingService.VerifyExport(text)
	if err != nil {
		return err
	}

	cmd.Printf("Exported sequence is valid (%d bookings)\n", len(entries))
	return nil
}
