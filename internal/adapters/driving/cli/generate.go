package cli

import (
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [file|-]",
	Short: "Print the boarding sequence for a booking file",
	Long: `Reads bookings from a CSV or TXT file, or from stdin when the file is
omitted or "-", and prints them in boarding order.

Bookings with no usable seat are reported as warnings on stderr. If no
booking can be ranked the command fails and lists every problem found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("format", "f", "", "output format: table, csv, json or yaml (default table on a terminal, csv otherwise)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	flag, _ := cmd.Flags().GetString("format")
	format, err := resolveOutputFormat(cmd, flag)
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

	return printSequence(cmd, result.Sequence, format)
}
