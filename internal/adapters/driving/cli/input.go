package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// stdinArg selects standard input as the booking source.
const stdinArg = "-"

// errGenerationFailed is returned when no booking could be ranked.
var errGenerationFailed = errors.New("no boarding sequence generated")

// Output formats for printed sequences.
const (
	outputTable = "table"
	outputCSV   = "csv"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// readBookings returns the booking text named by args: a file path, "-" or
// nothing for stdin.
func readBookings(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == stdinArg {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	if intakeService == nil {
		return "", errors.New("intake service not configured")
	}
	return intakeService.ReadFile(args[0])
}

// generateFrom reads bookings and ranks them.
func generateFrom(cmd *cobra.Command, args []string) (domain.ProcessingResult, error) {
	if boardingService == nil {
		return domain.ProcessingResult{}, errors.New("boarding service not configured")
	}

	text, err := readBookings(cmd, args)
	if err != nil {
		return domain.ProcessingResult{}, err
	}

	return boardingService.GenerateFromText(text), nil
}

// checkResult prints warnings to stderr and turns a failed result into an error.
func checkResult(cmd *cobra.Command, result domain.ProcessingResult) error {
	if !result.Success {
		return fmt.Errorf("%w:\n  %s", errGenerationFailed, strings.Join(result.Errors, "\n  "))
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	return nil
}

// resolveOutputFormat picks the printed format. An empty flag means a table
// on a terminal and CSV otherwise.
func resolveOutputFormat(cmd *cobra.Command, flag string) (string, error) {
	switch strings.ToLower(flag) {
	case "":
		if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return outputTable, nil
		}
		return outputCSV, nil
	case outputTable:
		return outputTable, nil
	case outputCSV:
		return outputCSV, nil
	case outputJSON:
		return outputJSON, nil
	case outputYAML:
		return outputYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (use table, csv, json or yaml)", flag)
	}
}

// printSequence writes entries to stdout in the given output format.
func printSequence(cmd *cobra.Command, entries []domain.SequenceEntry, format string) error {
	if format == outputTable {
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(entries))
		return nil
	}

	export, err := boardingService.Export(entries, domain.ExportFormat(format), now())
	if err != nil {
		return fmt.Errorf("failed to format sequence: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err := out.Write(export.Content); err != nil {
		return err
	}
	if !strings.HasSuffix(string(export.Content), "\n") {
		fmt.Fprintln(out)
	}
	return nil
}

// renderTable draws the sequence as a bordered terminal table.
func renderTable(entries []domain.SequenceEntry) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))).
		Headers("Seq", "Booking ID", "Max Seat", "Seats").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	for _, e := range entries {
		t.Row(
			fmt.Sprintf("%d", e.Sequence),
			e.BookingID,
			fmt.Sprintf("%d", e.MaxSeatNumber),
			strings.Join(e.Seats, ", "),
		)
	}

	return t.String()
}
