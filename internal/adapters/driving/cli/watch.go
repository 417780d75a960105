package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/boardseq/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Reprint the boarding sequence whenever a booking file changes",
	Long: `Prints the boarding sequence for a booking file, then watches the file and
prints it again after every save. Bursts of saves are coalesced so the
sequence is regenerated at most once per --interval.

Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringP("format", "f", "", "output format: table, csv, json or yaml")
	watchCmd.Flags().Duration("interval", 500*time.Millisecond, "minimum time between regenerations")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	flag, _ := cmd.Flags().GetString("format")
	format, err := resolveOutputFormat(cmd, flag)
	if err != nil {
		return err
	}
	interval, _ := cmd.Flags().GetDuration("interval")

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files on save, so watch the parent directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	renderWatched(cmd, path, format)
	return watchLoop(cmd.Context(), cmd, watcher, path, format, interval)
}

// watchLoop regenerates on every change to path until ctx is done.
func watchLoop(
	ctx context.Context,
	cmd *cobra.Command,
	watcher *fsnotify.Watcher,
	path, format string,
	interval time.Duration,
) error {
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			logger.Debug("Change detected: %s", event)

			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			drainEvents(watcher)
			renderWatched(cmd, path, format)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)
		}
	}
}

// drainEvents discards events queued while waiting for the limiter.
func drainEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}

// renderWatched prints one regeneration. Errors are reported and the watch
// continues, since the file may be mid-edit.
func renderWatched(cmd *cobra.Command, path, format string) {
	cmd.Printf("\n[%s] %s\n", now().Format("15:04:05"), filepath.Base(path))

	result, err := generateFrom(cmd, []string{path})
	if err == nil {
		err = checkResult(cmd, result)
	}
	if err == nil {
		err = printSequence(cmd, result.Sequence, format)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	}
}
