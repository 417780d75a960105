package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec"
	"github.com/custodia-labs/boardseq/internal/adapters/driven/codec/tabular"
	"github.com/custodia-labs/boardseq/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/boardseq/internal/core/services"
)

// sampleBookings ranks as 120 then 101; 999 is skipped with a warning.
const sampleBookings = "Booking_ID,Seats\n101,A1,B1\n120,A20,C2\n999,??\n"

// sampleCSV is sampleBookings as exported CSV.
const sampleCSV = `"Seq","Booking_ID","Max_Seat_Number","Seats"
"1","120","20","A20;C2"
"2","101","1","A1;B1"`

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

// testEnv holds the services installed for one test.
type testEnv struct {
	clipboard *fakeClipboard
	settings  *services.SettingsService
}

// setupServices installs real services over an in-memory config store and
// restores the previous package state when the test ends.
func setupServices(t *testing.T) *testEnv {
	t.Helper()

	prevBoarding, prevIntake, prevSettings, prevNow := boardingService, intakeService, settingsService, now
	t.Cleanup(func() {
		boardingService, intakeService, settingsService, now = prevBoarding, prevIntake, prevSettings, prevNow
	})

	env := &testEnv{
		clipboard: &fakeClipboard{},
		settings:  services.NewSettingsService(memory.NewConfigStore()),
	}
	boardingService = services.NewBoardingService(tabular.NewDecoder(), codec.NewDefaultRegistry(), env.clipboard).
		WithSequenceReader(tabular.NewSequenceReader())
	intakeService = services.NewIntakeService(env.settings)
	settingsService = env.settings
	now = func() time.Time { return fixedNow }

	return env
}

// execute runs the root command and returns what it wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default, since cobra keeps parsed
// values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeFile creates a file in a fresh temp directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a reading test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
