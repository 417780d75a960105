package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// captureApp replaces runApp for one test and returns the app it was given.
func captureApp(t *testing.T, runErr error) **tui.App {
	t.Helper()
	prev := runApp
	t.Cleanup(func() { runApp = prev })

	var got *tui.App
	runApp = func(app *tui.App) error {
		got = app
		return runErr
	}
	return &got
}

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui [file]", tuiCmd.Use)
}

func TestTUICmd_StartsOnEntry(t *testing.T) {
	setupServices(t)
	app := captureApp(t, nil)

	_, _, err := execute(t, "", "tui")

	require.NoError(t, err)
	require.NotNil(t, *app)
	assert.Equal(t, messages.ViewEntry, (*app).CurrentView())
}

func TestTUICmd_WithFileStartsOnResults(t *testing.T) {
	setupServices(t)
	app := captureApp(t, nil)
	path := writeFile(t, "bookings.csv", sampleBookings)

	_, _, err := execute(t, "", "tui", path)

	require.NoError(t, err)
	require.NotNil(t, *app)
	assert.Equal(t, messages.ViewResults, (*app).CurrentView())
	assert.Equal(t, "120", (*app).Result().Sequence[0].BookingID)
}

func TestTUICmd_FileRejected(t *testing.T) {
	setupServices(t)
	captureApp(t, nil)
	path := writeFile(t, "bookings.pdf", sampleBookings)

	_, _, err := execute(t, "", "tui", path)

	assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
}

func TestTUICmd_RunError(t *testing.T) {
	setupServices(t)
	captureApp(t, errors.New("no tty"))

	_, _, err := execute(t, "", "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TUI error: no tty")
}

func TestTUICmd_ServiceNotConfigured(t *testing.T) {
	setupServices(t)
	captureApp(t, nil)
	boardingService = nil

	_, _, err := execute(t, "", "tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boarding service not configured")
}
