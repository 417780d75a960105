package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/views/entry"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/views/results"
	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// entryView is the manual booking form.
	entryView *entry.View

	// resultsView shows the last generated sequence.
	resultsView *results.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when help closes.
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		entryView:   entry.NewView(s, km, ports.Boarding),
		resultsView: results.NewView(s, km, ports.Boarding, ports.Settings),
		currentView: messages.ViewEntry,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// SetInitialResult opens the app on the results view, e.g. for a booking file
// named on the command line.
func (a *App) SetInitialResult(result domain.ProcessingResult, source string) {
	a.resultsView.SetResult(result, source)
	a.currentView = messages.ViewResults
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("boardseq"),
		a.entryView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.SequenceGenerated:
		a.resultsView.SetResult(msg.Result, msg.Source)
		a.resultsView.SetDimensions(a.width, a.height)
		a.currentView = messages.ViewResults
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewEntry {
			return a, a.entryView.Init()
		}
		return a, nil

	case messages.SequenceCopied:
		a.err = msg.Err
		a.resultsView, cmd = a.resultsView.Update(msg)
		return a, cmd

	case messages.SequenceExported:
		a.err = msg.Err
		a.resultsView, cmd = a.resultsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a.forward(msg)
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global quit with ctrl+c
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// The entry form takes every other key as text.
	if a.currentView == messages.ViewEntry {
		return a.forward(msg)
	}

	switch {
	case keymap.Matches(key, a.keymap.Quit):
		return a, tea.Quit
	case a.currentView == messages.ViewHelp:
		if keymap.Matches(key, a.keymap.Back) || keymap.Matches(key, a.keymap.Help) {
			a.currentView = a.previousView
		}
		return a, nil
	case keymap.Matches(key, a.keymap.Help):
		a.previousView = a.currentView
		a.currentView = messages.ViewHelp
		return a, nil
	}

	return a.forward(msg)
}

// forward passes a message to the active view.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewEntry:
		a.entryView, cmd = a.entryView.Update(msg)
	case messages.ViewResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewResults:
		return a.resultsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.entryView.View()
	}
}

// viewHelp renders the keybinding reference.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	titles := []string{"Entry", "Results", "General"}
	for i, group := range a.keymap.FullHelp() {
		if i < len(titles) {
			b.WriteString(a.styles.Subtitle.Render(titles[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-12s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application. Cancelling the app context ends the program.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
		return nil
	}
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Result returns the result shown on the results view.
func (a *App) Result() domain.ProcessingResult {
	return a.resultsView.Result()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.entryView.SetDimensions(width, height)
	a.resultsView.SetDimensions(width, height)
}
