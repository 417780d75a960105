// Package results provides the boarding sequence results view for the TUI.
package results

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driving"
)

// ErrNothingToExport is returned when copy or export runs without a sequence.
var ErrNothingToExport = errors.New("no boarding sequence to export")

// View shows a processing result.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	table     *list.SequenceTable
	statusbar *status.Bar

	boarding driving.BoardingService
	settings driving.SettingsService
	now      func() time.Time

	result domain.ProcessingResult
	source string
	width  int
	height int
}

// NewView creates a results view. settings may be nil, in which case
// exports use the default format and directory.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	boarding driving.BoardingService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		table:     list.NewSequenceTable(s),
		statusbar: status.NewBar(s, km),
		boarding:  boarding,
		settings:  settings,
		now:       time.Now,
		width:     80,
		height:    24,
	}
}

// WithClock overrides the clock used for export file names.
func (v *View) WithClock(now func() time.Time) *View {
	v.now = now
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetResult replaces the displayed result.
func (v *View) SetResult(result domain.ProcessingResult, source string) {
	v.result = result
	v.source = source
	v.table.SetEntries(result.Sequence)

	if result.Success {
		v.statusbar.SetState(status.StateGenerated)
		v.statusbar.SetCount(len(result.Sequence))
		v.statusbar.SetMessage("")
		return
	}
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(fmt.Sprintf("%d problem(s), nothing ranked", len(result.Errors)))
}

// Result returns the displayed result.
func (v *View) Result() domain.ProcessingResult {
	return v.result
}

// Update handles messages for the results view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SequenceCopied:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.statusbar.SetState(status.StateCopied)
		v.statusbar.SetCount(msg.Count)
		return v, nil

	case messages.SequenceExported:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.statusbar.SetState(status.StateExported)
		v.statusbar.SetMessage(msg.Path)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewEntry}
		}
	case keymap.Matches(key, v.keymap.Copy):
		return v, v.copySequence()
	case keymap.Matches(key, v.keymap.Export):
		return v, v.exportSequence()
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v *View) setError(err error) {
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

func (v *View) copySequence() tea.Cmd {
	if !v.result.Success {
		v.setError(ErrNothingToExport)
		return nil
	}
	entries := v.result.Sequence
	boarding := v.boarding
	return func() tea.Msg {
		return messages.SequenceCopied{Count: len(entries), Err: boarding.CopyToClipboard(entries)}
	}
}

func (v *View) exportSequence() tea.Cmd {
	if !v.result.Success {
		v.setError(ErrNothingToExport)
		return nil
	}
	format, dir := v.exportTarget()
	entries := v.result.Sequence
	at := v.now()
	boarding := v.boarding
	return func() tea.Msg {
		path, err := writeExport(boarding, entries, format, dir, at)
		return messages.SequenceExported{Path: path, Err: err}
	}
}

// exportTarget reads the configured format and directory, falling back to defaults.
func (v *View) exportTarget() (domain.ExportFormat, string) {
	defaults := domain.DefaultAppSettings().Export
	if v.settings == nil {
		return defaults.Format, defaults.Directory
	}
	cfg, err := v.settings.Get()
	if err != nil {
		return defaults.Format, defaults.Directory
	}
	format, dir := cfg.Export.Format, cfg.Export.Directory
	if !format.IsValid() {
		format = defaults.Format
	}
	if dir == "" {
		dir = defaults.Directory
	}
	return format, dir
}

func writeExport(
	boarding driving.BoardingService,
	entries []domain.SequenceEntry,
	format domain.ExportFormat,
	dir string,
	at time.Time,
) (string, error) {
	exp, err := boarding.Export(entries, format, at)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, exp.FileName)
	if err := os.WriteFile(path, exp.Content, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// View renders the results.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Boarding Sequence"))
	if v.source != "" {
		b.WriteString(v.styles.Subtitle.Render("  from " + v.source))
	}
	b.WriteString("\n\n")

	if v.result.Success {
		b.WriteString(v.table.View())
		b.WriteString("\n")
		for _, w := range v.result.Warnings {
			b.WriteString("\n")
			b.WriteString(v.styles.Warning.Render("! " + w))
		}
	} else {
		for _, e := range v.result.Errors {
			b.WriteString(v.styles.Error.Render("x " + e))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)

	// Leave room for title, warnings and status bar.
	tableHeight := height - 6 - len(v.result.Warnings)
	if tableHeight < 3 {
		tableHeight = 3
	}
	v.table.SetDimensions(width, tableHeight)
}
