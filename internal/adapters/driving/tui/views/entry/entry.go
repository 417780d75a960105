// Package entry provides the manual booking entry form for the TUI.
package entry

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/boardseq/internal/core/domain"
	"github.com/custodia-labs/boardseq/internal/core/ports/driving"
)

// Source names manually entered bookings in results.
const Source = "manual entry"

// View is a form of booking rows.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	rows      []*input.BookingRow
	current   int
	statusbar *status.Bar

	boarding driving.BoardingService

	problems []string
	width    int
	height   int
}

// NewView creates an entry form with a single empty row.
func NewView(s *styles.Styles, km *keymap.KeyMap, boarding driving.BoardingService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		boarding:  boarding,
		width:     80,
		height:    24,
	}
	first := input.NewBookingRow(s)
	first.Focus(input.FieldID)
	v.rows = []*input.BookingRow{first}
	return v
}

// Init starts the cursor blinking in the focused field.
func (v *View) Init() tea.Cmd {
	row := v.rows[v.current]
	return row.Focus(row.FocusedField())
}

// Update handles messages for the entry form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.rows[v.current], cmd = v.rows[v.current].Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Generate):
		return v, v.generate()
	case keymap.Matches(key, v.keymap.NextField):
		return v, v.moveFocus(1)
	case keymap.Matches(key, v.keymap.PrevField):
		return v, v.moveFocus(-1)
	case keymap.Matches(key, v.keymap.AddRow):
		return v, v.AddRow()
	case keymap.Matches(key, v.keymap.DeleteRow):
		return v, v.DeleteRow()
	}

	var cmd tea.Cmd
	v.rows[v.current], cmd = v.rows[v.current].Update(msg)
	v.refresh()
	return v, cmd
}

// moveFocus steps through fields row by row, wrapping at either end.
func (v *View) moveFocus(step int) tea.Cmd {
	fields := len(v.rows) * 2
	pos := v.current*2 + int(v.rows[v.current].FocusedField())
	pos = ((pos+step)%fields + fields) % fields

	v.rows[v.current].Blur()
	v.current = pos / 2
	return v.rows[v.current].Focus(input.Field(pos % 2))
}

// AddRow appends an empty row and focuses it.
func (v *View) AddRow() tea.Cmd {
	row := input.NewBookingRow(v.styles)
	row.SetWidth(v.width)
	v.rows = append(v.rows, row)

	v.rows[v.current].Blur()
	v.current = len(v.rows) - 1
	return row.Focus(input.FieldID)
}

// DeleteRow removes the focused row. The last remaining row is cleared instead.
func (v *View) DeleteRow() tea.Cmd {
	if len(v.rows) == 1 {
		v.rows[0].SetValue(domain.ManualRow{})
		v.refresh()
		return v.rows[0].Focus(input.FieldID)
	}

	v.rows = append(v.rows[:v.current], v.rows[v.current+1:]...)
	if v.current >= len(v.rows) {
		v.current = len(v.rows) - 1
	}
	v.refresh()
	return v.rows[v.current].Focus(input.FieldID)
}

// refresh re-checks every row so problems show while typing.
func (v *View) refresh() {
	_, v.problems = v.boarding.ParseRows(v.Rows())
	if v.statusbar.State() == status.StateError {
		v.statusbar.Clear()
	}
}

// generate ranks the complete rows. Row problems travel with the result
// so they are shown next to the sequence instead of blocking it.
func (v *View) generate() tea.Cmd {
	bookings, problems := v.boarding.ParseRows(v.Rows())
	v.problems = problems

	if len(bookings) == 0 {
		v.statusbar.SetState(status.StateError)
		if len(problems) > 0 {
			v.statusbar.SetMessage(fmt.Sprintf("fix %d row(s) before generating", len(problems)))
		} else {
			v.statusbar.SetMessage(domain.NoValidBookingsMessage)
		}
		return nil
	}

	result := withRowProblems(v.boarding.Generate(bookings), problems)
	return func() tea.Msg {
		return messages.SequenceGenerated{Result: result, Source: Source}
	}
}

func withRowProblems(result domain.ProcessingResult, problems []string) domain.ProcessingResult {
	if len(problems) == 0 {
		return result
	}
	if result.Success {
		result.Warnings = append(append([]string{}, problems...), result.Warnings...)
	} else {
		result.Errors = append(append([]string{}, problems...), result.Errors...)
	}
	return result
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Boarding Sequence"))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render("Enter one booking per row. Seats may be separated by commas or spaces."))
	b.WriteString("\n\n")

	for i, row := range v.rows {
		marker := "  "
		if i == v.current {
			marker = v.styles.Selected.Render("> ")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			marker,
			v.styles.Muted.Render(fmt.Sprintf("%2d ", i+1)),
			row.View(),
		))
		b.WriteString("\n")
	}

	if len(v.problems) > 0 {
		b.WriteString("\n")
		for _, p := range v.problems {
			b.WriteString(v.styles.Error.Render(p))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// Rows returns the raw text of every row.
func (v *View) Rows() []domain.ManualRow {
	rows := make([]domain.ManualRow, len(v.rows))
	for i, r := range v.rows {
		rows[i] = r.Value()
	}
	return rows
}

// SetRows replaces the form contents. An empty list leaves one blank row.
func (v *View) SetRows(rows []domain.ManualRow) {
	v.rows = v.rows[:0]
	for _, r := range rows {
		row := input.NewBookingRow(v.styles)
		row.SetWidth(v.width)
		row.SetValue(r)
		v.rows = append(v.rows, row)
	}
	if len(v.rows) == 0 {
		v.rows = append(v.rows, input.NewBookingRow(v.styles))
	}
	v.current = 0
	v.rows[0].Focus(input.FieldID)
	v.refresh()
}

// Problems returns the current row problems.
func (v *View) Problems() []string {
	return v.problems
}

// Current returns the index of the focused row.
func (v *View) Current() int {
	return v.current
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width)
	for _, r := range v.rows {
		r.SetWidth(width)
	}
}
