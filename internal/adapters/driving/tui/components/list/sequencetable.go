// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// Column widths in cells.
const (
	rankWidth = 5
	idWidth   = 16
	maxWidth  = 9
)

// SequenceTable displays a ranked boarding sequence with a movable cursor.
type SequenceTable struct {
	entries  []domain.SequenceEntry
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewSequenceTable creates an empty sequence table.
func NewSequenceTable(s *styles.Styles) *SequenceTable {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SequenceTable{
		styles: s,
		width:  80,
		height: 20,
	}
}

// Update handles list navigation messages.
func (t *SequenceTable) Update(msg tea.Msg) (*SequenceTable, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			t.MoveUp()
		case "down", "j":
			t.MoveDown()
		case "home", "g":
			t.selected = 0
		case "end", "G":
			t.selected = max(len(t.entries)-1, 0)
		}
	}
	return t, nil
}

// View renders the visible window of the table.
func (t *SequenceTable) View() string {
	if len(t.entries) == 0 {
		return t.styles.Muted.Render("No bookings ranked")
	}

	lines := make([]string, 0, len(t.entries)+1)
	lines = append(lines, t.styles.TableHeader.Render(
		fmt.Sprintf("  %-*s %-*s %-*s %s", rankWidth, "Seq", idWidth, "Booking ID", maxWidth, "Max Seat", "Seats"),
	))

	start, end := t.window()
	for i := start; i < end; i++ {
		lines = append(lines, t.renderEntry(i, t.entries[i]))
	}

	if end-start < len(t.entries) {
		lines = append(lines, t.styles.Muted.Render(
			fmt.Sprintf("  showing %d-%d of %d", start+1, end, len(t.entries)),
		))
	}

	return strings.Join(lines, "\n")
}

// window returns the visible [start, end) range keeping the cursor on screen.
func (t *SequenceTable) window() (int, int) {
	visible := max(t.height-2, 1)

	start := 0
	if t.selected >= visible {
		start = t.selected - visible + 1
	}
	end := min(start+visible, len(t.entries))
	return start, end
}

func (t *SequenceTable) renderEntry(index int, e domain.SequenceEntry) string {
	seatsWidth := max(t.width-rankWidth-idWidth-maxWidth-8, 10)
	seats := truncate(strings.Join(e.Seats, ", "), seatsWidth)
	id := truncate(e.BookingID, idWidth)

	if index == t.selected {
		return t.styles.Selected.Render(fmt.Sprintf("> %-*d %-*s %-*d %s",
			rankWidth, e.Sequence, idWidth, id, maxWidth, e.MaxSeatNumber, seats))
	}
	return "  " +
		t.styles.Rank.Render(fmt.Sprintf("%-*d", rankWidth, e.Sequence)) + " " +
		t.styles.Normal.Render(fmt.Sprintf("%-*s %-*d ", idWidth, id, maxWidth, e.MaxSeatNumber)) +
		t.styles.Muted.Render(seats)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// SetEntries replaces the table contents and resets the cursor.
func (t *SequenceTable) SetEntries(entries []domain.SequenceEntry) {
	t.entries = entries
	t.selected = 0
}

// Entries returns the current entries.
func (t *SequenceTable) Entries() []domain.SequenceEntry {
	return t.entries
}

// Selected returns the cursor index.
func (t *SequenceTable) Selected() int {
	return t.selected
}

// MoveUp moves selection up.
func (t *SequenceTable) MoveUp() {
	if t.selected > 0 {
		t.selected--
	}
}

// MoveDown moves selection down.
func (t *SequenceTable) MoveDown() {
	if t.selected < len(t.entries)-1 {
		t.selected++
	}
}

// SetDimensions sets the component dimensions.
func (t *SequenceTable) SetDimensions(width, height int) {
	t.width = width
	t.height = height
}

// Count returns the number of entries.
func (t *SequenceTable) Count() int {
	return len(t.entries)
}
