package list

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/boardseq/internal/core/domain"
)

func makeEntries(n int) []domain.SequenceEntry {
	entries := make([]domain.SequenceEntry, n)
	for i := range entries {
		entries[i] = domain.SequenceEntry{
			Sequence:      i + 1,
			BookingID:     fmt.Sprintf("B%03d", i+1),
			MaxSeatNumber: n - i,
			Seats:         []string{fmt.Sprintf("A%d", n-i)},
		}
	}
	return entries
}

func TestNewSequenceTable(t *testing.T) {
	table := NewSequenceTable(nil)

	require.NotNil(t, table)
	assert.Equal(t, 0, table.Count())
	assert.Contains(t, table.View(), "No bookings ranked")
}

func TestSequenceTable_View(t *testing.T) {
	table := NewSequenceTable(nil)
	table.SetEntries([]domain.SequenceEntry{
		{Sequence: 1, BookingID: "121", MaxSeatNumber: 22, Seats: []string{"C20", "C22"}},
		{Sequence: 2, BookingID: "100", MaxSeatNumber: 15, Seats: []string{"B15"}},
	})

	view := table.View()

	assert.Contains(t, view, "Booking ID")
	assert.Contains(t, view, "121")
	assert.Contains(t, view, "C20, C22")
	assert.Contains(t, view, "100")
	assert.NotContains(t, view, "showing")
}

func TestSequenceTable_Navigation(t *testing.T) {
	table := NewSequenceTable(nil)
	table.SetEntries(makeEntries(3))

	table, _ = table.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, table.Selected())

	table, _ = table.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	table, _ = table.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, table.Selected())

	table, _ = table.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, table.Selected())

	table, _ = table.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	assert.Equal(t, 0, table.Selected())

	table, _ = table.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Equal(t, 2, table.Selected())
}

func TestSequenceTable_ScrollsToCursor(t *testing.T) {
	table := NewSequenceTable(nil)
	table.SetDimensions(80, 5)
	table.SetEntries(makeEntries(10))

	for range 6 {
		table.MoveDown()
	}
	start, end := table.window()

	assert.Equal(t, 4, start)
	assert.Equal(t, 7, end)
	assert.Contains(t, table.View(), "showing 5-7 of 10")
	assert.Contains(t, table.View(), "B007")
	assert.NotContains(t, table.View(), "B001")
}

func TestSequenceTable_SetEntriesResetsCursor(t *testing.T) {
	table := NewSequenceTable(nil)
	table.SetEntries(makeEntries(4))
	table.MoveDown()

	table.SetEntries(makeEntries(2))

	assert.Equal(t, 0, table.Selected())
	assert.Len(t, table.Entries(), 2)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
