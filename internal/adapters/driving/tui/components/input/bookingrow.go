// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/boardseq/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/boardseq/internal/core/domain"
)

// Field identifies one input of a booking row.
type Field int

const (
	// FieldID is the booking identifier input.
	FieldID Field = iota
	// FieldSeats is the free-typed seat list input.
	FieldSeats
)

// BookingRow pairs a booking ID input with a seats input.
type BookingRow struct {
	id     textinput.Model
	seats  textinput.Model
	styles *styles.Styles
	focus  Field
	active bool
}

// NewBookingRow creates an empty, unfocused booking row.
func NewBookingRow(s *styles.Styles) *BookingRow {
	if s == nil {
		s = styles.DefaultStyles()
	}

	id := textinput.New()
	id.Placeholder = "Booking ID"
	id.CharLimit = 64
	id.Width = 14

	seats := textinput.New()
	seats.Placeholder = "Seats, e.g. A1, B2"
	seats.CharLimit = 512
	seats.Width = 40

	return &BookingRow{
		id:     id,
		seats:  seats,
		styles: s,
	}
}

// Update forwards input to the focused field.
func (r *BookingRow) Update(msg tea.Msg) (*BookingRow, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case !r.active:
	case r.focus == FieldID:
		r.id, cmd = r.id.Update(msg)
	default:
		r.seats, cmd = r.seats.Update(msg)
	}
	return r, cmd
}

// View renders both inputs side by side.
func (r *BookingRow) View() string {
	idStyle, seatStyle := r.styles.InputField, r.styles.InputField
	if r.active {
		if r.focus == FieldID {
			idStyle = r.styles.FocusedInput
		} else {
			seatStyle = r.styles.FocusedInput
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		idStyle.Render(r.id.View()),
		" ",
		seatStyle.Render(r.seats.View()),
	)
}

// Value returns the row's raw text.
func (r *BookingRow) Value() domain.ManualRow {
	return domain.ManualRow{BookingID: r.id.Value(), Seats: r.seats.Value()}
}

// SetValue fills both inputs.
func (r *BookingRow) SetValue(row domain.ManualRow) {
	r.id.SetValue(row.BookingID)
	r.seats.SetValue(row.Seats)
}

// Focus moves the cursor into the given field.
func (r *BookingRow) Focus(f Field) tea.Cmd {
	r.active = true
	r.focus = f
	if f == FieldID {
		r.seats.Blur()
		return r.id.Focus()
	}
	r.id.Blur()
	return r.seats.Focus()
}

// Blur removes focus from both inputs.
func (r *BookingRow) Blur() {
	r.active = false
	r.id.Blur()
	r.seats.Blur()
}

// Focused returns whether the row holds the cursor.
func (r *BookingRow) Focused() bool {
	return r.active
}

// FocusedField returns the field that holds, or last held, the cursor.
func (r *BookingRow) FocusedField() Field {
	return r.focus
}

// SetWidth divides width between the two inputs.
func (r *BookingRow) SetWidth(width int) {
	seatsWidth := width - r.id.Width - 10
	if seatsWidth < 20 {
		seatsWidth = 20
	}
	r.seats.Width = seatsWidth
}

// IsEmpty returns whether both inputs are blank.
func (r *BookingRow) IsEmpty() bool {
	return r.id.Value() == "" && r.seats.Value() == ""
}
