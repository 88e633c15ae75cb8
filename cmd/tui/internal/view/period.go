package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/careercoin/internal/coin"
)

const dateLayout = "2006-01-02"

// Period is a preset window over the transaction log.
type Period int

const (
	PeriodToday Period = iota
	PeriodThisWeek
	PeriodThisMonth
	PeriodLast30Days
	PeriodAll
	PeriodCustom
)

func (p Period) String() string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodThisWeek:
		return "This Week"
	case PeriodThisMonth:
		return "This Month"
	case PeriodLast30Days:
		return "Last 30 Days"
	case PeriodAll:
		return "All Time"
	case PeriodCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// Filter turns p into a history filter relative to now. Weeks start on Monday.
// Custom has no fixed window and yields the zero filter.
func (p Period) Filter(now time.Time) coin.HistoryFilter {
	today := startOfDay(now)

	var start time.Time

	switch p {
	case PeriodToday:
		start = today
	case PeriodThisWeek:
		offset := (int(today.Weekday()) + 6) % 7
		start = today.AddDate(0, 0, -offset)
	case PeriodThisMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	case PeriodLast30Days:
		start = today.AddDate(0, 0, -29)
	default:
		return coin.HistoryFilter{}
	}

	return dayRange(start, today)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayRange covers whole days from first through last inclusive.
func dayRange(first, last time.Time) coin.HistoryFilter {
	start := startOfDay(first)
	end := startOfDay(last).AddDate(0, 0, 1).Add(-time.Nanosecond)

	return coin.HistoryFilter{StartDate: &start, EndDate: &end}
}

var errRangeOrder = errors.New("start date is after end date")

// parseCustomRange reads two YYYY-MM-DD dates in loc.
func parseCustomRange(from, to string, loc *time.Location) (coin.HistoryFilter, error) {
	first, err := time.ParseInLocation(dateLayout, strings.TrimSpace(from), loc)
	if err != nil {
		return coin.HistoryFilter{}, fmt.Errorf("invalid start date (YYYY-MM-DD)")
	}

	last, err := time.ParseInLocation(dateLayout, strings.TrimSpace(to), loc)
	if err != nil {
		return coin.HistoryFilter{}, fmt.Errorf("invalid end date (YYYY-MM-DD)")
	}

	if first.After(last) {
		return coin.HistoryFilter{}, errRangeOrder
	}

	return dayRange(first, last), nil
}

// PeriodSelectedMsg carries the window the user picked.
type PeriodSelectedMsg struct {
	Period Period
	Filter coin.HistoryFilter
}

type periodState int

const (
	periodStateSelect periodState = iota
	periodStateCustom
)

// PeriodPicker lets the user choose a preset or type a custom date range.
type PeriodPicker struct {
	state    periodState
	selected Period
	now      func() time.Time

	fromInput  textinput.Model
	toInput    textinput.Model
	focusIndex int

	err error
}

func NewPeriodPicker(initial Period) PeriodPicker {
	from := textinput.New()
	from.Placeholder = "YYYY-MM-DD"
	from.CharLimit = 10
	from.Width = 12
	from.Prompt = "From: "

	to := textinput.New()
	to.Placeholder = "YYYY-MM-DD"
	to.CharLimit = 10
	to.Width = 12
	to.Prompt = "To:   "

	return PeriodPicker{
		selected:  initial,
		now:       time.Now,
		fromInput: from,
		toInput:   to,
	}
}

func (m PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.state == periodStateSelect {
			return m.updateSelect(keyMsg)
		}

		if next, cmd, handled := m.updateCustom(keyMsg); handled {
			return next, cmd
		}
	}

	if m.state != periodStateCustom {
		return m, nil
	}

	var fromCmd, toCmd tea.Cmd
	m.fromInput, fromCmd = m.fromInput.Update(msg)
	m.toInput, toCmd = m.toInput.Update(msg)

	return m, tea.Batch(fromCmd, toCmd)
}

func (m PeriodPicker) updateSelect(msg tea.KeyMsg) (PeriodPicker, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > PeriodToday {
			m.selected--
		}
	case "down", "j":
		if m.selected < PeriodCustom {
			m.selected++
		}
	case "enter":
		if m.selected == PeriodCustom {
			m.state = periodStateCustom
			m.focusIndex = 0
			m.fromInput.Focus()

			return m, textinput.Blink
		}

		selected := PeriodSelectedMsg{Period: m.selected, Filter: m.selected.Filter(m.now())}

		return m, func() tea.Msg { return selected }
	}

	return m, nil
}

func (m PeriodPicker) updateCustom(msg tea.KeyMsg) (PeriodPicker, tea.Cmd, bool) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = 1 - m.focusIndex
		m.fromInput.Blur()
		m.toInput.Blur()

		if m.focusIndex == 0 {
			m.fromInput.Focus()
		} else {
			m.toInput.Focus()
		}

		return m, textinput.Blink, true
	case "enter":
		filter, err := parseCustomRange(m.fromInput.Value(), m.toInput.Value(), m.now().Location())
		if err != nil {
			m.err = err
			return m, nil, true
		}

		m.err = nil
		selected := PeriodSelectedMsg{Period: PeriodCustom, Filter: filter}

		return m, func() tea.Msg { return selected }, true
	case "esc":
		m.state = periodStateSelect
		m.err = nil

		return m, nil, true
	}

	return m, nil, false
}

func (m PeriodPicker) View() string {
	var b strings.Builder

	if m.state == periodStateCustom {
		b.WriteString("Custom range:\n\n")
		b.WriteString(m.fromInput.View() + "\n")
		b.WriteString(m.toInput.View() + "\n\n")
		b.WriteString(faintStyle.Render("Enter: confirm | Tab: switch | Esc: presets"))
	} else {
		b.WriteString("Which transactions?\n\n")

		for p := PeriodToday; p <= PeriodCustom; p++ {
			if p == m.selected {
				b.WriteString(activeStyle("> " + p.String()))
			} else {
				b.WriteString("  " + p.String())
			}

			b.WriteString("\n")
		}

		b.WriteString("\n" + faintStyle.Render("Enter: select | Esc: back"))
	}

	if m.err != nil {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.err.Error()))
	}

	return b.String()
}

// IsSelecting reports whether the picker shows presets rather than the custom inputs.
func (m PeriodPicker) IsSelecting() bool {
	return m.state == periodStateSelect
}

func (m *PeriodPicker) Reset() {
	m.state = periodStateSelect
	m.err = nil
	m.fromInput.SetValue("")
	m.toInput.SetValue("")
}
