// Package display is an interactive terminal calendar browser for
// activity records.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/McCune1224/matrix-miles/internal/pkg/calendar"
)

// messages

type monthDerivedMsg struct {
	month calendar.Month
	days  calendar.DaySet
	stats calendar.ExtractStats
	err   error
}

// styles

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("40"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(1, 2)
)

// model

type model struct {
	records []calendar.Activity
	maxDays int

	month calendar.Month
	days  calendar.DaySet
	stats calendar.ExtractStats
	err   error

	spinner spinner.Model
	loading bool
}

func newModel(records []calendar.Activity, start calendar.Month, maxDays int) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))

	return model{
		records: records,
		maxDays: maxDays,
		month:   start,
		spinner: s,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		deriveCmd(m.records, m.month, m.maxDays),
	)
}

func deriveCmd(records []calendar.Activity, month calendar.Month, maxDays int) tea.Cmd {
	return func() tea.Msg {
		if err := month.Validate(); err != nil {
			return monthDerivedMsg{month: month, err: err}
		}

		days, stats := calendar.ExtractDaysStats(calendar.FilterMonth(records, month), maxDays)

		return monthDerivedMsg{month: month, days: days, stats: stats}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.month = m.month.Prev()
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, deriveCmd(m.records, m.month, m.maxDays))
		case "right", "l":
			m.month = m.month.Next()
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, deriveCmd(m.records, m.month, m.maxDays))
		}

	case monthDerivedMsg:
		// A stale derivation can land after another keypress; only the
		// current month's result applies.
		if msg.month != m.month {
			return m, nil
		}
		m.loading = false
		m.days = msg.days
		m.stats = msg.stats
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	title := titleStyle.Render(m.month.String())
	if m.loading {
		title += "  " + m.spinner.View()
	}
	b.WriteString(title + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
		return borderStyle.Render(b.String())
	}

	b.WriteString(m.viewGrid())

	footer := fmt.Sprintf("%d active days", m.days.Len())
	if dropped := m.stats.Skipped + m.stats.OutOfRange; dropped > 0 {
		footer += fmt.Sprintf("  •  %d malformed records", dropped)
	}
	footer += "  •  ←/→ month  •  q quit"
	b.WriteString("\n" + footerStyle.Render(footer))

	return borderStyle.Render(b.String())
}

// viewGrid renders the month grid with the same geometry as
// calendar.Render, styled per cell.
func (m model) viewGrid() string {
	days, err := m.month.DaysInMonth()
	if err != nil {
		return errorStyle.Render(err.Error()) + "\n"
	}

	first, err := m.month.FirstWeekday()
	if err != nil {
		return errorStyle.Render(err.Error()) + "\n"
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Su Mo Tu We Th Fr Sa") + "\n")
	b.WriteString(strings.Repeat("   ", first))

	weekday := first
	for day := 1; day <= days; day++ {
		if m.days.Contains(day) {
			b.WriteString(activeStyle.Render(" X "))
		} else {
			b.WriteString(inactiveStyle.Render(" . "))
		}

		weekday++
		if weekday > 6 {
			b.WriteByte('\n')
			weekday = 0
		}
	}

	if weekday != 0 {
		b.WriteByte('\n')
	}

	return b.String()
}

// Run opens the calendar browser on the given month and blocks until
// the user quits.
func Run(records []calendar.Activity, start calendar.Month, maxDays int) error {
	if err := start.Validate(); err != nil {
		return err
	}

	program := tea.NewProgram(newModel(records, start, maxDays))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running calendar browser %w", err)
	}

	return nil
}
