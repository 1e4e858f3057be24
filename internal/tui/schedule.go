package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// ScheduleModel lists the plan's weeks with phase and load context.
type ScheduleModel struct {
	plan  *plan.TrainingPlan
	units Units

	weeks    []plan.WeeklyMicrocycle
	cursor   int
	offset   int
	pageSize int
}

// NewScheduleModel creates the schedule screen.
func NewScheduleModel(p *plan.TrainingPlan, units Units) ScheduleModel {
	var weeks []plan.WeeklyMicrocycle
	for _, b := range p.Blocks {
		weeks = append(weeks, b.Microcycles...)
	}
	return ScheduleModel{
		plan:     p,
		units:    units,
		weeks:    weeks,
		pageSize: 12,
	}
}

// Init initializes the schedule screen
func (m ScheduleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ScheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				m.offset -= m.pageSize
				m.cursor = m.pageSize - 1
			}
		case "down", "j":
			if m.cursor < m.visibleCount()-1 {
				m.cursor++
			} else if m.offset+m.visibleCount() < len(m.weeks) {
				m.offset += m.pageSize
				m.cursor = 0
			}
		case "pgup":
			if m.offset > 0 {
				m.offset -= m.pageSize
				if m.offset < 0 {
					m.offset = 0
				}
				m.cursor = 0
			}
		case "pgdown":
			if m.offset+m.pageSize < len(m.weeks) {
				m.offset += m.pageSize
				m.cursor = 0
			}
		case "enter":
			if wk, ok := m.selected(); ok {
				week := wk.WeekNumber
				return m, func() tea.Msg {
					return OpenWeekMsg{Week: week}
				}
			}
		}
	}
	return m, nil
}

func (m ScheduleModel) visibleCount() int {
	n := len(m.weeks) - m.offset
	if n > m.pageSize {
		n = m.pageSize
	}
	return n
}

func (m ScheduleModel) selected() (plan.WeeklyMicrocycle, bool) {
	i := m.offset + m.cursor
	if i < 0 || i >= len(m.weeks) {
		return plan.WeeklyMicrocycle{}, false
	}
	return m.weeks[i], true
}

// View renders the schedule
func (m ScheduleModel) View() string {
	if len(m.weeks) == 0 {
		return "\n  No weeks scheduled."
	}

	var sections []string

	start := m.offset + 1
	end := m.offset + m.visibleCount()
	title := cardTitleStyle.Render(fmt.Sprintf("Schedule (weeks %d-%d of %d)", start, end, len(m.weeks)))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-4s  %-7s  %-9s  %-26s  %9s  %7s  %6s",
		"Week", "Start", "Phase", "Pattern", "Distance", "Time", "TSS"))
	sections = append(sections, header)

	for i := 0; i < m.visibleCount(); i++ {
		wk := m.weeks[m.offset+i]

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		pattern := wk.Pattern
		if wk.Deload {
			pattern = "deload: " + pattern
		}

		row := fmt.Sprintf("%s%-4d  %-7s  %-9s  %-26s  %9s  %7s  %6.0f",
			cursor,
			wk.WeekNumber,
			wk.StartDate.Format("Jan 02"),
			wk.Phase.Label(),
			truncate(pattern, 26),
			m.units.FormatDistance(wk.TotalDistanceMeters),
			formatDuration(wk.TotalDurationSeconds),
			wk.TotalLoad,
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	if wk, ok := m.selected(); ok {
		sections = append(sections, m.renderWeekSummary(wk))
	}

	help := statusStyle.Render("\n  enter: open week workouts  j/k: navigate  pgup/pgdn: page")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ScheduleModel) renderWeekSummary(wk plan.WeeklyMicrocycle) string {
	phase := phaseStyle(wk.Phase).Render(wk.Phase.Label())
	head := fmt.Sprintf("%s week of the plan - %s phase, %d sessions",
		humanize.Ordinal(wk.WeekNumber), phase, len(wk.Workouts))

	recovery := fmt.Sprintf("Recovery ratio %.0f%%", wk.RecoveryRatio*100)
	if wk.Deload {
		recovery += "  (deload week)"
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, head, statusStyle.Render(recovery)))
}
