package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// WorkoutsModel is the scrollable list of every planned session.
type WorkoutsModel struct {
	plan  *plan.TrainingPlan
	units Units

	cursor   int
	offset   int
	pageSize int
}

// NewWorkoutsModel creates the workouts list screen.
func NewWorkoutsModel(p *plan.TrainingPlan, units Units) WorkoutsModel {
	return WorkoutsModel{
		plan:     p,
		units:    units,
		pageSize: 15,
	}
}

// Init initializes the workouts screen
func (m WorkoutsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m WorkoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			} else if m.offset+m.visibleCount() < len(m.plan.Workouts) {
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
			if m.offset+m.pageSize < len(m.plan.Workouts) {
				m.offset += m.pageSize
				m.cursor = 0
			}
		case "g":
			m.offset = 0
			m.cursor = 0
		case "G":
			if n := len(m.plan.Workouts); n > 0 {
				m.offset = (n - 1) / m.pageSize * m.pageSize
				m.cursor = n - 1 - m.offset
			}
		case "enter":
			if i := m.offset + m.cursor; i < len(m.plan.Workouts) {
				return m, func() tea.Msg {
					return OpenWorkoutMsg{Index: i}
				}
			}
		}
	}
	return m, nil
}

// JumpToWeek positions the list on the first workout of the given plan week.
func (m WorkoutsModel) JumpToWeek(week int) WorkoutsModel {
	weekStart := m.plan.Config.StartDate.AddDate(0, 0, (week-1)*7)
	for i, w := range m.plan.Workouts {
		if !w.Date.Before(weekStart) {
			m.offset = i / m.pageSize * m.pageSize
			m.cursor = i - m.offset
			return m
		}
	}
	return m
}

func (m WorkoutsModel) visibleCount() int {
	n := len(m.plan.Workouts) - m.offset
	if n > m.pageSize {
		n = m.pageSize
	}
	return n
}

// View renders the workouts list
func (m WorkoutsModel) View() string {
	if len(m.plan.Workouts) == 0 {
		return "\n  No workouts scheduled."
	}

	var sections []string

	start := m.offset + 1
	end := m.offset + m.visibleCount()
	title := cardTitleStyle.Render(fmt.Sprintf("Workouts (%d-%d of %d)", start, end, len(m.plan.Workouts)))
	sections = append(sections, title)

	header := tableHeaderStyle.Render(fmt.Sprintf("   %-6s  %-3s  %-11s  %-26s  %6s  %9s  %5s",
		"Date", "Day", "Type", "Name", "Time", "Distance", "TSS"))
	sections = append(sections, header)

	for i := 0; i < m.visibleCount(); i++ {
		w := m.plan.Workouts[m.offset+i]

		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		row := fmt.Sprintf("%s%-6s  %-3s  %-11s  %-26s  %6s  %9s  %5.0f",
			cursor,
			w.Date.Format("Jan 02"),
			w.Date.Format("Mon"),
			w.Type.Label(),
			truncate(w.Name, 26),
			formatDuration(w.Targets.DurationSeconds),
			m.units.FormatDistance(w.Targets.DistanceMeters),
			w.Targets.TSS,
		)

		if i == m.cursor {
			sections = append(sections, tableSelectedStyle.Render(row))
		} else {
			sections = append(sections, tableRowStyle.Render(row))
		}
	}

	if i := m.offset + m.cursor; i < len(m.plan.Workouts) {
		sections = append(sections, m.renderSelection(m.plan.Workouts[i]))
	}

	help := statusStyle.Render("\n  enter: view workout  j/k: navigate  pgup/pgdn: page  g/G: first/last")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m WorkoutsModel) renderSelection(w plan.PlannedWorkout) string {
	class := w.Type.Class()
	head := fmt.Sprintf("%s  %s - %s effort, %d segments",
		w.Date.Format("Monday, January 2"),
		classStyle(class).Render(w.Type.Label()),
		class,
		len(w.Segments),
	)

	pace := fmt.Sprintf("Avg intensity %.0f%% of threshold  -  recover %s before the next quality session",
		w.Targets.IntensityPercent,
		formatRecovery(w.Targets.RecoveryHours),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, head, statusStyle.Render(pace)))
}

func formatRecovery(hours float64) string {
	if hours >= 24 {
		return fmt.Sprintf("%.0fh (%.1f days)", hours, hours/24)
	}
	return fmt.Sprintf("%.0fh", hours)
}
