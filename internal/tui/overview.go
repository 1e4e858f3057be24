package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
	"github.com/AustinOrphan/training-plan-generator/internal/workout"
)

// OverviewModel is the plan summary screen.
type OverviewModel struct {
	plan  *plan.TrainingPlan
	units Units
}

// NewOverviewModel creates the overview screen.
func NewOverviewModel(p *plan.TrainingPlan, units Units) OverviewModel {
	return OverviewModel{plan: p, units: units}
}

// Init initializes the overview screen
func (m OverviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m OverviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the overview
func (m OverviewModel) View() string {
	var sections []string

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderPlanCard(), "  ", m.renderVolumeCard())
	sections = append(sections, topRow)

	midRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderPhasesCard(), "  ", m.renderIntensityCard())
	sections = append(sections, midRow)

	if chart := m.renderVolumeChart(); chart != "" {
		sections = append(sections, chart)
	}

	if len(m.plan.Warnings) > 0 {
		sections = append(sections, m.renderWarnings())
	}

	help := statusStyle.Render("Press '2' for the schedule, '3' for workouts, '4' for fitness")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m OverviewModel) renderPlanCard() string {
	p := m.plan
	title := cardTitleStyle.Render("Plan")

	lines := []string{
		RenderMetric("Goal", p.Config.Goal.Label(), ""),
		RenderMetric("Methodology", p.Methodology, ""),
		RenderMetric("Weeks", fmt.Sprintf("%d", p.Config.TotalWeeks), ""),
		RenderMetric("Start", p.Config.StartDate.Format("Mon, Jan 2 2006"), ""),
	}
	if !p.Config.RaceDate.IsZero() {
		lines = append(lines, RenderMetric("Race Day", p.Config.RaceDate.Format("Mon, Jan 2 2006"), ""))
	}
	if secs := workout.PredictRaceSeconds(p.Fitness, p.Config.Goal); secs > 0 {
		lines = append(lines, RenderMetric("Predicted Race", formatRaceTime(secs), ""))
	}
	lines = append(lines,
		RenderMetric("Generated", humanize.Time(p.GeneratedAt), ""),
		RenderMetric("Plan ID", p.ID.String()[:8], ""),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderVolumeCard() string {
	s := m.plan.Summary
	title := cardTitleStyle.Render("Volume")

	lines := []string{
		RenderMetric("Total", m.units.FormatDistance(s.TotalDistanceMeters), ""),
		RenderMetric("Weekly Avg", m.units.FormatDistance(s.AvgWeeklyDistanceMeters), ""),
		RenderMetric("Peak Week", m.units.FormatDistance(s.PeakWeeklyDistanceMeters), ""),
		RenderMetric("Time", formatDuration(s.TotalDurationSeconds), ""),
		RenderMetric("Load", fmt.Sprintf("%.0f TSS", s.TotalTSS), ""),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderPhasesCard() string {
	s := m.plan.Summary
	title := cardTitleStyle.Render("Phases")

	lines := []string{
		RenderMetric("Workouts", fmt.Sprintf("%d", s.TotalWorkouts), ""),
		RenderMetric("Long Runs", fmt.Sprintf("%d", s.LongRunCount), ""),
		RenderMetric("Rest Days", fmt.Sprintf("%d", s.RestDays), ""),
		"",
	}
	for _, ph := range s.Phases {
		label := phaseStyle(ph.Phase).Render(fmt.Sprintf("%-9s", ph.Phase.Label()))
		lines = append(lines, label+fmt.Sprintf(" %2d wk  %9s  %3d runs",
			ph.Weeks, m.units.FormatDistance(ph.DistanceMeters), ph.WorkoutCount))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderIntensityCard() string {
	in := m.plan.Summary.Intensity
	title := cardTitleStyle.Render("Intensity Mix")

	row := func(label string, pct float64) string {
		return fmt.Sprintf("%-9s %5.1f%%  ", label, pct) + RenderProgressBar(pct/100, 14)
	}
	lines := []string{
		row("Easy", in.EasyPercent),
		row("Moderate", in.ModeratePercent),
		row("Hard", in.HardPercent),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(36).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m OverviewModel) renderVolumeChart() string {
	var meters []float64
	for _, b := range m.plan.Blocks {
		for _, mc := range b.Microcycles {
			meters = append(meters, mc.TotalDistanceMeters)
		}
	}
	if len(meters) <= 2 {
		return ""
	}

	title := cardTitleStyle.Render(fmt.Sprintf("Weekly Volume (%s)", m.units.DistanceLabel()))
	graph := asciigraph.Plot(m.units.ChartDistances(meters),
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m OverviewModel) renderWarnings() string {
	title := cardTitleStyle.Render("Scheduling Warnings")

	var lines []string
	for _, w := range m.plan.Warnings {
		lines = append(lines, warningStyle.Render("- "+w))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
