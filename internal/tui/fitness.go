package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/AustinOrphan/training-plan-generator/internal/fitness"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// FitnessModel shows the fitness profile and load state the plan was built on.
type FitnessModel struct {
	plan  *plan.TrainingPlan
	units Units
}

// NewFitnessModel creates the fitness screen.
func NewFitnessModel(p *plan.TrainingPlan, units Units) FitnessModel {
	return FitnessModel{plan: p, units: units}
}

// Init initializes the fitness screen
func (m FitnessModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m FitnessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the fitness screen
func (m FitnessModel) View() string {
	var sections []string

	row := lipgloss.JoinHorizontal(lipgloss.Top, m.renderProfileCard(), m.renderLoadCard())
	sections = append(sections, row)

	sections = append(sections, m.renderLoadChart())

	if len(m.plan.Fitness.Defaulted) > 0 {
		note := fmt.Sprintf("  Estimated defaults used for: %s (provide run history or a fitness override to refine)",
			strings.Join(m.plan.Fitness.Defaulted, ", "))
		sections = append(sections, statusStyle.Render(note))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m FitnessModel) renderProfileCard() string {
	f := m.plan.Fitness
	var rows []string

	rows = append(rows, cardTitleStyle.Render("Fitness Profile"))
	rows = append(rows, RenderMetric("VDOT", fmt.Sprintf("%.1f (%s)", f.VDOT, fitness.VDOTLabel(f.VDOT)), ""))
	rows = append(rows, RenderMetric("Threshold Pace", m.units.FormatPacePerKm(f.ThresholdPaceSecPerKm), ""))
	rows = append(rows, RenderMetric("Critical Speed", fmt.Sprintf("%.2f m/s", f.CriticalSpeedMPS), ""))
	rows = append(rows, RenderMetric("D-prime", fmt.Sprintf("%.0f m", f.DPrimeMeters), ""))
	rows = append(rows, RenderMetric("Economy", fmt.Sprintf("%.0f beats/km", f.RunningEconomy), ""))
	rows = append(rows, RenderMetric("Weekly Volume", m.units.FormatDistance(f.WeeklyVolumeMeters), ""))
	rows = append(rows, RenderMetric("Longest Run", m.units.FormatDistance(f.LongestRunMeters), ""))
	rows = append(rows, RenderMetric("Experience", string(f.Experience), ""))
	rows = append(rows, RenderMetric("Recovery Score", fmt.Sprintf("%.0f/100", f.RecoveryScore), ""))
	if f.MaxHeartrate > 0 {
		rows = append(rows, RenderMetric("Max HR", fmt.Sprintf("%.0f bpm", f.MaxHeartrate), ""))
	}
	if f.TrainingAgeYears > 0 {
		rows = append(rows, RenderMetric("Training Age", fmt.Sprintf("%.1f yr", f.TrainingAgeYears), ""))
	}

	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m FitnessModel) renderLoadCard() string {
	load := m.plan.Load
	var rows []string

	rows = append(rows, cardTitleStyle.Render("Training Load"))
	rows = append(rows, RenderMetric("Acute (7d)", fmt.Sprintf("%.0f TSS", load.AcuteLoad), ""))
	rows = append(rows, RenderMetric("Chronic (28d)", fmt.Sprintf("%.0f TSS", load.ChronicLoad), ""))

	ratio := "n/a"
	if load.RatioValid {
		ratio = fmt.Sprintf("%.2f", load.Ratio)
	}
	rows = append(rows, RenderMetric("A:C Ratio", ratio, ""))
	rows = append(rows, RenderMetric("Status", m.statusLabel(load.Status), ""))
	rows = append(rows, RenderMetric("Trend", string(load.Trend), ""))

	risk := m.injuryRisk()
	rows = append(rows, RenderMetric("Injury Risk", fmt.Sprintf("%.0f/100 (%s)", risk.Score, risk.Band), ""))

	if load.Recommendation != "" {
		rows = append(rows, "")
		rows = append(rows, lipgloss.NewStyle().Foreground(mutedColor).Width(32).Render(load.Recommendation))
	}

	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m FitnessModel) statusLabel(s plan.LoadStatus) string {
	switch s {
	case plan.LoadOptimal:
		return successStyle.Render(string(s))
	case plan.LoadCaution:
		return warningStyle.Render(string(s))
	case plan.LoadHighRisk:
		return errorStyle.Render(string(s))
	default:
		return string(s)
	}
}

// injuryRisk scores the ramp into the plan's first week against the athlete's
// current load state.
func (m FitnessModel) injuryRisk() plan.InjuryRisk {
	var increasePct float64
	if current := m.plan.Fitness.WeeklyVolumeMeters; current > 0 {
		if first := m.firstWeekMeters(); first > 0 {
			increasePct = (first - current) / current * 100
		}
	}
	return fitness.InjuryRisk(m.plan.Load, increasePct, m.plan.Fitness.RecoveryScore)
}

func (m FitnessModel) firstWeekMeters() float64 {
	for _, b := range m.plan.Blocks {
		for _, mc := range b.Microcycles {
			return mc.TotalDistanceMeters
		}
	}
	return 0
}

func (m FitnessModel) renderLoadChart() string {
	var loads []float64
	for _, b := range m.plan.Blocks {
		for _, mc := range b.Microcycles {
			loads = append(loads, mc.TotalLoad)
		}
	}
	if len(loads) <= 2 {
		return ""
	}

	chart := asciigraph.Plot(loads,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	title := lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("  Planned Weekly Load (TSS)")
	return lipgloss.JoinVertical(lipgloss.Left, "", title, chart, "")
}
