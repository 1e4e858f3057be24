package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// WorkoutDetailModel is the single-workout drill-down screen.
type WorkoutDetailModel struct {
	plan     *plan.TrainingPlan
	units    Units
	index    int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewWorkoutDetailModel creates a detail model for the workout at index.
func NewWorkoutDetailModel(p *plan.TrainingPlan, units Units, index, width, height int) WorkoutDetailModel {
	m := WorkoutDetailModel{
		plan:   p,
		units:  units,
		index:  index,
		width:  width,
		height: height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6) // Reserve space for header/footer
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the workout detail screen
func (m WorkoutDetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m WorkoutDetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the workout detail screen
func (m WorkoutDetailModel) View() string {
	if m.index < 0 || m.index >= len(m.plan.Workouts) {
		return "\n  No workout selected."
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  esc: back to list  j/k or arrows: scroll")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m WorkoutDetailModel) workout() plan.PlannedWorkout {
	return m.plan.Workouts[m.index]
}

func (m WorkoutDetailModel) renderContent() string {
	if m.index < 0 || m.index >= len(m.plan.Workouts) {
		return "No data"
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderTargets())

	if w := m.workout(); len(w.Segments) > 0 {
		sections = append(sections, m.renderSegments())
	}

	if w := m.workout(); w.Description != "" {
		sections = append(sections, m.renderDescription())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m WorkoutDetailModel) renderHeader() string {
	w := m.workout()
	title := cardTitleStyle.Render(w.Name)

	week := m.weekNumber(w)
	date := fmt.Sprintf("%s - week %d, %s phase",
		w.Date.Format("Monday, January 2, 2006"), week, m.phaseFor(week).Label())
	subtitle := lipgloss.NewStyle().Foreground(mutedColor).Render(date)

	class := w.Type.Class()
	stats := fmt.Sprintf("%s  •  %s  •  %s  •  %.0f TSS",
		classStyle(class).Render(w.Type.Label()),
		m.units.FormatDistance(w.Targets.DistanceMeters),
		formatDuration(w.Targets.DurationSeconds),
		w.Targets.TSS,
	)

	return lipgloss.JoinVertical(lipgloss.Left, "", title, subtitle, stats, "")
}

func (m WorkoutDetailModel) renderTargets() string {
	w := m.workout()
	var lines []string

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Targets"))

	lines = append(lines, fmt.Sprintf("  Overall Pace:        %s", m.units.FormatPace(w.Targets.DurationSeconds, w.Targets.DistanceMeters)))
	lines = append(lines, fmt.Sprintf("  Avg Intensity:       %.0f%% of threshold speed", w.Targets.IntensityPercent))
	lines = append(lines, fmt.Sprintf("  Training Load:       %.0f TSS", w.Targets.TSS))
	lines = append(lines, fmt.Sprintf("  Recovery Window:     %s before the next quality session", formatRecovery(w.Targets.RecoveryHours)))

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m WorkoutDetailModel) renderSegments() string {
	w := m.workout()
	var lines []string

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Segments"))

	header := fmt.Sprintf("  %-3s  %-22s  %6s  %6s  %-9s  %-14s  %-9s  %s",
		"#", "Segment", "Time", "Effort", "Zone", "Pace", "HR", "Cadence")
	lines = append(lines, lipgloss.NewStyle().Foreground(primaryColor).Render(header))

	// Find the hardest segment for highlighting
	peak := 0.0
	for _, s := range w.Segments {
		if s.IntensityPercent > peak {
			peak = s.IntensityPercent
		}
	}

	for i, s := range w.Segments {
		name := s.Name
		if s.Repeats() > 1 {
			name = fmt.Sprintf("%dx %s", s.Repeats(), name)
		}

		pace := "-"
		if s.TargetPace != nil {
			pace = m.units.FormatPaceRange(s.TargetPace.FastSecPerKm, s.TargetPace.SlowSecPerKm)
		}

		hr := "-"
		if s.TargetHR != nil {
			hr = fmt.Sprintf("%d-%d", s.TargetHR.MinBPM, s.TargetHR.MaxBPM)
		}

		cadence := "-"
		if s.CadenceSPM != nil {
			cadence = fmt.Sprintf("%d spm", *s.CadenceSPM)
		}

		row := fmt.Sprintf("  %-3d  %-22s  %6s  %5.0f%%  %-9s  %-14s  %-9s  %s",
			i+1,
			truncate(name, 22),
			formatDuration(s.DurationSeconds),
			s.IntensityPercent,
			fmt.Sprintf("Z%d %s", s.Zone, s.Zone.Name()),
			pace,
			hr,
			cadence,
		)

		// Highlight the peak-effort segments
		if s.IntensityPercent == peak && peak > 0 {
			lines = append(lines, lipgloss.NewStyle().Foreground(secondaryColor).Bold(true).Render(row))
		} else {
			lines = append(lines, row)
		}
	}

	total := formatDuration(w.SegmentSeconds())
	lines = append(lines, statusStyle.Render(fmt.Sprintf("  %d segments, %s total", len(w.Segments), total)))

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m WorkoutDetailModel) renderDescription() string {
	w := m.workout()
	var lines []string

	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Session Notes"))

	width := 72
	if m.width > 0 && m.width-8 < width {
		width = m.width - 8
	}
	body := lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(w.Description)
	lines = append(lines, body)

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// weekNumber returns the 1-based plan week this workout falls in.
func (m WorkoutDetailModel) weekNumber(w plan.PlannedWorkout) int {
	days := int(w.Date.Sub(m.plan.Config.StartDate).Hours() / 24)
	if days < 0 {
		return 1
	}
	return days/7 + 1
}

func (m WorkoutDetailModel) phaseFor(week int) plan.Phase {
	for _, b := range m.plan.Blocks {
		for _, mc := range b.Microcycles {
			if mc.WeekNumber == week {
				return mc.Phase
			}
		}
	}
	return plan.PhaseBase
}
