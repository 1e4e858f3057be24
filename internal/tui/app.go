package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AustinOrphan/training-plan-generator/internal/config"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Screen identifiers
type Screen int

const (
	ScreenOverview Screen = iota
	ScreenSchedule
	ScreenWorkouts
	ScreenWorkoutDetail
	ScreenFitness
	ScreenHelp
)

// App is the root Bubble Tea model: a read-only viewer over one generated
// training plan.
type App struct {
	screen     Screen
	prevScreen Screen

	plan  *plan.TrainingPlan
	units Units

	// Screen models
	overview OverviewModel
	schedule ScheduleModel
	workouts WorkoutsModel
	detail   WorkoutDetailModel
	fitness  FitnessModel
	help     HelpModel

	// Window dimensions
	width  int
	height int
}

// NewApp creates the viewer for a generated plan.
func NewApp(p *plan.TrainingPlan, display config.DisplayConfig) *App {
	units := NewUnits(display)
	return &App{
		screen:   ScreenOverview,
		plan:     p,
		units:    units,
		overview: NewOverviewModel(p, units),
		schedule: NewScheduleModel(p, units),
		workouts: NewWorkoutsModel(p, units),
		fitness:  NewFitnessModel(p, units),
		help:     NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenOverview
			return a, nil
		case "2":
			a.screen = ScreenSchedule
			return a, nil
		case "3":
			if a.screen != ScreenWorkoutDetail {
				a.screen = ScreenWorkouts
				return a, nil
			}
		case "4":
			a.screen = ScreenFitness
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
				return a, nil
			case ScreenWorkoutDetail:
				a.screen = ScreenWorkouts
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenWeekMsg:
		// Jump from the schedule into that week's sessions.
		a.workouts = a.workouts.JumpToWeek(msg.Week)
		a.screen = ScreenWorkouts
		return a, nil

	case OpenWorkoutMsg:
		a.detail = NewWorkoutDetailModel(a.plan, a.units, msg.Index, a.width, a.height)
		a.screen = ScreenWorkoutDetail
		return a, a.detail.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenOverview:
		var m tea.Model
		m, cmd = a.overview.Update(msg)
		a.overview = m.(OverviewModel)
	case ScreenSchedule:
		var m tea.Model
		m, cmd = a.schedule.Update(msg)
		a.schedule = m.(ScheduleModel)
	case ScreenWorkouts:
		var m tea.Model
		m, cmd = a.workouts.Update(msg)
		a.workouts = m.(WorkoutsModel)
	case ScreenWorkoutDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(WorkoutDetailModel)
	case ScreenFitness:
		var m tea.Model
		m, cmd = a.fitness.Update(msg)
		a.fitness = m.(FitnessModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenOverview:
		content = a.overview.View()
	case ScreenSchedule:
		content = a.schedule.View()
	case ScreenWorkouts:
		content = a.workouts.View()
	case ScreenWorkoutDetail:
		content = a.detail.View()
	case ScreenFitness:
		content = a.fitness.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render(a.plan.Config.Goal.Label() + " Training Plan")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Overview", ScreenOverview},
		{"2", "Schedule", ScreenSchedule},
		{"3", "Workouts", ScreenWorkouts},
		{"4", "Fitness", ScreenFitness},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		active := a.screen == item.screen ||
			(item.screen == ScreenWorkouts && a.screen == ScreenWorkoutDetail)
		if active {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	switch n := len(a.plan.Warnings); n {
	case 0:
		return ""
	case 1:
		return statusStyle.Render("1 scheduling warning - see Overview")
	default:
		return statusStyle.Render(fmt.Sprintf("%d scheduling warnings - see Overview", n))
	}
}

// OpenWeekMsg asks the app to show one week's workouts.
type OpenWeekMsg struct{ Week int }

// OpenWorkoutMsg asks the app to open one workout's detail view.
type OpenWorkoutMsg struct{ Index int }
