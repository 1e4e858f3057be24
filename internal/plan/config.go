package plan

import (
	"fmt"
	"sort"
	"time"
)

// Goal is the race distance (or general fitness) the plan targets.
type Goal string

const (
	Goal5K             Goal = "5k"
	Goal10K            Goal = "10k"
	GoalHalfMarathon   Goal = "half_marathon"
	GoalMarathon       Goal = "marathon"
	GoalGeneralFitness Goal = "general_fitness"
)

// RaceDistanceMeters returns the goal's race distance, 0 for general fitness.
func (g Goal) RaceDistanceMeters() float64 {
	switch g {
	case Goal5K:
		return 5000
	case Goal10K:
		return 10000
	case GoalHalfMarathon:
		return 21097
	case GoalMarathon:
		return 42195
	default:
		return 0
	}
}

// DefaultWeeks returns the plan length used when neither a race date nor an
// explicit week count is configured.
func (g Goal) DefaultWeeks() int {
	switch g {
	case Goal5K:
		return 8
	case Goal10K:
		return 12
	case GoalHalfMarathon:
		return 16
	case GoalMarathon:
		return 18
	default:
		return 12
	}
}

// Label returns the goal's display name.
func (g Goal) Label() string {
	switch g {
	case Goal5K:
		return "5K"
	case Goal10K:
		return "10K"
	case GoalHalfMarathon:
		return "Half Marathon"
	case GoalMarathon:
		return "Marathon"
	case GoalGeneralFitness:
		return "General Fitness"
	default:
		return string(g)
	}
}

func (g Goal) valid() bool {
	switch g {
	case Goal5K, Goal10K, GoalHalfMarathon, GoalMarathon, GoalGeneralFitness:
		return true
	}
	return false
}

// Environment describes typical training conditions. Adjustments derived
// from it apply to pace targets only.
type Environment struct {
	AltitudeMeters  float64 `json:"altitude_meters,omitempty"`
	AvgTemperatureC float64 `json:"avg_temperature_c,omitempty"`
	HumidityPercent float64 `json:"humidity_percent,omitempty"`
}

// Plan length bounds enforced by validation.
const (
	MinPlanWeeks = 4
	MaxPlanWeeks = 52
)

// PlanConfig is the validated request the generator plans from. Normalize
// fills defaults; Validate rejects contradictions before generation starts.
type PlanConfig struct {
	Goal      Goal      `json:"goal"`
	StartDate time.Time `json:"start_date"`          // always a Monday after Normalize
	RaceDate  time.Time `json:"race_date,omitempty"` // zero for general fitness

	// TotalWeeks may be left 0 and derived from the race date, or from the
	// goal's default length.
	TotalWeeks int `json:"total_weeks"`

	Methodology string          `json:"methodology"`
	Experience  ExperienceLevel `json:"experience,omitempty"` // overrides the derived level

	AvailableDays []time.Weekday `json:"available_days"`
	LongRunDay    *time.Weekday  `json:"long_run_day,omitempty"` // nil picks Saturday or latest available

	MaxSessionMinutes int `json:"max_session_minutes"`
	LongRunMaxMinutes int `json:"long_run_max_minutes"`

	// CurrentWeeklyMeters overrides the volume derived from run history.
	CurrentWeeklyMeters float64 `json:"current_weekly_meters,omitempty"`

	InjuryHistory bool        `json:"injury_history,omitempty"`
	Environment   Environment `json:"environment,omitempty"`

	// FitnessOverride skips estimation entirely when set.
	FitnessOverride *FitnessProfile `json:"fitness_override,omitempty"`
}

// ConfigError reports a single invalid configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// WeekdayIndex orders weekdays Monday-first, matching plan weeks: Monday is
// 0 and Sunday is 6.
func WeekdayIndex(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

// NextMonday returns the first Monday strictly after t, at midnight UTC.
func NextMonday(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Monday {
			return day
		}
	}
}

// Normalize fills every unset option with its default. The caller supplies
// now; generation itself never reads the clock.
func (c *PlanConfig) Normalize(now time.Time) {
	if c.Goal == "" {
		c.Goal = GoalGeneralFitness
	}
	if c.Methodology == "" {
		c.Methodology = "hudson"
	}
	if c.StartDate.IsZero() {
		c.StartDate = NextMonday(now)
	} else {
		c.StartDate = time.Date(c.StartDate.Year(), c.StartDate.Month(), c.StartDate.Day(), 0, 0, 0, 0, time.UTC)
		// Plans are built on Monday-aligned weeks.
		for c.StartDate.Weekday() != time.Monday {
			c.StartDate = c.StartDate.AddDate(0, 0, -1)
		}
	}
	if !c.RaceDate.IsZero() {
		c.RaceDate = time.Date(c.RaceDate.Year(), c.RaceDate.Month(), c.RaceDate.Day(), 0, 0, 0, 0, time.UTC)
	}
	if c.TotalWeeks == 0 {
		if !c.RaceDate.IsZero() {
			c.TotalWeeks = int(c.RaceDate.Sub(c.StartDate).Hours() / (24 * 7))
			if c.RaceDate.After(c.StartDate.AddDate(0, 0, c.TotalWeeks*7)) {
				c.TotalWeeks++ // race falls inside the final partial week
			}
		} else {
			c.TotalWeeks = c.Goal.DefaultWeeks()
		}
	}
	if len(c.AvailableDays) == 0 {
		c.AvailableDays = []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
			time.Saturday, time.Sunday,
		}
	}
	c.AvailableDays = dedupeWeekdays(c.AvailableDays)
	if c.LongRunDay == nil {
		d := defaultLongRunDay(c.AvailableDays)
		c.LongRunDay = &d
	}
	if c.MaxSessionMinutes == 0 {
		c.MaxSessionMinutes = 60
	}
	if c.LongRunMaxMinutes == 0 {
		c.LongRunMaxMinutes = 150
	}
}

// defaultLongRunDay prefers Saturday, then Sunday, then the latest available
// day of the week.
func defaultLongRunDay(available []time.Weekday) time.Weekday {
	for _, want := range []time.Weekday{time.Saturday, time.Sunday} {
		for _, d := range available {
			if d == want {
				return want
			}
		}
	}
	return available[len(available)-1]
}

func dedupeWeekdays(days []time.Weekday) []time.Weekday {
	seen := make(map[time.Weekday]bool, len(days))
	out := days[:0]
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return WeekdayIndex(out[i]) < WeekdayIndex(out[j])
	})
	return out
}

// Validate checks the normalized configuration and returns the first
// contradiction found as a *ConfigError. Generation refuses invalid input
// rather than guessing.
func (c PlanConfig) Validate() error {
	if !c.Goal.valid() {
		return &ConfigError{Field: "goal", Reason: fmt.Sprintf("unknown goal %q", c.Goal)}
	}
	if c.StartDate.IsZero() {
		return &ConfigError{Field: "start_date", Reason: "required"}
	}
	if c.TotalWeeks < MinPlanWeeks || c.TotalWeeks > MaxPlanWeeks {
		return &ConfigError{
			Field:  "total_weeks",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", MinPlanWeeks, MaxPlanWeeks, c.TotalWeeks),
		}
	}
	if !c.RaceDate.IsZero() && !c.RaceDate.After(c.StartDate) {
		return &ConfigError{Field: "race_date", Reason: "must fall after the start date"}
	}
	if len(c.AvailableDays) < 2 {
		return &ConfigError{Field: "available_days", Reason: "at least two training days required"}
	}
	if c.LongRunDay != nil && !containsWeekday(c.AvailableDays, *c.LongRunDay) {
		return &ConfigError{Field: "long_run_day", Reason: "not among the available days"}
	}
	if c.MaxSessionMinutes < 20 || c.MaxSessionMinutes > 240 {
		return &ConfigError{Field: "max_session_minutes", Reason: "must be between 20 and 240"}
	}
	if c.LongRunMaxMinutes < c.MaxSessionMinutes {
		return &ConfigError{Field: "long_run_max_minutes", Reason: "must be at least max_session_minutes"}
	}
	if c.Experience != "" {
		switch c.Experience {
		case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		default:
			return &ConfigError{Field: "experience", Reason: fmt.Sprintf("unknown level %q", c.Experience)}
		}
	}
	if c.CurrentWeeklyMeters < 0 {
		return &ConfigError{Field: "current_weekly_meters", Reason: "cannot be negative"}
	}
	if err := c.Environment.validate(); err != nil {
		return err
	}
	if c.FitnessOverride != nil {
		if c.FitnessOverride.VDOT < 20 || c.FitnessOverride.VDOT > 90 {
			return &ConfigError{Field: "fitness_override.vdot", Reason: "outside plausible range 20-90"}
		}
		if c.FitnessOverride.ThresholdPaceSecPerKm <= 0 {
			return &ConfigError{Field: "fitness_override.threshold_pace", Reason: "must be positive"}
		}
	}
	return nil
}

func (e Environment) validate() error {
	if e.AltitudeMeters < 0 || e.AltitudeMeters > 5000 {
		return &ConfigError{Field: "environment.altitude_meters", Reason: "must be between 0 and 5000"}
	}
	if e.AvgTemperatureC < -30 || e.AvgTemperatureC > 50 {
		return &ConfigError{Field: "environment.avg_temperature_c", Reason: "must be between -30 and 50"}
	}
	if e.HumidityPercent < 0 || e.HumidityPercent > 100 {
		return &ConfigError{Field: "environment.humidity_percent", Reason: "must be between 0 and 100"}
	}
	return nil
}

func containsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}
