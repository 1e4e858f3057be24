// Package config loads the plan request file and display preferences the CLI
// runs from. Request semantics live in the plan package; this package parses
// the YAML, applies file-level defaults and converts user-facing units.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Request mirrors the YAML plan request file. Dates are YYYY-MM-DD strings
// and distances are kilometers; ToPlanConfig converts both.
type Request struct {
	Goal        string `yaml:"goal"`
	StartDate   string `yaml:"start_date"`
	RaceDate    string `yaml:"race_date"`
	TotalWeeks  int    `yaml:"total_weeks"`
	Methodology string `yaml:"methodology"`
	Experience  string `yaml:"experience"`

	AvailableDays []string `yaml:"available_days"`
	LongRunDay    string   `yaml:"long_run_day"`

	MaxSessionMinutes int `yaml:"max_session_minutes"`
	LongRunMaxMinutes int `yaml:"long_run_max_minutes"`

	CurrentWeeklyKM float64 `yaml:"current_weekly_km"`
	InjuryHistory   bool    `yaml:"injury_history"`

	Environment EnvironmentRequest `yaml:"environment"`
	Fitness     *FitnessRequest    `yaml:"fitness_override"`

	Display DisplayConfig `yaml:"display"`

	// RunsCSV names the run-history file; the -runs flag overrides it.
	RunsCSV string `yaml:"runs_csv"`
}

// EnvironmentRequest describes typical training conditions.
type EnvironmentRequest struct {
	AltitudeMeters  float64 `yaml:"altitude_meters"`
	AvgTemperatureC float64 `yaml:"avg_temperature_c"`
	HumidityPercent float64 `yaml:"humidity_percent"`
}

// FitnessRequest pins the fitness estimates instead of deriving them from
// run history.
type FitnessRequest struct {
	VDOT                  float64 `yaml:"vdot"`
	ThresholdPaceSecPerKm float64 `yaml:"threshold_pace_sec_per_km"`
	WeeklyVolumeKM        float64 `yaml:"weekly_volume_km"`
	LongestRunKM          float64 `yaml:"longest_run_km"`
	TrainingAgeYears      float64 `yaml:"training_age_years"`
	MaxHeartrate          float64 `yaml:"max_heartrate"`
}

// DisplayConfig holds output preferences shared by the TUI and summaries.
type DisplayConfig struct {
	DistanceUnit string `yaml:"distance_unit"` // km or mi
	PaceUnit     string `yaml:"pace_unit"`     // min/km or min/mi
}

// ErrNoConfig is returned when the request file doesn't exist.
var ErrNoConfig = errors.New("request file not found")

// Load reads a plan request from a YAML file and applies display defaults.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading request file: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}

	if req.Display.DistanceUnit == "" {
		req.Display.DistanceUnit = "km"
	}
	if req.Display.PaceUnit == "" {
		req.Display.PaceUnit = "min/km"
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Request) validate() error {
	if r.Display.DistanceUnit != "km" && r.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", r.Display.DistanceUnit)
	}
	if r.Display.PaceUnit != "min/km" && r.Display.PaceUnit != "min/mi" {
		return fmt.Errorf("display.pace_unit must be \"min/km\" or \"min/mi\", got %q", r.Display.PaceUnit)
	}
	return nil
}

// ToPlanConfig converts the parsed request into the generator's configuration.
// Unset fields stay zero so plan.Normalize can fill its defaults; semantic
// validation happens in plan.Validate.
func (r *Request) ToPlanConfig() (plan.PlanConfig, error) {
	cfg := plan.PlanConfig{
		Goal:                plan.Goal(strings.ToLower(strings.TrimSpace(r.Goal))),
		TotalWeeks:          r.TotalWeeks,
		Methodology:         r.Methodology,
		Experience:          plan.ExperienceLevel(strings.ToLower(strings.TrimSpace(r.Experience))),
		MaxSessionMinutes:   r.MaxSessionMinutes,
		LongRunMaxMinutes:   r.LongRunMaxMinutes,
		CurrentWeeklyMeters: r.CurrentWeeklyKM * 1000,
		InjuryHistory:       r.InjuryHistory,
		Environment: plan.Environment{
			AltitudeMeters:  r.Environment.AltitudeMeters,
			AvgTemperatureC: r.Environment.AvgTemperatureC,
			HumidityPercent: r.Environment.HumidityPercent,
		},
	}

	var err error
	if cfg.StartDate, err = parseDate(r.StartDate); err != nil {
		return cfg, fmt.Errorf("start_date: %w", err)
	}
	if cfg.RaceDate, err = parseDate(r.RaceDate); err != nil {
		return cfg, fmt.Errorf("race_date: %w", err)
	}

	for _, name := range r.AvailableDays {
		day, err := parseWeekday(name)
		if err != nil {
			return cfg, fmt.Errorf("available_days: %w", err)
		}
		cfg.AvailableDays = append(cfg.AvailableDays, day)
	}
	if r.LongRunDay != "" {
		day, err := parseWeekday(r.LongRunDay)
		if err != nil {
			return cfg, fmt.Errorf("long_run_day: %w", err)
		}
		cfg.LongRunDay = &day
	}

	if r.Fitness != nil {
		cfg.FitnessOverride = &plan.FitnessProfile{
			VDOT:                  r.Fitness.VDOT,
			ThresholdPaceSecPerKm: r.Fitness.ThresholdPaceSecPerKm,
			WeeklyVolumeMeters:    r.Fitness.WeeklyVolumeKM * 1000,
			LongestRunMeters:      r.Fitness.LongestRunKM * 1000,
			TrainingAgeYears:      r.Fitness.TrainingAgeYears,
			MaxHeartrate:          r.Fitness.MaxHeartrate,
		}
	}

	return cfg, nil
}

// parseDate reads a YYYY-MM-DD date; empty stays the zero time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return t, nil
}

var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

func parseWeekday(s string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
	return day, nil
}

const exampleRequest = `# Training plan request.
# Unset fields fall back to sensible defaults; rerun after editing.

goal: 10k                  # 5k | 10k | half_marathon | marathon | general_fitness
start_date: ""             # YYYY-MM-DD Monday; empty starts next Monday
race_date: ""              # YYYY-MM-DD; sets the plan length when total_weeks is 0
total_weeks: 12            # 4-52
methodology: hudson        # daniels | lydiard | pfitzinger | hudson
experience: ""             # beginner | intermediate | advanced; empty derives from history

available_days: [monday, tuesday, wednesday, thursday, saturday, sunday]
long_run_day: saturday

max_session_minutes: 60
long_run_max_minutes: 150

current_weekly_km: 0       # overrides the volume derived from run history
injury_history: false

environment:
  altitude_meters: 0
  avg_temperature_c: 15
  humidity_percent: 50

# Pin fitness instead of estimating it from runs:
# fitness_override:
#   vdot: 45
#   threshold_pace_sec_per_km: 290
#   weekly_volume_km: 40
#   training_age_years: 2

display:
  distance_unit: km        # km | mi
  pace_unit: min/km        # min/km | min/mi

# Run-history CSV with columns: date, distance_km, duration
# (optional: avg_hr, elevation_m, effort, temp_c, race).
runs_csv: ""
`

// CreateExample writes a commented example request. It refuses to overwrite
// an existing file.
func CreateExample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(exampleRequest), 0o644); err != nil {
		return fmt.Errorf("writing example request: %w", err)
	}
	return nil
}
