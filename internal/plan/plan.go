package plan

import (
	"time"

	"github.com/google/uuid"
)

// Phase is a periodization phase. Blocks always appear in the order listed.
type Phase string

const (
	PhaseBase     Phase = "base"
	PhaseBuild    Phase = "build"
	PhasePeak     Phase = "peak"
	PhaseTaper    Phase = "taper"
	PhaseRecovery Phase = "recovery"
)

// PhaseOrder lists phases in their canonical block order.
var PhaseOrder = []Phase{PhaseBase, PhaseBuild, PhasePeak, PhaseTaper, PhaseRecovery}

// Label returns the capitalized display name for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseBase:
		return "Base"
	case PhaseBuild:
		return "Build"
	case PhasePeak:
		return "Peak"
	case PhaseTaper:
		return "Taper"
	case PhaseRecovery:
		return "Recovery"
	default:
		return string(p)
	}
}

// TrainingBlock is one contiguous phase of the plan.
type TrainingBlock struct {
	Phase       Phase              `json:"phase"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     time.Time          `json:"end_date"` // exclusive, start of the following block
	Weeks       int                `json:"weeks"`
	FocusAreas  []string           `json:"focus_areas"`
	Microcycles []WeeklyMicrocycle `json:"microcycles"`
}

// WeeklyMicrocycle is one scheduled week. Pattern is the Monday-through-
// Sunday token string, rest days written as "Rest".
type WeeklyMicrocycle struct {
	WeekNumber int       `json:"week_number"` // 1-based across the whole plan
	StartDate  time.Time `json:"start_date"`  // always a Monday
	Phase      Phase     `json:"phase"`
	Pattern    string    `json:"pattern"`

	Workouts []PlannedWorkout `json:"workouts"`

	TotalDistanceMeters  float64 `json:"total_distance_meters"`
	TotalDurationSeconds int     `json:"total_duration_seconds"`
	TotalLoad            float64 `json:"total_load"` // sum of workout TSS
	RecoveryRatio        float64 `json:"recovery_ratio"`
	Deload               bool    `json:"deload,omitempty"`
}

// PhaseSummary aggregates one phase for the plan summary.
type PhaseSummary struct {
	Phase          Phase   `json:"phase"`
	Weeks          int     `json:"weeks"`
	DistanceMeters float64 `json:"distance_meters"`
	WorkoutCount   int     `json:"workout_count"`
}

// IntensityDistribution is the easy/moderate/hard split over workout counts,
// in percentage points summing to 100 when any workouts exist.
type IntensityDistribution struct {
	EasyPercent     float64 `json:"easy_percent"`
	ModeratePercent float64 `json:"moderate_percent"`
	HardPercent     float64 `json:"hard_percent"`
}

// PlanSummary carries the plan-level aggregates computed at assembly.
type PlanSummary struct {
	TotalWeeks           int     `json:"total_weeks"`
	TotalWorkouts        int     `json:"total_workouts"`
	TotalDistanceMeters  float64 `json:"total_distance_meters"`
	TotalDurationSeconds int     `json:"total_duration_seconds"`
	TotalTSS             float64 `json:"total_tss"`

	AvgWeeklyDistanceMeters  float64 `json:"avg_weekly_distance_meters"`
	PeakWeeklyDistanceMeters float64 `json:"peak_weekly_distance_meters"`

	LongRunCount int `json:"long_run_count"`
	RestDays     int `json:"rest_days"`

	Phases    []PhaseSummary        `json:"phases"`
	Intensity IntensityDistribution `json:"intensity"`
}

// TrainingPlan is the final immutable artifact. GeneratedAt is supplied by
// the caller so generation itself never reads the clock.
type TrainingPlan struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	Config      PlanConfig     `json:"config"`
	Fitness     FitnessProfile `json:"fitness"`
	Load        TrainingLoad   `json:"load"`
	Methodology string         `json:"methodology"`

	Blocks   []TrainingBlock  `json:"blocks"`
	Workouts []PlannedWorkout `json:"workouts"` // flattened, date-ascending
	Summary  PlanSummary      `json:"summary"`

	Warnings []string `json:"warnings,omitempty"`
}

// planNamespace seeds deterministic SHA-1 plan IDs.
var planNamespace = uuid.MustParse("8f3c1a6e-2b54-4d07-9c41-d6a75f0e8b29")

// NewPlanID derives a stable UUID from a canonical fingerprint of the plan's
// inputs, so identical requests carry identical identifiers.
func NewPlanID(fingerprint []byte) uuid.UUID {
	return uuid.NewSHA1(planNamespace, fingerprint)
}
