package plan

import "time"

// WorkoutType identifies the kind of session a planned workout is.
type WorkoutType string

const (
	WorkoutRecovery      WorkoutType = "recovery"
	WorkoutEasy          WorkoutType = "easy"
	WorkoutSteady        WorkoutType = "steady"
	WorkoutTempo         WorkoutType = "tempo"
	WorkoutThreshold     WorkoutType = "threshold"
	WorkoutVO2Max        WorkoutType = "vo2max"
	WorkoutSpeed         WorkoutType = "speed"
	WorkoutHillRepeats   WorkoutType = "hill_repeats"
	WorkoutFartlek       WorkoutType = "fartlek"
	WorkoutProgression   WorkoutType = "progression"
	WorkoutLongRun       WorkoutType = "long_run"
	WorkoutRacePace      WorkoutType = "race_pace"
	WorkoutTimeTrial     WorkoutType = "time_trial"
	WorkoutCrossTraining WorkoutType = "cross_training"
	WorkoutStrength      WorkoutType = "strength"
)

// IntensityClass buckets workout types for distribution accounting.
type IntensityClass string

const (
	IntensityEasy     IntensityClass = "easy"
	IntensityModerate IntensityClass = "moderate"
	IntensityHard     IntensityClass = "hard"
)

// Class returns the intensity bucket a workout type counts toward.
func (t WorkoutType) Class() IntensityClass {
	switch t {
	case WorkoutRecovery, WorkoutEasy, WorkoutLongRun, WorkoutCrossTraining:
		return IntensityEasy
	case WorkoutSteady, WorkoutTempo, WorkoutProgression, WorkoutFartlek, WorkoutRacePace, WorkoutStrength:
		return IntensityModerate
	default:
		return IntensityHard
	}
}

// Label returns the short display name used in weekly pattern strings.
func (t WorkoutType) Label() string {
	switch t {
	case WorkoutRecovery:
		return "Recovery"
	case WorkoutEasy:
		return "Easy"
	case WorkoutSteady:
		return "Steady"
	case WorkoutTempo:
		return "Tempo"
	case WorkoutThreshold:
		return "Threshold"
	case WorkoutVO2Max:
		return "Intervals"
	case WorkoutSpeed:
		return "Speed"
	case WorkoutHillRepeats:
		return "Hills"
	case WorkoutFartlek:
		return "Fartlek"
	case WorkoutProgression:
		return "Progression"
	case WorkoutLongRun:
		return "Long"
	case WorkoutRacePace:
		return "RacePace"
	case WorkoutTimeTrial:
		return "TimeTrial"
	case WorkoutCrossTraining:
		return "Cross"
	case WorkoutStrength:
		return "Strength"
	default:
		return string(t)
	}
}

// Zone is a training intensity zone, 1 (recovery) through 5 (VO2max).
type Zone int

const (
	Zone1 Zone = 1
	Zone2 Zone = 2
	Zone3 Zone = 3
	Zone4 Zone = 4
	Zone5 Zone = 5
)

// Name returns the conventional label for the zone.
func (z Zone) Name() string {
	switch z {
	case Zone1:
		return "Recovery"
	case Zone2:
		return "Easy"
	case Zone3:
		return "Steady"
	case Zone4:
		return "Threshold"
	case Zone5:
		return "VO2max"
	default:
		return "Unknown"
	}
}

// PaceRange is a resolved pace window in seconds per kilometer. Fast is the
// lower (quicker) bound.
type PaceRange struct {
	FastSecPerKm float64 `json:"fast_sec_per_km"`
	SlowSecPerKm float64 `json:"slow_sec_per_km"`
}

// HRRange is a resolved heart-rate window in beats per minute.
type HRRange struct {
	MinBPM int `json:"min_bpm"`
	MaxBPM int `json:"max_bpm"`
}

// Segment is one ordered piece of a workout: a duration held at an intensity
// expressed as a percentage of threshold speed.
type Segment struct {
	Name             string  `json:"name"`
	DurationSeconds  int     `json:"duration_seconds"`
	IntensityPercent float64 `json:"intensity_percent"` // % of threshold speed
	Zone             Zone    `json:"zone"`
	Repeat           int     `json:"repeat,omitempty"` // 0 and 1 both mean once

	TargetPace *PaceRange `json:"target_pace,omitempty"`
	TargetHR   *HRRange   `json:"target_hr,omitempty"`
	CadenceSPM *int       `json:"cadence_spm,omitempty"`
}

// Repeats returns the effective repeat count, treating 0 as 1.
func (s Segment) Repeats() int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// TotalSeconds returns the segment's duration across all repeats.
func (s Segment) TotalSeconds() int {
	return s.DurationSeconds * s.Repeats()
}

// TargetMetrics summarizes what a planned workout asks of the athlete.
type TargetMetrics struct {
	DurationSeconds  int     `json:"duration_seconds"`
	DistanceMeters   float64 `json:"distance_meters"`
	TSS              float64 `json:"tss"`
	Load             float64 `json:"load"`
	IntensityPercent float64 `json:"intensity_percent"` // duration-weighted average
	RecoveryHours    float64 `json:"recovery_hours"`
}

// PlannedWorkout is a dated, fully resolved session within the plan.
type PlannedWorkout struct {
	Date        time.Time     `json:"date"`
	Type        WorkoutType   `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Segments    []Segment     `json:"segments"`
	Targets     TargetMetrics `json:"targets"`
}

// SegmentSeconds returns the summed duration of all segments with repeats,
// which must match Targets.DurationSeconds within rounding tolerance.
func (w PlannedWorkout) SegmentSeconds() int {
	total := 0
	for _, s := range w.Segments {
		total += s.TotalSeconds()
	}
	return total
}
