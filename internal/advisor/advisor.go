// Package advisor reviews completed training against the plan and recommends
// adjustments: cut volume, insert recovery, swap quality work for easier
// sessions, advance the progression, or stay the course. Review is pure and
// never mutates the plan.
package advisor

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// CompletedWorkout records how one planned session actually went. Records
// match planned workouts by calendar date.
type CompletedWorkout struct {
	Date            time.Time `json:"date"`
	Completed       bool      `json:"completed"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	DistanceMeters  float64   `json:"distance_meters,omitempty"`

	// Difficulty is the reported session RPE on a 1-10 scale, 0 when the
	// runner recorded none.
	Difficulty int `json:"difficulty,omitempty"`
}

// Compliance summarizes adherence over the reviewed window.
type Compliance struct {
	WorkoutsPlanned int `json:"workouts_planned"`
	WorkoutsDone    int `json:"workouts_done"`
	RatedSessions   int `json:"rated_sessions"`

	CompletionRate float64 `json:"completion_rate"` // done / planned
	VolumeRatio    float64 `json:"volume_ratio"`    // actual / planned distance

	// DifficultySkew is the mean reported RPE minus the RPE expected for
	// each session's intensity class. Positive means training feels harder
	// than intended.
	DifficultySkew float64 `json:"difficulty_skew"`
}

// Action identifies one advised adjustment.
type Action string

const (
	ActionReduceVolume     Action = "reduce_volume"
	ActionInsertRecovery   Action = "insert_recovery"
	ActionSubstituteEasier Action = "substitute_easier"
	ActionAdvance          Action = "advance_progression"
	ActionKeepCourse       Action = "keep_course"
)

// actionRank orders recommendations most urgent first.
var actionRank = map[Action]int{
	ActionReduceVolume:     0,
	ActionInsertRecovery:   1,
	ActionSubstituteEasier: 2,
	ActionAdvance:          3,
	ActionKeepCourse:       4,
}

// Recommendation is one advised adjustment with its justification.
type Recommendation struct {
	Action     Action  `json:"action"`
	Reason     string  `json:"reason"`
	Week       int     `json:"week"`       // plan week the advice targets
	Confidence float64 `json:"confidence"` // 0-1
}

// Report pairs the compliance summary with ordered recommendations.
type Report struct {
	Compliance      Compliance       `json:"compliance"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Adherence thresholds that trigger recommendations.
const (
	lowCompletionRate  = 0.70
	lowVolumeRatio     = 0.75
	lowHardCompletion  = 0.60
	highDifficultySkew = 1.5
	easyDifficultySkew = -1.5
	advanceThreshold   = 0.95

	// minRatedForSkew is the rated-session count below which difficulty
	// skew carries no weight.
	minRatedForSkew = 3

	// fullEvidenceSessions is the elapsed-session count at which the
	// confidence data factor saturates.
	fullEvidenceSessions = 8
)

// expectedDifficulty is the anticipated session RPE per intensity class.
var expectedDifficulty = map[plan.IntensityClass]float64{
	plan.IntensityEasy:     3,
	plan.IntensityModerate: 5.5,
	plan.IntensityHard:     8,
}

// Review compares completed records against the plan's sessions dated before
// asOf and produces compliance figures plus ordered recommendations.
func Review(p *plan.TrainingPlan, completed []CompletedWorkout, asOf time.Time) Report {
	var c Compliance

	byDate := make(map[string]CompletedWorkout, len(completed))
	for _, cw := range completed {
		byDate[cw.Date.UTC().Format("2006-01-02")] = cw
	}

	var (
		plannedMeters float64
		actualMeters  float64
		skewSum       float64
		hardPlanned   int
		hardDone      int
	)
	for _, wk := range p.Workouts {
		if !wk.Date.Before(asOf) {
			continue
		}
		c.WorkoutsPlanned++
		plannedMeters += wk.Targets.DistanceMeters
		class := wk.Type.Class()
		if class == plan.IntensityHard {
			hardPlanned++
		}

		record, ok := byDate[wk.Date.Format("2006-01-02")]
		if !ok || !record.Completed {
			continue
		}
		c.WorkoutsDone++
		actualMeters += record.DistanceMeters
		if class == plan.IntensityHard {
			hardDone++
		}
		if record.Difficulty >= 1 && record.Difficulty <= 10 {
			c.RatedSessions++
			skewSum += float64(record.Difficulty) - expectedDifficulty[class]
		}
	}

	if c.WorkoutsPlanned > 0 {
		c.CompletionRate = round2(float64(c.WorkoutsDone) / float64(c.WorkoutsPlanned))
	}
	if plannedMeters > 0 {
		c.VolumeRatio = round2(actualMeters / plannedMeters)
	}
	if c.RatedSessions > 0 {
		c.DifficultySkew = round2(skewSum / float64(c.RatedSessions))
	}

	return Report{
		Compliance:      c,
		Recommendations: recommend(p, c, hardPlanned, hardDone, asOf),
	}
}

// recommend applies the adherence rules in urgency order. Confidence is the
// product of a data-sufficiency factor and a severity factor.
func recommend(p *plan.TrainingPlan, c Compliance, hardPlanned, hardDone int, asOf time.Time) []Recommendation {
	week := targetWeek(p, asOf)
	var recs []Recommendation

	if c.WorkoutsPlanned == 0 {
		return []Recommendation{{
			Action:     ActionKeepCourse,
			Reason:     "No sessions have come due yet. Follow the plan as written.",
			Week:       week,
			Confidence: 0.5,
		}}
	}

	evidence := math.Min(1, float64(c.WorkoutsPlanned)/fullEvidenceSessions)
	rated := math.Min(1, float64(c.RatedSessions)/fullEvidenceSessions)

	if c.CompletionRate < lowCompletionRate {
		recs = append(recs, Recommendation{
			Action: ActionReduceVolume,
			Reason: fmt.Sprintf("Only %.0f%% of planned sessions were completed. Reduce weekly volume until the schedule is sustainable.",
				c.CompletionRate*100),
			Week:       week,
			Confidence: confidence(evidence, severity(lowCompletionRate-c.CompletionRate)),
		})
	} else if c.VolumeRatio > 0 && c.VolumeRatio < lowVolumeRatio {
		recs = append(recs, Recommendation{
			Action: ActionReduceVolume,
			Reason: fmt.Sprintf("Completed distance is %.0f%% of plan. Scale the coming weeks down to match actual capacity.",
				c.VolumeRatio*100),
			Week:       week,
			Confidence: confidence(evidence, severity(lowVolumeRatio-c.VolumeRatio)),
		})
	}

	if c.RatedSessions >= minRatedForSkew && c.DifficultySkew >= highDifficultySkew {
		recs = append(recs, Recommendation{
			Action: ActionInsertRecovery,
			Reason: fmt.Sprintf("Sessions are rating %.1f points harder than intended. Insert a recovery week before continuing the build.",
				c.DifficultySkew),
			Week:       week,
			Confidence: confidence(rated, severity((c.DifficultySkew-highDifficultySkew)/4)),
		})
	}

	if hardPlanned >= 2 {
		hardRate := float64(hardDone) / float64(hardPlanned)
		if hardRate < lowHardCompletion {
			recs = append(recs, Recommendation{
				Action: ActionSubstituteEasier,
				Reason: fmt.Sprintf("%d of %d hard sessions were completed. Substitute tempo or steady running for upcoming interval work.",
					hardDone, hardPlanned),
				Week:       week,
				Confidence: confidence(evidence, severity(lowHardCompletion-hardRate)),
			})
		}
	}

	if len(recs) == 0 &&
		c.CompletionRate >= advanceThreshold &&
		c.VolumeRatio >= advanceThreshold &&
		c.RatedSessions >= minRatedForSkew &&
		c.DifficultySkew <= easyDifficultySkew {
		recs = append(recs, Recommendation{
			Action: ActionAdvance,
			Reason: fmt.Sprintf("Every session is completed and rating %.1f points easier than intended. The progression can absorb more load.",
				-c.DifficultySkew),
			Week:       week,
			Confidence: confidence(math.Min(evidence, rated), severity(easyDifficultySkew-c.DifficultySkew)),
		})
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Action:     ActionKeepCourse,
			Reason:     "Completion, volume and perceived difficulty all track the plan.",
			Week:       week,
			Confidence: confidence(evidence, 1),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return actionRank[recs[i].Action] < actionRank[recs[j].Action]
	})
	return recs
}

// targetWeek is the plan week the advice applies to: the week after the one
// containing asOf, clamped to the plan.
func targetWeek(p *plan.TrainingPlan, asOf time.Time) int {
	start := p.Config.StartDate
	if asOf.Before(start) {
		return 1
	}
	current := int(asOf.Sub(start).Hours()/(24*7)) + 1
	next := current + 1
	if next > p.Config.TotalWeeks {
		return p.Config.TotalWeeks
	}
	return next
}

// severity maps a threshold shortfall onto [0.5, 1]: any breach registers at
// half strength and grows with its size.
func severity(shortfall float64) float64 {
	if shortfall < 0 {
		shortfall = 0
	}
	return 0.5 + math.Min(0.5, shortfall*2)
}

func confidence(data, severity float64) float64 {
	return round2(clamp01(data) * clamp01(severity))
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
