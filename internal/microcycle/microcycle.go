// Package microcycle schedules each plan week: which days run, which of them
// carry quality work, and how the week's volume splits across the days.
package microcycle

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/methodology"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Resolver turns a scheduled slot into a fully specified workout.
type Resolver interface {
	Resolve(slot plan.WorkoutSlot) (plan.PlannedWorkout, error)
}

// Quality sessions scheduled per week in each phase.
var qualityPerPhase = map[plan.Phase]int{
	plan.PhaseBase:  1,
	plan.PhaseBuild: 2,
	plan.PhasePeak:  2,
	plan.PhaseTaper: 1,
}

// Day-level volume shares.
const (
	longRunShare      = 0.30
	qualityShare      = 0.15
	recoveryDayWeight = 0.6

	// recoveryEmphasisThreshold decides whether the day after a long run
	// or hard session is a recovery jog rather than a plain easy run.
	recoveryEmphasisThreshold = 0.6
)

// Builder schedules weeks for one plan. It carries the volume trajectory and
// deduplicates structural warnings across weeks.
type Builder struct {
	cfg   plan.PlanConfig
	prof  methodology.Profile
	level plan.ExperienceLevel
	start float64

	warnings []string
	seen     map[string]bool
}

// NewBuilder prepares a week scheduler. baselineWeeklyMeters is the runner's
// current weekly volume; unusably small values fall back to an experience
// default.
func NewBuilder(cfg plan.PlanConfig, prof methodology.Profile, level plan.ExperienceLevel, baselineWeeklyMeters float64) *Builder {
	return &Builder{
		cfg:   cfg,
		prof:  prof,
		level: level,
		start: startingVolume(baselineWeeklyMeters, level),
		seen:  make(map[string]bool),
	}
}

func (b *Builder) warn(msg string) {
	if !b.seen[msg] {
		b.seen[msg] = true
		b.warnings = append(b.warnings, msg)
	}
}

// BuildWeeks fills every block with scheduled, resolved weeks and returns the
// populated blocks plus any scheduling warnings.
func (b *Builder) BuildWeeks(blocks []plan.TrainingBlock, r Resolver) ([]plan.TrainingBlock, []string, error) {
	vols, volWarnings := buildVolumes(
		blocks, b.start, progressionRate(b.level),
		b.prof.DeloadEveryWeeks, b.prof.DeloadReduction,
	)
	for _, w := range volWarnings {
		b.warn(w)
	}

	out := make([]plan.TrainingBlock, len(blocks))
	weekNo := 1
	idx := 0
	prevSundayHard := false
	for i, block := range blocks {
		out[i] = block
		out[i].FocusAreas = append([]string(nil), block.FocusAreas...)
		out[i].Microcycles = make([]plan.WeeklyMicrocycle, 0, block.Weeks)
		for w := 0; w < block.Weeks; w++ {
			weekStart := block.StartDate.AddDate(0, 0, w*7)
			mc, sundayHard, err := b.buildWeek(weekNo, weekStart, block.Phase, vols[idx], prevSundayHard, r)
			if err != nil {
				return nil, nil, fmt.Errorf("week %d: %w", weekNo, err)
			}
			out[i].Microcycles = append(out[i].Microcycles, mc)
			prevSundayHard = sundayHard
			weekNo++
			idx++
		}
	}
	return out, b.warnings, nil
}

func (b *Builder) buildWeek(weekNo int, weekStart time.Time, phase plan.Phase, vol weekVolume, prevSundayHard bool, r Resolver) (plan.WeeklyMicrocycle, bool, error) {
	ranks := make([]int, 0, len(b.cfg.AvailableDays))
	for _, d := range b.cfg.AvailableDays {
		ranks = append(ranks, plan.WeekdayIndex(d))
	}
	sort.Ints(ranks)
	longRank := plan.WeekdayIndex(*b.cfg.LongRunDay)

	types := b.assignDays(ranks, longRank, phase, prevSundayHard)
	budgets := b.assignBudgets(ranks, types, longRank, phase, vol.meters)

	mc := plan.WeeklyMicrocycle{
		WeekNumber: weekNo,
		StartDate:  weekStart,
		Phase:      phase,
		Deload:     vol.deload,
	}

	var tokens [7]string
	for i := range tokens {
		tokens[i] = "Rest"
	}

	var easyLoad float64
	for _, rank := range ranks {
		typ := types[rank]
		maxDur := b.cfg.MaxSessionMinutes * 60
		if typ == plan.WorkoutLongRun {
			maxDur = b.cfg.LongRunMaxMinutes * 60
		}
		slot := plan.WorkoutSlot{
			Date:                 weekStart.AddDate(0, 0, rank),
			WeekNumber:           weekNo,
			Phase:                phase,
			Type:                 typ,
			DistanceBudgetMeters: budgets[rank],
			MaxDurationSeconds:   maxDur,
		}
		workout, err := r.Resolve(slot)
		if err != nil {
			return plan.WeeklyMicrocycle{}, false, err
		}
		mc.Workouts = append(mc.Workouts, workout)
		tokens[rank] = workout.Type.Label()

		mc.TotalDistanceMeters += workout.Targets.DistanceMeters
		mc.TotalDurationSeconds += workout.Targets.DurationSeconds
		mc.TotalLoad += workout.Targets.TSS
		if workout.Type.Class() == plan.IntensityEasy {
			easyLoad += workout.Targets.TSS
		}
	}
	mc.Pattern = strings.Join(tokens[:], "-")
	if mc.TotalLoad > 0 {
		mc.RecoveryRatio = math.Round(easyLoad/mc.TotalLoad*100) / 100
	}

	sundayType, sundayScheduled := types[6]
	sundayHard := sundayScheduled && sundayType.Class() == plan.IntensityHard
	return mc, sundayHard, nil
}

// assignDays maps each available day rank to a workout type for the week.
func (b *Builder) assignDays(ranks []int, longRank int, phase plan.Phase, prevSundayHard bool) map[int]plan.WorkoutType {
	types := make(map[int]plan.WorkoutType, len(ranks))

	if phase == plan.PhaseRecovery {
		// Regeneration weeks alternate easy running with recovery jogs.
		for i, rank := range ranks {
			if i%2 == 1 {
				types[rank] = plan.WorkoutRecovery
			} else {
				types[rank] = plan.WorkoutEasy
			}
		}
		return types
	}

	types[longRank] = plan.WorkoutLongRun

	want := qualityPerPhase[phase]
	if max := len(ranks) - 1; want > max {
		b.warn(fmt.Sprintf("only %d training days available; scheduling %d quality sessions per week", len(ranks), max))
		want = max
	}
	quality := b.prof.QualitySessions(phase, want)
	placed, dropped := placeQuality(ranks, longRank, quality, prevSundayHard)
	for _, t := range dropped {
		b.warn(fmt.Sprintf("dropped %s sessions to keep hard days separated", t))
	}
	for rank, t := range placed {
		types[rank] = t
	}

	hard := make(map[int]bool, len(placed))
	for rank, t := range placed {
		if t.Class() == plan.IntensityHard {
			hard[rank] = true
		}
	}
	for _, rank := range ranks {
		if _, ok := types[rank]; ok {
			continue
		}
		after := rank == longRank+1 || hard[rank-1]
		if after && b.prof.RecoveryEmphasis >= recoveryEmphasisThreshold {
			types[rank] = plan.WorkoutRecovery
		} else {
			types[rank] = plan.WorkoutEasy
		}
	}
	return types
}

// placeQuality picks days for the week's quality sessions, spreading them
// away from the long run and each other. Hard sessions never land on
// calendar-adjacent days; a hard session that cannot be placed is dropped.
func placeQuality(ranks []int, longRank int, types []plan.WorkoutType, prevSundayHard bool) (map[int]plan.WorkoutType, []plan.WorkoutType) {
	placed := make(map[int]plan.WorkoutType, len(types))
	hard := make(map[int]bool)
	anchors := []int{longRank}
	var dropped []plan.WorkoutType

	for _, t := range types {
		best, bestScore := -1, -1
		for _, rank := range ranks {
			if rank == longRank {
				continue
			}
			if _, used := placed[rank]; used {
				continue
			}
			if t.Class() == plan.IntensityHard {
				if hard[rank-1] || hard[rank+1] {
					continue
				}
				if rank == 0 && prevSundayHard {
					continue
				}
			}
			if score := minGap(rank, anchors); score > bestScore {
				best, bestScore = rank, score
			}
		}
		if best < 0 {
			dropped = append(dropped, t)
			continue
		}
		placed[best] = t
		if t.Class() == plan.IntensityHard {
			hard[best] = true
		}
		anchors = append(anchors, best)
	}
	return placed, dropped
}

func minGap(rank int, anchors []int) int {
	gap := 7
	for _, a := range anchors {
		d := rank - a
		if d < 0 {
			d = -d
		}
		if d < gap {
			gap = d
		}
	}
	return gap
}

// assignBudgets splits the week's volume across the scheduled days: a fixed
// share for the long run, one per quality session, and the remainder over
// easy and recovery days, recovery jogs weighted lighter.
func (b *Builder) assignBudgets(ranks []int, types map[int]plan.WorkoutType, longRank int, phase plan.Phase, weekMeters float64) map[int]float64 {
	budgets := make(map[int]float64, len(ranks))
	assigned := 0.0
	weights := make(map[int]float64, len(ranks))
	sumWeights := 0.0

	for _, rank := range ranks {
		switch types[rank] {
		case plan.WorkoutLongRun:
			budgets[rank] = weekMeters * longRunShare
			assigned += budgets[rank]
		case plan.WorkoutEasy:
			weights[rank] = 1
			sumWeights++
		case plan.WorkoutRecovery:
			weights[rank] = recoveryDayWeight
			sumWeights += recoveryDayWeight
		default:
			budgets[rank] = weekMeters * qualityShare
			assigned += budgets[rank]
		}
	}

	remainder := weekMeters - assigned
	if remainder < 0 {
		remainder = 0
	}
	if sumWeights == 0 {
		// Every day is long or quality; scale their shares up to spend
		// the full week.
		if assigned > 0 {
			scale := weekMeters / assigned
			for rank := range budgets {
				budgets[rank] *= scale
			}
		}
		return budgets
	}
	for rank, w := range weights {
		budgets[rank] = remainder * w / sumWeights
	}
	return budgets
}
