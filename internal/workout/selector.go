// Package workout resolves scheduled slots into fully specified sessions:
// segment structure, pace and heart-rate targets, and load estimates.
package workout

import (
	"fmt"
	"math"

	"github.com/AustinOrphan/training-plan-generator/internal/fitness"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Selector builds workouts against one runner's fitness and conditions. It
// satisfies the microcycle Resolver interface.
type Selector struct {
	goal           plan.Goal
	thresholdPace  float64 // sec/km
	thresholdSpeed float64 // m/s
	maxHR          float64
	envMult        float64
}

// NewSelector prepares a workout selector for the runner described by the
// fitness profile, under the request's environmental conditions.
func NewSelector(f plan.FitnessProfile, cfg plan.PlanConfig) *Selector {
	pace := f.ThresholdPaceSecPerKm
	if pace <= 0 {
		pace = fitness.ThresholdPaceSecPerKm(f.VDOT)
	}
	if pace <= 0 {
		pace = fitness.ThresholdPaceSecPerKm(fitness.DefaultVDOT)
	}
	return &Selector{
		goal:           cfg.Goal,
		thresholdPace:  pace,
		thresholdSpeed: 1000 / pace,
		maxHR:          f.MaxHeartrate,
		envMult:        EnvironmentMultiplier(cfg.Environment),
	}
}

// fallbackChains orders the substitutions tried when a workout type cannot
// fit the slot. Every chain ends in recovery, which always resolves.
var fallbackChains = map[plan.WorkoutType][]plan.WorkoutType{
	plan.WorkoutVO2Max:      {plan.WorkoutThreshold, plan.WorkoutTempo, plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutThreshold:   {plan.WorkoutTempo, plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutTempo:       {plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutSteady:      {plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutSpeed:       {plan.WorkoutVO2Max, plan.WorkoutThreshold, plan.WorkoutTempo, plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutHillRepeats: {plan.WorkoutFartlek, plan.WorkoutTempo, plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutFartlek:     {plan.WorkoutTempo, plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutProgression: {plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutRacePace:    {plan.WorkoutTempo, plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutTimeTrial:   {plan.WorkoutTempo, plan.WorkoutSteady, plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutLongRun:     {plan.WorkoutEasy, plan.WorkoutRecovery},
	plan.WorkoutEasy:        {plan.WorkoutRecovery},
}

// Recovery demand in hours by workout type.
var recoveryHours = map[plan.WorkoutType]float64{
	plan.WorkoutRecovery:      6,
	plan.WorkoutEasy:          12,
	plan.WorkoutCrossTraining: 9,
	plan.WorkoutStrength:      12,
	plan.WorkoutSteady:        15,
	plan.WorkoutTempo:         18,
	plan.WorkoutFartlek:       18,
	plan.WorkoutProgression:   18,
	plan.WorkoutLongRun:       24,
	plan.WorkoutThreshold:     24,
	plan.WorkoutHillRepeats:   27,
	plan.WorkoutVO2Max:        30,
	plan.WorkoutSpeed:         30,
	plan.WorkoutRacePace:      36,
	plan.WorkoutTimeTrial:     36,
}

// Workout types that happen off running legs and contribute no running
// distance.
var nonRunning = map[plan.WorkoutType]bool{
	plan.WorkoutCrossTraining: true,
	plan.WorkoutStrength:      true,
}

// Resolve fills the slot with a workout of the requested type, substituting
// down the fallback chain when the slot's duration cap cannot hold the
// structure. Known types always resolve; unknown types resolve as easy
// running.
func (s *Selector) Resolve(slot plan.WorkoutSlot) (plan.PlannedWorkout, error) {
	candidates := append([]plan.WorkoutType{slot.Type}, substitutes(slot.Type)...)
	for _, typ := range candidates {
		w, ok := s.build(typ, slot)
		if !ok {
			continue
		}
		if typ != slot.Type {
			w.Description += fmt.Sprintf(" Replaces the planned %s session.", slot.Type.Label())
		}
		w.Date = slot.Date
		w.Targets = s.targets(w.Type, w.Segments)
		return w, nil
	}
	return plan.PlannedWorkout{}, fmt.Errorf("no workout fits slot type %s", slot.Type)
}

func substitutes(t plan.WorkoutType) []plan.WorkoutType {
	if chain, ok := fallbackChains[t]; ok {
		return chain
	}
	if t == plan.WorkoutRecovery || nonRunning[t] {
		return nil
	}
	return []plan.WorkoutType{plan.WorkoutEasy, plan.WorkoutRecovery}
}

// targets derives the session's demand metrics from its segments. Training
// stress uses effort intensity, so environmental pace adjustments do not
// change it.
func (s *Selector) targets(typ plan.WorkoutType, segs []plan.Segment) plan.TargetMetrics {
	var (
		seconds   int
		distance  float64
		tss       float64
		load      float64
		weightPct float64
	)
	for _, seg := range segs {
		dur := seg.TotalSeconds()
		seconds += dur
		if !nonRunning[typ] {
			distance += s.speedAt(seg.IntensityPercent) * float64(dur)
		}
		intensity := seg.IntensityPercent / 100
		ifactor := clamp(intensity, fitness.MinIntensityFactor, fitness.MaxIntensityFactor)
		hours := float64(dur) / 3600
		tss += hours * ifactor * ifactor * 100
		load += float64(dur) / 60 * intensity
		weightPct += seg.IntensityPercent * float64(dur)
	}

	m := plan.TargetMetrics{
		DurationSeconds: seconds,
		DistanceMeters:  math.Round(distance/10) * 10,
		TSS:             round1(tss),
		Load:            round1(load),
		RecoveryHours:   recoveryHours[typ],
	}
	if seconds > 0 {
		m.IntensityPercent = round1(weightPct / float64(seconds))
	}
	return m
}

// PredictRaceSeconds estimates the goal race time from the runner's VDOT,
// used in plan overviews.
func PredictRaceSeconds(f plan.FitnessProfile, goal plan.Goal) int {
	dist := goal.RaceDistanceMeters()
	if dist <= 0 || f.VDOT <= 0 {
		return 0
	}
	return fitness.PredictTime(f.VDOT, dist)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
