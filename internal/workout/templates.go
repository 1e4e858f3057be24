package workout

import (
	"fmt"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Characteristic intensity percentages for each session piece.
const (
	recoveryPct   = 72
	easyPct       = 82
	warmupPct     = 80
	cooldownPct   = 75
	steadyPct     = 89
	tempoPct      = 92
	thresholdPct  = 98
	vo2maxPct     = 107
	hillPct       = 105
	surgePct      = 96
	floatPct      = 80
	stridePct     = 112
	strideJogPct  = 70
	timeTrialPct  = 102
	longFinishPct = 91
	crossTrainPct = 75
	strengthPct   = 70
)

func (s *Selector) build(typ plan.WorkoutType, slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	switch typ {
	case plan.WorkoutRecovery:
		return s.recoveryRun(slot)
	case plan.WorkoutEasy:
		return s.easyRun(slot)
	case plan.WorkoutLongRun:
		return s.longRun(slot)
	case plan.WorkoutSteady:
		return s.steadyRun(slot)
	case plan.WorkoutTempo:
		return s.tempoRun(slot)
	case plan.WorkoutThreshold:
		return s.thresholdIntervals(slot)
	case plan.WorkoutVO2Max:
		return s.vo2maxIntervals(slot)
	case plan.WorkoutHillRepeats:
		return s.hillRepeats(slot)
	case plan.WorkoutFartlek:
		return s.fartlek(slot)
	case plan.WorkoutProgression:
		return s.progressionRun(slot)
	case plan.WorkoutSpeed:
		return s.speedStrides(slot)
	case plan.WorkoutRacePace:
		return s.racePace(slot)
	case plan.WorkoutTimeTrial:
		return s.timeTrial(slot)
	case plan.WorkoutCrossTraining:
		return s.crossTraining(slot)
	case plan.WorkoutStrength:
		return s.strengthWork(slot)
	default:
		return plan.PlannedWorkout{}, false
	}
}

// segment builds one workout piece with resolved pace and HR targets.
func (s *Selector) segment(name string, seconds int, pct float64, repeat int) plan.Segment {
	z := zoneFor(pct)
	return plan.Segment{
		Name:             name,
		DurationSeconds:  seconds,
		IntensityPercent: pct,
		Zone:             z,
		Repeat:           repeat,
		TargetPace:       s.paceRange(z),
		TargetHR:         s.hrRange(z),
	}
}

// budgetSeconds converts the slot's distance budget into time at an
// intensity, 0 when there is no budget.
func (s *Selector) budgetSeconds(slot plan.WorkoutSlot, pct float64) int {
	if slot.DistanceBudgetMeters <= 0 {
		return 0
	}
	return int(slot.DistanceBudgetMeters / s.speedAt(pct))
}

// volumeDuration sizes a budget-driven session between the floor and the
// slot's cap.
func volumeDuration(budget, minSec, maxSec int) (int, bool) {
	if maxSec < minSec {
		return 0, false
	}
	d := budget
	if d < minSec {
		d = minSec
	}
	if d > maxSec {
		d = maxSec
	}
	return d, true
}

// qualityDuration sizes a structured session: at least its typical length
// when the cap allows, never shorter than the structure demands.
func qualityDuration(budget, typical, minSec, maxSec int) (int, bool) {
	if maxSec < minSec {
		return 0, false
	}
	d := budget
	if d < typical {
		d = typical
	}
	if d < minSec {
		d = minSec
	}
	if d > maxSec {
		d = maxSec
	}
	return d, true
}

func (s *Selector) recoveryRun(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	dur, ok := volumeDuration(s.budgetSeconds(slot, recoveryPct), 15*60, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}
	return plan.PlannedWorkout{
		Type:        plan.WorkoutRecovery,
		Name:        "Recovery Jog",
		Description: "Very easy jogging to loosen up; walk breaks are fine.",
		Segments:    []plan.Segment{s.segment("Jog", dur, recoveryPct, 1)},
	}, true
}

func (s *Selector) easyRun(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	dur, ok := volumeDuration(s.budgetSeconds(slot, easyPct), 20*60, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}
	return plan.PlannedWorkout{
		Type:        plan.WorkoutEasy,
		Name:        "Easy Run",
		Description: "Relaxed aerobic running at a conversational effort.",
		Segments:    []plan.Segment{s.segment("Easy", dur, easyPct, 1)},
	}, true
}

func (s *Selector) longRun(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	dur, ok := volumeDuration(s.budgetSeconds(slot, easyPct), 40*60, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}

	const finishSec = 15 * 60
	fastFinish := (slot.Phase == plan.PhaseBuild || slot.Phase == plan.PhasePeak) && dur >= 75*60
	if fastFinish {
		return plan.PlannedWorkout{
			Type:        plan.WorkoutLongRun,
			Name:        "Long Run",
			Description: "Long aerobic run finishing with a steady fifteen minutes.",
			Segments: []plan.Segment{
				s.segment("Easy", dur-finishSec, easyPct, 1),
				s.segment("Steady Finish", finishSec, longFinishPct, 1),
			},
		}, true
	}
	return plan.PlannedWorkout{
		Type:        plan.WorkoutLongRun,
		Name:        "Long Run",
		Description: "Long aerobic run; keep the effort relaxed and fuel early.",
		Segments:    []plan.Segment{s.segment("Easy", dur, easyPct, 1)},
	}, true
}

func (s *Selector) steadyRun(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	const warmup, cooldown = 10 * 60, 5 * 60
	dur, ok := qualityDuration(s.budgetSeconds(slot, steadyPct), 45*60, 30*60, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}
	return plan.PlannedWorkout{
		Type:        plan.WorkoutSteady,
		Name:        "Steady State",
		Description: "Sustained aerobic running just below marathon effort.",
		Segments: []plan.Segment{
			s.segment("Warm Up", warmup, warmupPct, 1),
			s.segment("Steady", dur-warmup-cooldown, steadyPct, 1),
			s.segment("Cool Down", cooldown, cooldownPct, 1),
		},
	}, true
}

func (s *Selector) tempoRun(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	const warmup, cooldown = 12 * 60, 8 * 60
	dur, ok := qualityDuration(s.budgetSeconds(slot, tempoPct), 45*60, 35*60, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}
	piece := dur - warmup - cooldown
	if piece > 45*60 {
		piece = 45 * 60
	}
	return plan.PlannedWorkout{
		Type:        plan.WorkoutTempo,
		Name:        "Tempo Run",
		Description: "Comfortably hard continuous running between marathon and half marathon effort.",
		Segments: []plan.Segment{
			s.segment("Warm Up", warmup, warmupPct, 1),
			s.segment("Tempo", piece, tempoPct, 1),
			s.segment("Cool Down", cooldown, cooldownPct, 1),
		},
	}, true
}

// intervalSpec describes a repeat-based session for the shared assembler.
type intervalSpec struct {
	typ      plan.WorkoutType
	name     string
	desc     string
	workName string

	warmup, cooldown int
	workSec, restSec int
	workPct, restPct float64
	maxReps, typical int
	charPct          float64
	repLabel         string
}

func (s *Selector) intervals(slot plan.WorkoutSlot, spec intervalSpec) (plan.PlannedWorkout, bool) {
	unit := spec.workSec + spec.restSec
	minSec := spec.warmup + unit + spec.cooldown
	dur, ok := qualityDuration(s.budgetSeconds(slot, spec.charPct), spec.typical, minSec, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}
	reps := (dur - spec.warmup - spec.cooldown) / unit
	if reps < 1 {
		reps = 1
	}
	if reps > spec.maxReps {
		reps = spec.maxReps
	}
	return plan.PlannedWorkout{
		Type:        spec.typ,
		Name:        fmt.Sprintf("%s %d x %s", spec.name, reps, spec.repLabel),
		Description: spec.desc,
		Segments: []plan.Segment{
			s.segment("Warm Up", spec.warmup, warmupPct, 1),
			s.segment(spec.workName, spec.workSec, spec.workPct, reps),
			s.segment("Recovery Jog", spec.restSec, spec.restPct, reps),
			s.segment("Cool Down", spec.cooldown, cooldownPct, 1),
		},
	}, true
}

func (s *Selector) thresholdIntervals(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	return s.intervals(slot, intervalSpec{
		typ:      plan.WorkoutThreshold,
		name:     "Threshold",
		desc:     "Cruise intervals at threshold effort with short jog recoveries.",
		workName: "Threshold",
		warmup:   15 * 60,
		cooldown: 10 * 60,
		workSec:  10 * 60,
		restSec:  2 * 60,
		workPct:  thresholdPct,
		restPct:  recoveryPct,
		maxReps:  4,
		typical:  50 * 60,
		charPct:  tempoPct,
		repLabel: "10min",
	})
}

func (s *Selector) vo2maxIntervals(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	return s.intervals(slot, intervalSpec{
		typ:      plan.WorkoutVO2Max,
		name:     "VO2max Intervals",
		desc:     "Hard three minute repeats; jog the recoveries and hold form.",
		workName: "Interval",
		warmup:   15 * 60,
		cooldown: 10 * 60,
		workSec:  3 * 60,
		restSec:  150,
		workPct:  vo2maxPct,
		restPct:  recoveryPct,
		maxReps:  6,
		typical:  45 * 60,
		charPct:  steadyPct,
		repLabel: "3min",
	})
}

func (s *Selector) hillRepeats(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	return s.intervals(slot, intervalSpec{
		typ:      plan.WorkoutHillRepeats,
		name:     "Hill Repeats",
		desc:     "Strong uphill efforts; jog or walk back down between repeats.",
		workName: "Hill",
		warmup:   15 * 60,
		cooldown: 10 * 60,
		workSec:  90,
		restSec:  2 * 60,
		workPct:  hillPct,
		restPct:  strideJogPct,
		maxReps:  10,
		typical:  45 * 60,
		charPct:  steadyPct,
		repLabel: "90s",
	})
}

func (s *Selector) fartlek(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	return s.intervals(slot, intervalSpec{
		typ:      plan.WorkoutFartlek,
		name:     "Fartlek",
		desc:     "Surges at a strong but controlled effort with easy floats between.",
		workName: "Surge",
		warmup:   10 * 60,
		cooldown: 8 * 60,
		workSec:  2 * 60,
		restSec:  2 * 60,
		workPct:  surgePct,
		restPct:  floatPct,
		maxReps:  10,
		typical:  40 * 60,
		charPct:  steadyPct,
		repLabel: "2min",
	})
}

func (s *Selector) speedStrides(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	return s.intervals(slot, intervalSpec{
		typ:      plan.WorkoutSpeed,
		name:     "Speed",
		desc:     "Short fast strides with full recoveries; stay tall and relaxed.",
		workName: "Stride",
		warmup:   15 * 60,
		cooldown: 10 * 60,
		workSec:  30,
		restSec:  90,
		workPct:  stridePct,
		restPct:  strideJogPct,
		maxReps:  10,
		typical:  40 * 60,
		charPct:  easyPct,
		repLabel: "30s",
	})
}

func (s *Selector) progressionRun(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	dur, ok := qualityDuration(s.budgetSeconds(slot, steadyPct), 45*60, 30*60, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}
	third := dur / 3
	return plan.PlannedWorkout{
		Type:        plan.WorkoutProgression,
		Name:        "Progression Run",
		Description: "Start relaxed and finish the final third near threshold effort.",
		Segments: []plan.Segment{
			s.segment("Relaxed", third, 84, 1),
			s.segment("Steady", third, longFinishPct, 1),
			s.segment("Strong Finish", dur-2*third, surgePct, 1),
		},
	}, true
}

// racePaceIntensity maps a goal race to its pace as a percentage of
// threshold speed.
func racePaceIntensity(goal plan.Goal) float64 {
	switch goal {
	case plan.Goal5K:
		return 104
	case plan.Goal10K:
		return 100
	case plan.GoalMarathon:
		return 90
	default:
		return 95
	}
}

func (s *Selector) racePace(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	const warmup, cooldown = 12 * 60, 8 * 60
	pct := racePaceIntensity(s.goal)
	dur, ok := qualityDuration(s.budgetSeconds(slot, pct), 45*60, 35*60, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}
	piece := dur - warmup - cooldown
	if piece > 40*60 {
		piece = 40 * 60
	}
	return plan.PlannedWorkout{
		Type:        plan.WorkoutRacePace,
		Name:        "Race Pace",
		Description: fmt.Sprintf("Continuous running at goal %s pace.", s.goal.Label()),
		Segments: []plan.Segment{
			s.segment("Warm Up", warmup, warmupPct, 1),
			s.segment("Race Pace", piece, pct, 1),
			s.segment("Cool Down", cooldown, cooldownPct, 1),
		},
	}, true
}

func (s *Selector) timeTrial(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	const warmup, effort, cooldown = 15 * 60, 20 * 60, 10 * 60
	if slot.MaxDurationSeconds < warmup+effort+cooldown {
		return plan.PlannedWorkout{}, false
	}
	return plan.PlannedWorkout{
		Type:        plan.WorkoutTimeTrial,
		Name:        "Time Trial 20min",
		Description: "A twenty minute solo effort to benchmark current fitness.",
		Segments: []plan.Segment{
			s.segment("Warm Up", warmup, warmupPct, 1),
			s.segment("Time Trial", effort, timeTrialPct, 1),
			s.segment("Cool Down", cooldown, cooldownPct, 1),
		},
	}, true
}

func (s *Selector) crossTraining(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	dur, ok := volumeDuration(45*60, 20*60, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}
	return plan.PlannedWorkout{
		Type:        plan.WorkoutCrossTraining,
		Name:        "Cross Training",
		Description: "Bike, swim, or elliptical at an easy aerobic effort.",
		Segments:    []plan.Segment{s.segment("Aerobic", dur, crossTrainPct, 1)},
	}, true
}

func (s *Selector) strengthWork(slot plan.WorkoutSlot) (plan.PlannedWorkout, bool) {
	dur, ok := volumeDuration(40*60, 20*60, slot.MaxDurationSeconds)
	if !ok {
		return plan.PlannedWorkout{}, false
	}
	return plan.PlannedWorkout{
		Type:        plan.WorkoutStrength,
		Name:        "Strength Work",
		Description: "General strength and mobility work for durability.",
		Segments:    []plan.Segment{s.segment("Circuit", dur, strengthPct, 1)},
	}, true
}
