package methodology

import "github.com/AustinOrphan/training-plan-generator/internal/plan"

// Built-in profile names.
const (
	Daniels    = "daniels"
	Lydiard    = "lydiard"
	Pfitzinger = "pfitzinger"
	Hudson     = "hudson"
)

// DefaultName is used when a plan request names no methodology.
const DefaultName = Hudson

var daniels = Profile{
	Name:        Daniels,
	Description: "VDOT-paced training with threshold and interval quality work",
	Intensity:   plan.IntensityDistribution{EasyPercent: 70, ModeratePercent: 15, HardPercent: 15},
	Priorities: []plan.WorkoutType{
		plan.WorkoutThreshold,
		plan.WorkoutVO2Max,
		plan.WorkoutRacePace,
		plan.WorkoutSpeed,
		plan.WorkoutTempo,
	},
	RecoveryEmphasis: 0.5,
	PhaseDurations: map[plan.Phase]PhaseDuration{
		plan.PhaseBase:     {MinWeeks: 2, OptimalWeeks: 6, MaxWeeks: 10, Focus: []string{"aerobic foundation", "running economy"}},
		plan.PhaseBuild:    {MinWeeks: 2, OptimalWeeks: 7, MaxWeeks: 12, Focus: []string{"threshold development", "interval quality"}},
		plan.PhasePeak:     {MinWeeks: 1, OptimalWeeks: 3, MaxWeeks: 4, Focus: []string{"race pace sharpening"}},
		plan.PhaseTaper:    {MinWeeks: 1, OptimalWeeks: 2, MaxWeeks: 3, Focus: []string{"freshness", "race readiness"}},
		plan.PhaseRecovery: {MinWeeks: 1, OptimalWeeks: 1, MaxWeeks: 2, Focus: []string{"regeneration"}},
	},
	DeloadEveryWeeks: 4,
	DeloadReduction:  0.20,
}

var lydiard = Profile{
	Name:        Lydiard,
	Description: "High-volume aerobic base with hill strength and late sharpening",
	Intensity:   plan.IntensityDistribution{EasyPercent: 75, ModeratePercent: 15, HardPercent: 10},
	Priorities: []plan.WorkoutType{
		plan.WorkoutSteady,
		plan.WorkoutHillRepeats,
		plan.WorkoutTempo,
		plan.WorkoutProgression,
	},
	RecoveryEmphasis: 0.7,
	PhaseDurations: map[plan.Phase]PhaseDuration{
		plan.PhaseBase:     {MinWeeks: 3, OptimalWeeks: 10, MaxWeeks: 16, Focus: []string{"aerobic volume", "hill strength"}},
		plan.PhaseBuild:    {MinWeeks: 2, OptimalWeeks: 6, MaxWeeks: 10, Focus: []string{"steady state", "tempo endurance"}},
		plan.PhasePeak:     {MinWeeks: 1, OptimalWeeks: 2, MaxWeeks: 3, Focus: []string{"coordination", "sharpening"}},
		plan.PhaseTaper:    {MinWeeks: 1, OptimalWeeks: 2, MaxWeeks: 3, Focus: []string{"freshness"}},
		plan.PhaseRecovery: {MinWeeks: 1, OptimalWeeks: 1, MaxWeeks: 2, Focus: []string{"regeneration"}},
	},
	DeloadEveryWeeks: 4,
	DeloadReduction:  0.15,
}

var pfitzinger = Profile{
	Name:        Pfitzinger,
	Description: "Lactate threshold emphasis with medium-long midweek running",
	Intensity:   plan.IntensityDistribution{EasyPercent: 70, ModeratePercent: 15, HardPercent: 15},
	Priorities: []plan.WorkoutType{
		plan.WorkoutThreshold,
		plan.WorkoutProgression,
		plan.WorkoutVO2Max,
		plan.WorkoutRacePace,
	},
	RecoveryEmphasis: 0.55,
	PhaseDurations: map[plan.Phase]PhaseDuration{
		plan.PhaseBase:     {MinWeeks: 2, OptimalWeeks: 5, MaxWeeks: 8, Focus: []string{"mileage buildup", "aerobic strength"}},
		plan.PhaseBuild:    {MinWeeks: 3, OptimalWeeks: 8, MaxWeeks: 14, Focus: []string{"lactate threshold", "endurance"}},
		plan.PhasePeak:     {MinWeeks: 1, OptimalWeeks: 3, MaxWeeks: 4, Focus: []string{"race preparation", "VO2max touches"}},
		plan.PhaseTaper:    {MinWeeks: 1, OptimalWeeks: 2, MaxWeeks: 3, Focus: []string{"freshness", "race readiness"}},
		plan.PhaseRecovery: {MinWeeks: 1, OptimalWeeks: 1, MaxWeeks: 2, Focus: []string{"regeneration"}},
	},
	DeloadEveryWeeks: 3,
	DeloadReduction:  0.20,
}

var hudson = Profile{
	Name:        Hudson,
	Description: "Adaptive training with fartlek and hill work, adjusted to the runner",
	Intensity:   plan.IntensityDistribution{EasyPercent: 70, ModeratePercent: 20, HardPercent: 10},
	Priorities: []plan.WorkoutType{
		plan.WorkoutFartlek,
		plan.WorkoutHillRepeats,
		plan.WorkoutTempo,
		plan.WorkoutVO2Max,
	},
	RecoveryEmphasis: 0.6,
	PhaseDurations: map[plan.Phase]PhaseDuration{
		plan.PhaseBase:     {MinWeeks: 2, OptimalWeeks: 6, MaxWeeks: 10, Focus: []string{"aerobic foundation", "neuromuscular fitness"}},
		plan.PhaseBuild:    {MinWeeks: 2, OptimalWeeks: 6, MaxWeeks: 10, Focus: []string{"specific endurance"}},
		plan.PhasePeak:     {MinWeeks: 1, OptimalWeeks: 3, MaxWeeks: 4, Focus: []string{"race specificity"}},
		plan.PhaseTaper:    {MinWeeks: 1, OptimalWeeks: 2, MaxWeeks: 3, Focus: []string{"freshness"}},
		plan.PhaseRecovery: {MinWeeks: 1, OptimalWeeks: 1, MaxWeeks: 2, Focus: []string{"regeneration"}},
	},
	DeloadEveryWeeks: 3,
	DeloadReduction:  0.25,
}
