package microcycle

import (
	"math"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Weekly volume progression rates by experience level.
const (
	beginnerGrowthRate     = 0.05
	intermediateGrowthRate = 0.075
	advancedGrowthRate     = 0.10

	// maxWeeklyGrowth caps week-over-week volume growth regardless of the
	// experience rate, most often after a leading recovery block.
	maxWeeklyGrowth = 0.20

	// recoveryVolumeFraction sizes recovery-block weeks against the
	// starting volume.
	recoveryVolumeFraction = 0.60

	// minBaselineMeters is the weekly volume below which run history is
	// treated as no data at all.
	minBaselineMeters = 5000
)

// Default starting weekly volume in meters when no usable history exists.
var defaultStartVolume = map[plan.ExperienceLevel]float64{
	plan.ExperienceBeginner:     15000,
	plan.ExperienceIntermediate: 25000,
	plan.ExperienceAdvanced:     40000,
}

// taperFractions holds taper-week volumes as fractions of peak weekly
// volume, ending with race week. Shorter tapers use the tail entries.
var taperFractions = []float64{0.70, 0.55, 0.40}

func progressionRate(level plan.ExperienceLevel) float64 {
	switch level {
	case plan.ExperienceAdvanced:
		return advancedGrowthRate
	case plan.ExperienceIntermediate:
		return intermediateGrowthRate
	default:
		return beginnerGrowthRate
	}
}

func startingVolume(baseline float64, level plan.ExperienceLevel) float64 {
	if baseline >= minBaselineMeters {
		return baseline
	}
	if v, ok := defaultStartVolume[level]; ok {
		return v
	}
	return defaultStartVolume[plan.ExperienceBeginner]
}

// weekVolume is one week's scheduled volume before day-level splitting.
type weekVolume struct {
	phase  plan.Phase
	meters float64
	deload bool
}

// buildVolumes walks the blocks week by week and produces each week's
// scheduled volume. Base and build weeks grow along a trajectory at the
// experience rate; deload weeks cut volume without resetting the trajectory;
// peak weeks hold; taper weeks step down from the peak; recovery weeks stay
// flat and low. Growth between consecutive weeks never exceeds
// maxWeeklyGrowth.
func buildVolumes(blocks []plan.TrainingBlock, start, rate float64, deloadEvery int, deloadReduction float64) ([]weekVolume, []string) {
	var (
		out        []weekVolume
		warnings   []string
		capWarned  bool
		trajectory = start
		peak       = start
		prev       float64
		started    bool
	)

	for _, block := range blocks {
		for w := 0; w < block.Weeks; w++ {
			var wv weekVolume
			wv.phase = block.Phase

			switch block.Phase {
			case plan.PhaseBase, plan.PhaseBuild:
				target := start
				if started {
					target = trajectory * (1 + rate)
				}
				if prev > 0 && target > prev*(1+maxWeeklyGrowth) {
					target = prev * (1 + maxWeeklyGrowth)
					if !capWarned {
						warnings = append(warnings, "weekly volume growth capped at 20%")
						capWarned = true
					}
				}
				trajectory = target
				started = true
				wv.meters = target
				if deloadEvery > 0 && (w+1)%deloadEvery == 0 {
					wv.meters = target * (1 - deloadReduction)
					wv.deload = true
				}
				if trajectory > peak {
					peak = trajectory
				}
				prev = trajectory

			case plan.PhasePeak:
				wv.meters = trajectory
				if deloadEvery > 0 && (w+1)%deloadEvery == 0 {
					wv.meters = trajectory * (1 - deloadReduction)
					wv.deload = true
				}
				if trajectory > peak {
					peak = trajectory
				}
				prev = trajectory

			case plan.PhaseTaper:
				remaining := block.Weeks - w
				idx := len(taperFractions) - remaining
				if idx < 0 {
					idx = 0
				}
				wv.meters = peak * taperFractions[idx]
				prev = wv.meters

			case plan.PhaseRecovery:
				wv.meters = start * recoveryVolumeFraction
				prev = wv.meters
			}

			wv.meters = math.Round(wv.meters/100) * 100
			out = append(out, wv)
		}
	}
	return out, warnings
}
