// Package periodization splits a plan's weeks into training blocks according
// to the methodology's phase duration preferences.
package periodization

import (
	"fmt"
	"math"

	"github.com/AustinOrphan/training-plan-generator/internal/methodology"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Plan length thresholds for including optional phases.
const (
	buildThresholdWeeks    = 6
	peakThresholdWeeks     = 8
	recoveryThresholdWeeks = 20
)

// TaperWeeks returns the taper length for a race goal. Longer races earn
// longer tapers; general fitness plans do not taper.
func TaperWeeks(goal plan.Goal) int {
	switch goal {
	case plan.GoalMarathon:
		return 3
	case plan.GoalHalfMarathon:
		return 2
	case plan.Goal5K, plan.Goal10K:
		return 1
	default:
		return 0
	}
}

// phaseAlloc tracks one flexible phase through allocation.
type phaseAlloc struct {
	phase  plan.Phase
	bounds methodology.PhaseDuration
	share  float64
	weeks  int
	pinned bool
}

// BuildBlocks lays out the plan's training blocks in chronological order.
// Warnings describe structural compromises forced by the plan length.
func BuildBlocks(cfg plan.PlanConfig, prof methodology.Profile) ([]plan.TrainingBlock, []string) {
	var warnings []string
	race := cfg.Goal != plan.GoalGeneralFitness

	taper := 0
	if race {
		d := prof.PhaseDurations[plan.PhaseTaper]
		taper = clampInt(TaperWeeks(cfg.Goal), d.MinWeeks, d.MaxWeeks)
	}
	recovery := 0
	if cfg.TotalWeeks >= recoveryThresholdWeeks || cfg.InjuryHistory {
		recovery = prof.PhaseDurations[plan.PhaseRecovery].OptimalWeeks
	}

	flexible := []plan.Phase{plan.PhaseBase}
	if cfg.TotalWeeks >= buildThresholdWeeks {
		flexible = append(flexible, plan.PhaseBuild)
	}
	if race && cfg.TotalWeeks >= peakThresholdWeeks {
		flexible = append(flexible, plan.PhasePeak)
	}

	// Shed structure until the flexible phases fit their minimums: drop the
	// recovery block, then the peak block, then shorten the taper.
	for {
		avail := cfg.TotalWeeks - taper - recovery
		if avail >= sumMin(flexible, prof) {
			break
		}
		if recovery > 0 {
			recovery = 0
			warnings = append(warnings, "plan too short for a recovery block; dropped")
			continue
		}
		if len(flexible) > 0 && flexible[len(flexible)-1] == plan.PhasePeak {
			flexible = flexible[:len(flexible)-1]
			warnings = append(warnings, "plan too short for a peak block; dropped")
			continue
		}
		if taper > prof.PhaseDurations[plan.PhaseTaper].MinWeeks {
			taper = prof.PhaseDurations[plan.PhaseTaper].MinWeeks
			warnings = append(warnings, "taper shortened to fit the plan length")
			continue
		}
		break
	}

	allocs := allocate(cfg.TotalWeeks-taper-recovery, flexible, prof, &warnings)

	var ordered []phaseWeeks
	if recovery > 0 {
		// A regeneration block opens long or injury-cautious plans.
		ordered = append(ordered, phaseWeeks{plan.PhaseRecovery, recovery})
	}
	for _, a := range allocs {
		if a.weeks > 0 {
			ordered = append(ordered, phaseWeeks{a.phase, a.weeks})
		}
	}
	if taper > 0 {
		ordered = append(ordered, phaseWeeks{plan.PhaseTaper, taper})
	}

	blocks := make([]plan.TrainingBlock, 0, len(ordered))
	cursor := cfg.StartDate
	for _, pw := range ordered {
		end := cursor.AddDate(0, 0, pw.weeks*7)
		blocks = append(blocks, plan.TrainingBlock{
			Phase:      pw.phase,
			StartDate:  cursor,
			EndDate:    end,
			Weeks:      pw.weeks,
			FocusAreas: append([]string(nil), prof.PhaseDurations[pw.phase].Focus...),
		})
		cursor = end
	}
	return blocks, warnings
}

type phaseWeeks struct {
	phase plan.Phase
	weeks int
}

// allocate distributes avail weeks across the flexible phases in proportion
// to the profile's optimal durations, clamped to each phase's bounds, with a
// largest-remainder pass so the total is exact. Ties go to the earlier phase.
func allocate(avail int, phases []plan.Phase, prof methodology.Profile, warnings *[]string) []phaseAlloc {
	allocs := make([]phaseAlloc, len(phases))
	sumOpt, sumMaxW := 0, 0
	for i, ph := range phases {
		allocs[i] = phaseAlloc{phase: ph, bounds: prof.PhaseDurations[ph]}
		sumOpt += allocs[i].bounds.OptimalWeeks
		sumMaxW += allocs[i].bounds.MaxWeeks
	}
	if avail <= 0 || sumOpt == 0 {
		return nil
	}

	if avail < sumMin(phases, prof) {
		// Nothing left to shed; scale the minimums down uniformly with a
		// one week floor per phase.
		*warnings = append(*warnings, "plan too short for standard phase minimums; compressed")
		scale := float64(avail) / float64(sumMin(phases, prof))
		for i := range allocs {
			allocs[i].share = math.Max(1, float64(allocs[i].bounds.MinWeeks)*scale)
			allocs[i].weeks = int(allocs[i].share)
		}
		repairTotal(allocs, avail, 1, avail)
		return allocs
	}

	ignoreMax := avail > sumMaxW
	if ignoreMax {
		// Very long plans outgrow every maximum; keep the proportions and
		// let the blocks run long.
		for i := range allocs {
			allocs[i].share = float64(avail) * float64(allocs[i].bounds.OptimalWeeks) / float64(sumOpt)
			allocs[i].weeks = int(allocs[i].share)
		}
		repairTotal(allocs, avail, 1, avail)
		return allocs
	}

	// Proportional shares, pinning one out-of-bounds phase per round and
	// redistributing the rest. At most one round per phase.
	for {
		freeWeeks := float64(avail)
		freeOpt := 0
		for i := range allocs {
			if allocs[i].pinned {
				freeWeeks -= allocs[i].share
			} else {
				freeOpt += allocs[i].bounds.OptimalWeeks
			}
		}
		if freeOpt == 0 {
			break
		}
		for i := range allocs {
			if !allocs[i].pinned {
				allocs[i].share = freeWeeks * float64(allocs[i].bounds.OptimalWeeks) / float64(freeOpt)
			}
		}
		pinnedOne := false
		for i := range allocs {
			if allocs[i].pinned {
				continue
			}
			if allocs[i].share < float64(allocs[i].bounds.MinWeeks) {
				allocs[i].share = float64(allocs[i].bounds.MinWeeks)
				allocs[i].pinned = true
				pinnedOne = true
				break
			}
			if allocs[i].share > float64(allocs[i].bounds.MaxWeeks) {
				allocs[i].share = float64(allocs[i].bounds.MaxWeeks)
				allocs[i].pinned = true
				pinnedOne = true
				break
			}
		}
		if !pinnedOne {
			break
		}
	}
	for i := range allocs {
		allocs[i].weeks = int(allocs[i].share)
	}
	repairTotal(allocs, avail, 0, 0)
	return allocs
}

// repairTotal adjusts integer weeks until they sum to want. Additions go to
// the largest fractional remainder first, removals to the smallest; ties are
// broken toward the earlier phase. Bounds come from each phase unless
// overridden by loFloor/hiCeil (used by the compressed and overlong paths).
func repairTotal(allocs []phaseAlloc, want, loFloor, hiCeil int) {
	total := 0
	for i := range allocs {
		total += allocs[i].weeks
	}
	lo := func(a phaseAlloc) int {
		if loFloor > 0 {
			return loFloor
		}
		return a.bounds.MinWeeks
	}
	hi := func(a phaseAlloc) int {
		if hiCeil > 0 {
			return hiCeil
		}
		return a.bounds.MaxWeeks
	}
	for total < want {
		best := -1
		for i := range allocs {
			if allocs[i].weeks+1 > hi(allocs[i]) {
				continue
			}
			if best < 0 || frac(allocs[i].share) > frac(allocs[best].share) {
				best = i
			}
		}
		if best < 0 {
			allocs[0].weeks += want - total
			return
		}
		allocs[best].weeks++
		allocs[best].share = float64(allocs[best].weeks)
		total++
	}
	for total > want {
		best := -1
		for i := len(allocs) - 1; i >= 0; i-- {
			if allocs[i].weeks-1 < lo(allocs[i]) {
				continue
			}
			if best < 0 || frac(allocs[i].share) < frac(allocs[best].share) {
				best = i
			}
		}
		if best < 0 {
			return
		}
		allocs[best].weeks--
		allocs[best].share = float64(allocs[best].weeks)
		total--
	}
}

func frac(f float64) float64 {
	return f - math.Floor(f)
}

func sumMin(phases []plan.Phase, prof methodology.Profile) int {
	sum := 0
	for _, ph := range phases {
		sum += prof.PhaseDurations[ph].MinWeeks
	}
	return sum
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Describe summarizes the block layout, used in logs and the plan overview.
func Describe(blocks []plan.TrainingBlock) string {
	out := ""
	for i, b := range blocks {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %dw", b.Phase.Label(), b.Weeks)
	}
	return out
}
