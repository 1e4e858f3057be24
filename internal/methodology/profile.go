// Package methodology defines the named training philosophies the generator
// plans with. A profile is an immutable data record; all scheduling behavior
// driven by it lives in the periodization and microcycle layers.
package methodology

import (
	"fmt"
	"math"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// PhaseDuration bounds one phase's length in weeks for a profile.
type PhaseDuration struct {
	MinWeeks     int
	OptimalWeeks int
	MaxWeeks     int
	Focus        []string
}

// Profile is a named training methodology: target intensity mix, quality
// session priorities, recovery handling and phase duration preferences.
type Profile struct {
	Name        string
	Description string

	// Intensity is the target easy/moderate/hard split over workout
	// counts. Generated plans land within ten points of it.
	Intensity plan.IntensityDistribution

	// Priorities orders quality workout types from most to least
	// characteristic of the methodology.
	Priorities []plan.WorkoutType

	// RecoveryEmphasis (0-1) shifts easy days toward full recovery work.
	RecoveryEmphasis float64

	PhaseDurations map[plan.Phase]PhaseDuration

	// Deload cadence: every DeloadEveryWeeks-th week of a block reduces
	// volume by DeloadReduction.
	DeloadEveryWeeks int
	DeloadReduction  float64
}

// Validate checks a profile before registration.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("methodology: name required")
	}
	sum := p.Intensity.EasyPercent + p.Intensity.ModeratePercent + p.Intensity.HardPercent
	if math.Abs(sum-100) > 0.01 {
		return fmt.Errorf("methodology %s: intensity distribution sums to %.1f, want 100", p.Name, sum)
	}
	if len(p.Priorities) == 0 {
		return fmt.Errorf("methodology %s: at least one priority workout type required", p.Name)
	}
	if p.RecoveryEmphasis < 0 || p.RecoveryEmphasis > 1 {
		return fmt.Errorf("methodology %s: recovery emphasis %.2f outside [0,1]", p.Name, p.RecoveryEmphasis)
	}
	if p.DeloadEveryWeeks < 2 || p.DeloadEveryWeeks > 6 {
		return fmt.Errorf("methodology %s: deload cadence %d outside 2-6 weeks", p.Name, p.DeloadEveryWeeks)
	}
	if p.DeloadReduction < 0.05 || p.DeloadReduction > 0.4 {
		return fmt.Errorf("methodology %s: deload reduction %.2f outside 0.05-0.40", p.Name, p.DeloadReduction)
	}
	for _, phase := range plan.PhaseOrder {
		d, ok := p.PhaseDurations[phase]
		if !ok {
			return fmt.Errorf("methodology %s: missing duration preference for %s phase", p.Name, phase)
		}
		if d.MinWeeks < 1 || d.MinWeeks > d.OptimalWeeks || d.OptimalWeeks > d.MaxWeeks {
			return fmt.Errorf("methodology %s: %s phase bounds must satisfy 1 <= min <= optimal <= max", p.Name, phase)
		}
	}
	return nil
}

// clone deep-copies the profile so registry lookups never share state.
func (p Profile) clone() Profile {
	out := p
	out.Priorities = append([]plan.WorkoutType(nil), p.Priorities...)
	out.PhaseDurations = make(map[plan.Phase]PhaseDuration, len(p.PhaseDurations))
	for phase, d := range p.PhaseDurations {
		d.Focus = append([]string(nil), d.Focus...)
		out.PhaseDurations[phase] = d
	}
	return out
}

// phaseQualityTypes lists the quality workout types appropriate to each
// phase, in default preference order.
var phaseQualityTypes = map[plan.Phase][]plan.WorkoutType{
	plan.PhaseBase:  {plan.WorkoutSteady, plan.WorkoutTempo, plan.WorkoutHillRepeats, plan.WorkoutFartlek, plan.WorkoutProgression},
	plan.PhaseBuild: {plan.WorkoutThreshold, plan.WorkoutTempo, plan.WorkoutVO2Max, plan.WorkoutHillRepeats, plan.WorkoutFartlek, plan.WorkoutProgression, plan.WorkoutSteady},
	plan.PhasePeak:  {plan.WorkoutVO2Max, plan.WorkoutRacePace, plan.WorkoutSpeed, plan.WorkoutThreshold, plan.WorkoutTimeTrial, plan.WorkoutTempo},
	plan.PhaseTaper: {plan.WorkoutRacePace, plan.WorkoutTempo, plan.WorkoutSpeed, plan.WorkoutThreshold},
}

// QualitySessions returns the n quality workout types for a week of the
// given phase: the profile's priorities filtered to phase-appropriate types,
// topped up from the phase defaults when the profile runs short. Recovery
// phases schedule no quality work.
func (p Profile) QualitySessions(phase plan.Phase, n int) []plan.WorkoutType {
	if n <= 0 || phase == plan.PhaseRecovery {
		return nil
	}
	allowed := phaseQualityTypes[phase]
	allowedSet := make(map[plan.WorkoutType]bool, len(allowed))
	for _, t := range allowed {
		allowedSet[t] = true
	}

	var out []plan.WorkoutType
	used := make(map[plan.WorkoutType]bool)
	for _, t := range p.Priorities {
		if len(out) == n {
			return out
		}
		if allowedSet[t] && !used[t] {
			out = append(out, t)
			used[t] = true
		}
	}
	for _, t := range allowed {
		if len(out) == n {
			return out
		}
		if !used[t] {
			out = append(out, t)
			used[t] = true
		}
	}
	return out
}
