// Package generator assembles training plans end to end: it derives the
// fitness profile, lays out periodized blocks, schedules each week, resolves
// every workout, and finishes the artifact with aggregates and a
// deterministic identifier.
package generator

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/fitness"
	"github.com/AustinOrphan/training-plan-generator/internal/methodology"
	"github.com/AustinOrphan/training-plan-generator/internal/microcycle"
	"github.com/AustinOrphan/training-plan-generator/internal/periodization"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
	"github.com/AustinOrphan/training-plan-generator/internal/workout"
)

// Generator wires the pipeline stages together. Construct with New; the
// zero value has no registry and will reject every methodology.
type Generator struct {
	calc     *fitness.Calculator
	registry *methodology.Registry
}

// New builds a generator. A nil calculator recomputes profiles on every call
// and a nil registry falls back to the built-in methodologies.
func New(calc *fitness.Calculator, registry *methodology.Registry) *Generator {
	if calc == nil {
		calc = fitness.NewCalculator(nil)
	}
	if registry == nil {
		registry = methodology.NewRegistry()
	}
	return &Generator{calc: calc, registry: registry}
}

// Generate plans from the request and the runner's history. The caller
// supplies now to anchor defaulted dates and the profile windows; generation
// itself never reads the clock, so equal inputs yield equal plans.
func (g *Generator) Generate(cfg plan.PlanConfig, runs []plan.RunRecord, now time.Time) (*plan.TrainingPlan, error) {
	cfg.Normalize(now)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prof, err := g.registry.Get(cfg.Methodology)
	if err != nil {
		return nil, &plan.ConfigError{Field: "methodology", Reason: err.Error()}
	}

	profile := g.profile(cfg, runs, now)
	load := fitness.ComputeTrainingLoad(runs, profile.ThresholdPaceSecPerKm, now)

	blocks, warnings := periodization.BuildBlocks(cfg, prof)

	builder := microcycle.NewBuilder(cfg, prof, profile.Experience, profile.WeeklyVolumeMeters)
	blocks, scheduleWarnings, err := builder.BuildWeeks(blocks, workout.NewSelector(profile, cfg))
	if err != nil {
		return nil, fmt.Errorf("schedule weeks: %w", err)
	}
	warnings = append(warnings, scheduleWarnings...)

	workouts := flatten(blocks)
	return &plan.TrainingPlan{
		ID:          plan.NewPlanID(fingerprint(cfg, runs, now)),
		GeneratedAt: now,
		Config:      cfg,
		Fitness:     profile,
		Load:        load,
		Methodology: prof.Name,
		Blocks:      blocks,
		Workouts:    workouts,
		Summary:     summarize(cfg, blocks, workouts),
		Warnings:    warnings,
	}, nil
}

// Generate is the package-level convenience over a fresh cache-less
// generator with the built-in methodologies.
func Generate(cfg plan.PlanConfig, runs []plan.RunRecord, now time.Time) (*plan.TrainingPlan, error) {
	return New(nil, nil).Generate(cfg, runs, now)
}

// profile resolves the fitness inputs for one generation. A caller override
// skips estimation entirely; otherwise the history is estimated, memoized
// when the calculator carries a cache. Config-level experience and weekly
// volume take precedence over derived values either way.
func (g *Generator) profile(cfg plan.PlanConfig, runs []plan.RunRecord, now time.Time) plan.FitnessProfile {
	var p plan.FitnessProfile
	if cfg.FitnessOverride != nil {
		p = *cfg.FitnessOverride
		if p.Defaulted != nil {
			p.Defaulted = append([]string(nil), p.Defaulted...)
		}
		if p.CriticalSpeedMPS == 0 {
			p.CriticalSpeedMPS = fitness.FallbackCriticalSpeed(p.VDOT)
			p.DPrimeMeters = fitness.DefaultDPrime
		}
		if p.RunningEconomy == 0 {
			p.RunningEconomy = fitness.DefaultEconomy
		}
		if p.RecoveryScore == 0 {
			p.RecoveryScore = fitness.DefaultRecovery
		}
		if p.Experience == "" {
			p.Experience = plan.ExperienceForTrainingAge(p.TrainingAgeYears)
		}
	} else {
		p = g.calc.Profile(runs, now)
	}
	if cfg.Experience != "" {
		p.Experience = cfg.Experience
	}
	if cfg.CurrentWeeklyMeters > 0 {
		p.WeeklyVolumeMeters = cfg.CurrentWeeklyMeters
	}
	return p
}

// fingerprint canonicalizes every generation input so identical requests
// over identical histories carry identical plan IDs.
func fingerprint(cfg plan.PlanConfig, runs []plan.RunRecord, now time.Time) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "goal=%s\n", cfg.Goal)
	fmt.Fprintf(&b, "start=%s\n", cfg.StartDate.Format("2006-01-02"))
	if !cfg.RaceDate.IsZero() {
		fmt.Fprintf(&b, "race=%s\n", cfg.RaceDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "weeks=%d\n", cfg.TotalWeeks)
	fmt.Fprintf(&b, "methodology=%s\n", cfg.Methodology)
	fmt.Fprintf(&b, "experience=%s\n", cfg.Experience)
	for _, d := range cfg.AvailableDays {
		fmt.Fprintf(&b, "day=%d\n", plan.WeekdayIndex(d))
	}
	fmt.Fprintf(&b, "long=%d\n", plan.WeekdayIndex(*cfg.LongRunDay))
	fmt.Fprintf(&b, "session=%d/%d\n", cfg.MaxSessionMinutes, cfg.LongRunMaxMinutes)
	fmt.Fprintf(&b, "volume=%.1f\n", cfg.CurrentWeeklyMeters)
	fmt.Fprintf(&b, "injury=%t\n", cfg.InjuryHistory)
	fmt.Fprintf(&b, "env=%.1f/%.1f/%.1f\n",
		cfg.Environment.AltitudeMeters, cfg.Environment.AvgTemperatureC, cfg.Environment.HumidityPercent)
	if o := cfg.FitnessOverride; o != nil {
		fmt.Fprintf(&b, "override=%.1f/%.1f/%.2f/%.1f/%.1f\n",
			o.VDOT, o.ThresholdPaceSecPerKm, o.CriticalSpeedMPS, o.WeeklyVolumeMeters, o.MaxHeartrate)
	}
	fmt.Fprintf(&b, "runs=%s\n", fitness.Fingerprint(runs, now))
	return b.Bytes()
}

// flatten collects every scheduled workout into one date-ascending slice.
func flatten(blocks []plan.TrainingBlock) []plan.PlannedWorkout {
	var out []plan.PlannedWorkout
	for _, b := range blocks {
		for _, mc := range b.Microcycles {
			out = append(out, mc.Workouts...)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// summarize computes the plan-level aggregates from the scheduled weeks.
func summarize(cfg plan.PlanConfig, blocks []plan.TrainingBlock, workouts []plan.PlannedWorkout) plan.PlanSummary {
	s := plan.PlanSummary{
		TotalWeeks:    cfg.TotalWeeks,
		TotalWorkouts: len(workouts),
		RestDays:      cfg.TotalWeeks*7 - len(workouts),
	}

	classCounts := make(map[plan.IntensityClass]int, 3)
	for _, w := range workouts {
		s.TotalDistanceMeters += w.Targets.DistanceMeters
		s.TotalDurationSeconds += w.Targets.DurationSeconds
		s.TotalTSS += w.Targets.TSS
		classCounts[w.Type.Class()]++
		if w.Type == plan.WorkoutLongRun {
			s.LongRunCount++
		}
	}

	for _, b := range blocks {
		ps := plan.PhaseSummary{Phase: b.Phase, Weeks: b.Weeks}
		for _, mc := range b.Microcycles {
			ps.DistanceMeters += mc.TotalDistanceMeters
			if mc.TotalDistanceMeters > s.PeakWeeklyDistanceMeters {
				s.PeakWeeklyDistanceMeters = mc.TotalDistanceMeters
			}
			ps.WorkoutCount += len(mc.Workouts)
		}
		ps.DistanceMeters = math.Round(ps.DistanceMeters)
		s.Phases = append(s.Phases, ps)
	}

	s.TotalDistanceMeters = math.Round(s.TotalDistanceMeters)
	s.PeakWeeklyDistanceMeters = math.Round(s.PeakWeeklyDistanceMeters)
	s.TotalTSS = math.Round(s.TotalTSS*10) / 10
	if cfg.TotalWeeks > 0 {
		s.AvgWeeklyDistanceMeters = math.Round(s.TotalDistanceMeters / float64(cfg.TotalWeeks))
	}

	if len(workouts) > 0 {
		total := float64(len(workouts))
		easy := math.Round(float64(classCounts[plan.IntensityEasy])/total*1000) / 10
		moderate := math.Round(float64(classCounts[plan.IntensityModerate])/total*1000) / 10
		s.Intensity = plan.IntensityDistribution{
			EasyPercent:     easy,
			ModeratePercent: moderate,
			HardPercent:     math.Round((100-easy-moderate)*10) / 10,
		}
	}
	return s
}
