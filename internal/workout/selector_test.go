package workout

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// testSelector builds against a 4:10/km threshold (4.0 m/s) with a known max
// HR and neutral conditions, so every expectation below is hand-computable.
func testSelector() *Selector {
	f := plan.FitnessProfile{VDOT: 50, ThresholdPaceSecPerKm: 250, MaxHeartrate: 190}
	cfg := plan.PlanConfig{Goal: plan.Goal10K}
	return NewSelector(f, cfg)
}

func testSlot(typ plan.WorkoutType, budgetMeters float64, maxSec int) plan.WorkoutSlot {
	return plan.WorkoutSlot{
		Date:                 time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		WeekNumber:           1,
		Phase:                plan.PhaseBase,
		Type:                 typ,
		DistanceBudgetMeters: budgetMeters,
		MaxDurationSeconds:   maxSec,
	}
}

func TestResolveEasyRun(t *testing.T) {
	s := testSelector()

	w, err := s.Resolve(testSlot(plan.WorkoutEasy, 10000, 3600))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if w.Type != plan.WorkoutEasy {
		t.Errorf("Type = %s, want %s", w.Type, plan.WorkoutEasy)
	}
	if w.Name != "Easy Run" {
		t.Errorf("Name = %q", w.Name)
	}
	if !w.Date.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, want the slot date", w.Date)
	}
	if len(w.Segments) != 1 {
		t.Fatalf("len(Segments) = %d, want 1", len(w.Segments))
	}

	// 10 km at 82% of 4.0 m/s is 3048 seconds.
	if w.Targets.DurationSeconds != 3048 {
		t.Errorf("DurationSeconds = %d, want 3048", w.Targets.DurationSeconds)
	}
	// Distance recomputed from the resolved duration rounds back to 10 km.
	if w.Targets.DistanceMeters != 10000 {
		t.Errorf("DistanceMeters = %.0f, want 10000", w.Targets.DistanceMeters)
	}
	// 3048/3600 hours at IF 0.82: 0.8467 * 0.6724 * 100 = 56.9.
	if math.Abs(w.Targets.TSS-56.9) > 0.05 {
		t.Errorf("TSS = %.1f, want 56.9", w.Targets.TSS)
	}
	if w.Targets.RecoveryHours != 12 {
		t.Errorf("RecoveryHours = %.0f, want 12", w.Targets.RecoveryHours)
	}

	seg := w.Segments[0]
	if seg.Zone != plan.Zone2 {
		t.Errorf("Zone = %d, want Zone2", seg.Zone)
	}
	if seg.TargetPace == nil {
		t.Fatal("TargetPace = nil, want a range")
	}
	// Zone 2 spans 78-87% of threshold speed: 250/0.87 and 250/0.78.
	if seg.TargetPace.FastSecPerKm != 287 || seg.TargetPace.SlowSecPerKm != 321 {
		t.Errorf("TargetPace = %.0f-%.0f, want 287-321", seg.TargetPace.FastSecPerKm, seg.TargetPace.SlowSecPerKm)
	}
	if seg.TargetHR == nil {
		t.Fatal("TargetHR = nil, want a range")
	}
	if seg.TargetHR.MinBPM != 133 || seg.TargetHR.MaxBPM != 152 {
		t.Errorf("TargetHR = %d-%d, want 133-152", seg.TargetHR.MinBPM, seg.TargetHR.MaxBPM)
	}
}

func TestResolveThresholdIntervals(t *testing.T) {
	s := testSelector()

	w, err := s.Resolve(testSlot(plan.WorkoutThreshold, 12000, 4200))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if w.Type != plan.WorkoutThreshold {
		t.Fatalf("Type = %s, want %s", w.Type, plan.WorkoutThreshold)
	}
	// 3260s budget leaves room for two 10min reps inside the cap.
	if w.Name != "Threshold 2 x 10min" {
		t.Errorf("Name = %q, want \"Threshold 2 x 10min\"", w.Name)
	}
	if len(w.Segments) != 4 {
		t.Fatalf("len(Segments) = %d, want 4", len(w.Segments))
	}
	work := w.Segments[1]
	if work.Repeats() != 2 {
		t.Errorf("work Repeats() = %d, want 2", work.Repeats())
	}
	if work.Zone != plan.Zone4 {
		t.Errorf("work Zone = %d, want Zone4", work.Zone)
	}
	if w.SegmentSeconds() != w.Targets.DurationSeconds {
		t.Errorf("SegmentSeconds() = %d, Targets.DurationSeconds = %d",
			w.SegmentSeconds(), w.Targets.DurationSeconds)
	}
	if w.Targets.DurationSeconds != 2940 {
		t.Errorf("DurationSeconds = %d, want 2940", w.Targets.DurationSeconds)
	}
}

func TestResolveSubstitutesDownChain(t *testing.T) {
	s := testSelector()

	// 1800s cannot hold the interval structures or a tempo, so the slot
	// falls through to a steady state capped at the limit.
	w, err := s.Resolve(testSlot(plan.WorkoutVO2Max, 8000, 1800))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if w.Type != plan.WorkoutSteady {
		t.Errorf("Type = %s, want %s", w.Type, plan.WorkoutSteady)
	}
	if !strings.Contains(w.Description, "Replaces the planned Intervals session.") {
		t.Errorf("Description = %q, want substitution note", w.Description)
	}
	if w.Targets.DurationSeconds != 1800 {
		t.Errorf("DurationSeconds = %d, want the 1800 cap", w.Targets.DurationSeconds)
	}
}

func TestResolveUnknownTypeFallsBackToEasy(t *testing.T) {
	s := testSelector()

	w, err := s.Resolve(testSlot(plan.WorkoutType("swim"), 6000, 3600))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if w.Type != plan.WorkoutEasy {
		t.Errorf("Type = %s, want %s", w.Type, plan.WorkoutEasy)
	}
	if !strings.Contains(w.Description, "Replaces the planned swim session.") {
		t.Errorf("Description = %q, want substitution note", w.Description)
	}
}

func TestResolveErrorWhenNothingFits(t *testing.T) {
	s := testSelector()

	// Recovery has no substitutes and needs at least 15 minutes.
	_, err := s.Resolve(testSlot(plan.WorkoutRecovery, 2000, 600))
	if err == nil {
		t.Fatal("Resolve() error = nil, want failure")
	}
	if !strings.Contains(err.Error(), "no workout fits") {
		t.Errorf("error = %v", err)
	}
}

func TestResolveCrossTrainingHasNoDistance(t *testing.T) {
	s := testSelector()

	w, err := s.Resolve(testSlot(plan.WorkoutCrossTraining, 8000, 3600))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if w.Targets.DistanceMeters != 0 {
		t.Errorf("DistanceMeters = %.0f, want 0 for cross training", w.Targets.DistanceMeters)
	}
	if w.Targets.TSS <= 0 {
		t.Errorf("TSS = %.1f, want > 0", w.Targets.TSS)
	}
}

func TestNewSelectorDerivesPaceFromVDOT(t *testing.T) {
	s := NewSelector(plan.FitnessProfile{VDOT: 50}, plan.PlanConfig{Goal: plan.Goal5K})

	// VDOT 50 threshold pace lands near 4:15/km.
	if math.Abs(s.thresholdPace-255) > 10 {
		t.Errorf("thresholdPace = %.0f, want ~255", s.thresholdPace)
	}
}

func TestHRRangeNilWithoutMaxHR(t *testing.T) {
	s := NewSelector(plan.FitnessProfile{ThresholdPaceSecPerKm: 250}, plan.PlanConfig{Goal: plan.Goal10K})

	w, err := s.Resolve(testSlot(plan.WorkoutEasy, 8000, 3600))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if w.Segments[0].TargetHR != nil {
		t.Errorf("TargetHR = %+v, want nil without a max HR", w.Segments[0].TargetHR)
	}
}

func TestEnvironmentMultiplier(t *testing.T) {
	tests := []struct {
		name string
		env  plan.Environment
		want float64
	}{
		{"neutral", plan.Environment{}, 1.0},
		{"altitude at floor", plan.Environment{AltitudeMeters: 1500}, 1.0},
		{"altitude 2500m", plan.Environment{AltitudeMeters: 2500}, 1.015},
		{"warm 28C", plan.Environment{AvgTemperatureC: 28}, 1.04},
		{"heat capped", plan.Environment{AvgTemperatureC: 45}, 1.06},
		{"humid 80%", plan.Environment{HumidityPercent: 80}, 1.006},
		{"altitude and heat compose", plan.Environment{AltitudeMeters: 2500, AvgTemperatureC: 28}, 1.015 * 1.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnvironmentMultiplier(tt.env)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EnvironmentMultiplier() = %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestEnvironmentSlowsPaceNotLoad(t *testing.T) {
	base := testSelector()
	hot := NewSelector(
		plan.FitnessProfile{VDOT: 50, ThresholdPaceSecPerKm: 250, MaxHeartrate: 190},
		plan.PlanConfig{Goal: plan.Goal10K, Environment: plan.Environment{AltitudeMeters: 2500}},
	)

	slot := testSlot(plan.WorkoutEasy, 10000, 2400)
	baseW, err := base.Resolve(slot)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	hotW, err := hot.Resolve(slot)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// Both runs fill the same cap, so stress matches while paces differ.
	if baseW.Targets.DurationSeconds != hotW.Targets.DurationSeconds {
		t.Fatalf("durations differ: %d vs %d", baseW.Targets.DurationSeconds, hotW.Targets.DurationSeconds)
	}
	if baseW.Targets.TSS != hotW.Targets.TSS {
		t.Errorf("TSS differs under altitude: %.1f vs %.1f", baseW.Targets.TSS, hotW.Targets.TSS)
	}
	if hotW.Segments[0].TargetPace.FastSecPerKm <= baseW.Segments[0].TargetPace.FastSecPerKm {
		t.Errorf("altitude pace %.0f not slower than %.0f",
			hotW.Segments[0].TargetPace.FastSecPerKm, baseW.Segments[0].TargetPace.FastSecPerKm)
	}
	if hotW.Targets.DistanceMeters >= baseW.Targets.DistanceMeters {
		t.Errorf("altitude distance %.0f not below %.0f",
			hotW.Targets.DistanceMeters, baseW.Targets.DistanceMeters)
	}
}

func TestZoneFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want plan.Zone
	}{
		{70, plan.Zone1},
		{77, plan.Zone1},
		{78, plan.Zone2},
		{87, plan.Zone2},
		{88, plan.Zone3},
		{94, plan.Zone3},
		{95, plan.Zone4},
		{102, plan.Zone4},
		{103, plan.Zone5},
		{112, plan.Zone5},
	}

	for _, tt := range tests {
		if got := zoneFor(tt.pct); got != tt.want {
			t.Errorf("zoneFor(%.0f) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestPredictRaceSeconds(t *testing.T) {
	f := plan.FitnessProfile{VDOT: 50}

	if got := PredictRaceSeconds(f, plan.Goal10K); got != 2364 {
		t.Errorf("PredictRaceSeconds(10k) = %d, want 2364", got)
	}
	if got := PredictRaceSeconds(f, plan.GoalGeneralFitness); got != 0 {
		t.Errorf("PredictRaceSeconds(general fitness) = %d, want 0", got)
	}
	if got := PredictRaceSeconds(plan.FitnessProfile{}, plan.Goal5K); got != 0 {
		t.Errorf("PredictRaceSeconds(zero VDOT) = %d, want 0", got)
	}
}
