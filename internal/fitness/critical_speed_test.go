package fitness

import (
	"math"
	"testing"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

func effortRun(day int, distanceMeters float64, durationSeconds int) plan.RunRecord {
	return plan.RunRecord{
		Date:            time.Date(2026, time.January, day, 8, 0, 0, 0, time.UTC),
		DistanceMeters:  distanceMeters,
		DurationSeconds: durationSeconds,
		Race:            true,
	}
}

func TestFitCriticalSpeedExact(t *testing.T) {
	// Efforts lying exactly on distance = 4.0*t + 200 across three
	// duration buckets fit the model perfectly.
	runs := []plan.RunRecord{
		effortRun(2, 1400, 300),
		effortRun(9, 5000, 1200),
		effortRun(16, 12200, 3000),
	}

	cs, dPrime, ok := FitCriticalSpeed(runs)
	if !ok {
		t.Fatal("FitCriticalSpeed() ok = false, want fit")
	}
	if math.Abs(cs-4.0) > 0.01 {
		t.Errorf("cs = %.3f, want 4.0", cs)
	}
	if math.Abs(dPrime-200) > 1 {
		t.Errorf("dPrime = %.1f, want 200", dPrime)
	}
}

func TestFitCriticalSpeedPicksFastestPerBucket(t *testing.T) {
	runs := []plan.RunRecord{
		effortRun(2, 1400, 300),  // 4.67 m/s
		effortRun(3, 1000, 300),  // slower effort in the same bucket
		effortRun(9, 5000, 1200), // 4.17 m/s
	}

	cs, _, ok := FitCriticalSpeed(runs)
	if !ok {
		t.Fatal("expected a fit from two buckets")
	}
	// Slope between (300, 1400) and (1200, 5000) is 4.0; using the slow
	// short effort instead would give 4.44.
	if math.Abs(cs-4.0) > 0.01 {
		t.Errorf("cs = %.3f, want 4.0 (fastest short effort)", cs)
	}
}

func TestFitCriticalSpeedInsufficientData(t *testing.T) {
	tests := []struct {
		name string
		runs []plan.RunRecord
	}{
		{"empty", nil},
		{"single bucket", []plan.RunRecord{effortRun(2, 1400, 300), effortRun(3, 1300, 290)}},
		{"durations outside model range", []plan.RunRecord{
			effortRun(2, 400, 60),
			effortRun(3, 30000, 10000),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := FitCriticalSpeed(tt.runs); ok {
				t.Error("ok = true, want false")
			}
		})
	}
}

func TestFitCriticalSpeedRejectsImplausible(t *testing.T) {
	// A slower long effort than short effort produces a negative or tiny
	// slope, which must be rejected.
	runs := []plan.RunRecord{
		effortRun(2, 2000, 300),
		effortRun(9, 2100, 3000),
	}
	if _, _, ok := FitCriticalSpeed(runs); ok {
		t.Error("implausible fit accepted")
	}
}

func TestFitCriticalSpeedIgnoresEasyMileage(t *testing.T) {
	// A slow easy hour in the long bucket must not drag the model down.
	easy := effortRun(20, 10000, 3600)
	easy.Race = false

	runs := []plan.RunRecord{
		effortRun(2, 1400, 300),
		effortRun(9, 5000, 1200),
		easy,
	}
	cs, dPrime, ok := FitCriticalSpeed(runs)
	if !ok {
		t.Fatal("expected fit from the two maximal efforts")
	}
	if math.Abs(cs-4.0) > 0.01 || math.Abs(dPrime-200) > 1 {
		t.Errorf("cs = %.3f dPrime = %.1f, want 4.0/200 from efforts only", cs, dPrime)
	}
}

func TestFallbackCriticalSpeed(t *testing.T) {
	cs := FallbackCriticalSpeed(50)
	vth := ThresholdSpeedMPS(50)
	if cs <= vth {
		t.Errorf("fallback cs %.3f should sit above threshold speed %.3f", cs, vth)
	}
	if math.Abs(cs-vth*1.02) > 1e-9 {
		t.Errorf("fallback cs = %.3f, want threshold*1.02 = %.3f", cs, vth*1.02)
	}
}
