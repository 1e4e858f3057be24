package fitness

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestEstimateProfileEmptyHistory(t *testing.T) {
	asOf := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	p := EstimateProfile(nil, asOf)

	if p.VDOT != DefaultVDOT {
		t.Errorf("VDOT = %.1f, want default %.1f", p.VDOT, DefaultVDOT)
	}
	if p.ThresholdPaceSecPerKm <= 0 {
		t.Error("threshold pace should derive from the default VDOT")
	}
	if p.Experience != plan.ExperienceBeginner {
		t.Errorf("Experience = %q, want beginner", p.Experience)
	}
	if p.RecoveryScore != DefaultRecovery {
		t.Errorf("RecoveryScore = %.1f, want default %.1f", p.RecoveryScore, DefaultRecovery)
	}

	for _, field := range []string{"vdot", "critical_speed", "running_economy", "recovery_score"} {
		if !slices.Contains(p.Defaulted, field) {
			t.Errorf("Defaulted missing %q: %v", field, p.Defaulted)
		}
	}
}

// buildHistory fabricates eight weeks of consistent training ending the day
// before asOf: four easy 10K runs a week with heart rate, plus two maximal
// efforts for the critical-speed fit.
func buildHistory(asOf time.Time) []plan.RunRecord {
	var runs []plan.RunRecord
	start := asOf.AddDate(0, 0, -56)
	for week := 0; week < 8; week++ {
		for _, day := range []int{0, 2, 4, 5} {
			runs = append(runs, plan.RunRecord{
				Date:            start.AddDate(0, 0, week*7+day),
				DistanceMeters:  10000,
				DurationSeconds: 3600,
				AvgHeartrate:    floatPtr(150),
				MaxHeartrate:    floatPtr(168),
				PerceivedEffort: intPtr(4),
			})
		}
	}
	// 5K race and a hard 3K, three and five weeks out.
	runs = append(runs,
		plan.RunRecord{
			Date:            asOf.AddDate(0, 0, -21),
			DistanceMeters:  5000,
			DurationSeconds: 1200,
			Race:            true,
			MaxHeartrate:    floatPtr(188),
		},
		plan.RunRecord{
			Date:            asOf.AddDate(0, 0, -35),
			DistanceMeters:  3000,
			DurationSeconds: 700,
			PerceivedEffort: intPtr(9),
		},
	)
	return runs
}

func TestEstimateProfileRichHistory(t *testing.T) {
	asOf := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	p := EstimateProfile(buildHistory(asOf), asOf)

	if len(p.Defaulted) != 0 {
		t.Errorf("Defaulted = %v, want none with a rich history", p.Defaulted)
	}
	if math.Abs(p.VDOT-47.5) > 0.3 {
		t.Errorf("VDOT = %.1f, want ~47.5 from the 5K race", p.VDOT)
	}
	if p.CriticalSpeedMPS < 3.5 || p.CriticalSpeedMPS > 4.3 {
		t.Errorf("CriticalSpeedMPS = %.2f, want fitted value in (3.5, 4.3)", p.CriticalSpeedMPS)
	}
	if p.DPrimeMeters < 0 || p.DPrimeMeters > maxDPrime {
		t.Errorf("DPrimeMeters = %.0f out of plausible range", p.DPrimeMeters)
	}
	// Easy 10Ks at HR 150: 150 beats/min * 60 min / 10 km = 900 beats/km.
	if math.Abs(p.RunningEconomy-900) > 10 {
		t.Errorf("RunningEconomy = %.0f, want ~900", p.RunningEconomy)
	}
	// Four 10K runs a week within the trailing four-week window, with the
	// race and hard effort adding a little extra.
	weeklyKm := p.WeeklyVolumeMeters / 1000
	if weeklyKm < 40 || weeklyKm > 45 {
		t.Errorf("weekly volume = %.1f km, want 40-45", weeklyKm)
	}
	if p.LongestRunMeters != 10000 {
		t.Errorf("LongestRunMeters = %.0f, want 10000", p.LongestRunMeters)
	}
	if p.MaxHeartrate != 188 {
		t.Errorf("MaxHeartrate = %.0f, want highest observed 188", p.MaxHeartrate)
	}
	if p.RecoveryScore <= 0 || p.RecoveryScore >= 100 {
		t.Errorf("RecoveryScore = %.1f, want computed value in (0, 100)", p.RecoveryScore)
	}
}

func TestTrainingAge(t *testing.T) {
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		runs []plan.RunRecord
		want float64
	}{
		{"empty", nil, 0},
		{"single run", []plan.RunRecord{{Date: base}}, 0},
		{
			"two years",
			[]plan.RunRecord{{Date: base}, {Date: base.AddDate(2, 0, 0)}},
			2.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrainingAge(tt.runs)
			if math.Abs(got-tt.want) > 0.05 {
				t.Errorf("TrainingAge = %.2f, want %.1f", got, tt.want)
			}
		})
	}
}

func TestExperienceForTrainingAge(t *testing.T) {
	tests := []struct {
		years float64
		want  plan.ExperienceLevel
	}{
		{0, plan.ExperienceBeginner},
		{0.9, plan.ExperienceBeginner},
		{1, plan.ExperienceIntermediate},
		{2.9, plan.ExperienceIntermediate},
		{3, plan.ExperienceAdvanced},
		{12, plan.ExperienceAdvanced},
	}
	for _, tt := range tests {
		if got := plan.ExperienceForTrainingAge(tt.years); got != tt.want {
			t.Errorf("ExperienceForTrainingAge(%.1f) = %q, want %q", tt.years, got, tt.want)
		}
	}
}
