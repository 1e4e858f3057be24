package fitness

import (
	"math"
	"testing"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

func TestVDOTFromPerformance(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		duration int
		expected float64
		delta    float64
	}{
		{
			name:     "30min 5K is VDOT 31",
			distance: Distance5K,
			duration: 1800,
			expected: 31.1,
			delta:    0.3,
		},
		{
			name:     "20min 5K interpolates between rows",
			distance: Distance5K,
			duration: 1200,
			expected: 47.5,
			delta:    0.3,
		},
		{
			name:     "40min 10K",
			distance: Distance10K,
			duration: 2400,
			expected: 49.3,
			delta:    0.3,
		},
		{
			name:     "3hr marathon",
			distance: DistanceMarathon,
			duration: 10800,
			expected: 48.7,
			delta:    0.3,
		},
		{
			name:     "90min half marathon",
			distance: DistanceHalfMara,
			duration: 5400,
			expected: 47.3,
			delta:    0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VDOTFromPerformance(tt.distance, tt.duration)
			if math.Abs(got-tt.expected) > tt.delta {
				t.Errorf("VDOTFromPerformance(%.0f, %d) = %.1f, want %.1f ± %.1f",
					tt.distance, tt.duration, got, tt.expected, tt.delta)
			}
		})
	}
}

func TestVDOTFromPerformanceEdgeCases(t *testing.T) {
	t.Run("zero duration returns zero", func(t *testing.T) {
		if got := VDOTFromPerformance(Distance5K, 0); got != 0 {
			t.Errorf("got %.1f, want 0", got)
		}
	})

	t.Run("zero distance returns zero", func(t *testing.T) {
		if got := VDOTFromPerformance(0, 1200); got != 0 {
			t.Errorf("got %.1f, want 0", got)
		}
	})

	t.Run("very slow clamps to table bottom", func(t *testing.T) {
		if got := VDOTFromPerformance(Distance5K, 4000); got != MinVDOT {
			t.Errorf("got %.1f, want %.1f", got, MinVDOT)
		}
	})

	t.Run("world record pace clamps to table top", func(t *testing.T) {
		if got := VDOTFromPerformance(Distance5K, 600); got != MaxVDOT {
			t.Errorf("got %.1f, want %.1f", got, MaxVDOT)
		}
	})

	t.Run("non-standard distance interpolates", func(t *testing.T) {
		// 8K sits between 5K and 10K; a 30min 8K should be a stronger
		// performance than a 30min 5K.
		vdot8k := VDOTFromPerformance(8000, 1800)
		vdot5k := VDOTFromPerformance(Distance5K, 1800)
		if vdot8k <= vdot5k {
			t.Errorf("8K VDOT %.1f should exceed 5K VDOT %.1f for equal time", vdot8k, vdot5k)
		}
	})
}

func TestPredictTimeRoundTrip(t *testing.T) {
	// A VDOT derived from a performance should predict approximately the
	// same performance back.
	duration := 2400 // 40min 10K
	vdot := VDOTFromPerformance(Distance10K, duration)
	predicted := PredictTime(vdot, Distance10K)

	if math.Abs(float64(predicted-duration)) > 30 {
		t.Errorf("round trip drifted: %d -> VDOT %.1f -> %d", duration, vdot, predicted)
	}
}

func TestPredictTimeAcrossDistances(t *testing.T) {
	// VDOT 50 canonical times from the table.
	tests := []struct {
		distance float64
		want     int
	}{
		{Distance5K, 1140},
		{Distance10K, 2364},
		{DistanceHalfMara, 5100},
		{DistanceMarathon, 10494},
	}
	for _, tt := range tests {
		got := PredictTime(50, tt.distance)
		if got != tt.want {
			t.Errorf("PredictTime(50, %.0f) = %d, want %d", tt.distance, got, tt.want)
		}
	}
}

func TestVDOTFromVolume(t *testing.T) {
	tests := []struct {
		name         string
		weeklyMeters float64
		expected     float64
		delta        float64
	}{
		{"no volume uses default", 0, DefaultVDOT, 0},
		{"20km per week", 20000, 35.0, 0.1},
		{"40km per week", 40000, 42.0, 0.1},
		{"huge volume clamps", 200000, MaxVolumeVDOT, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VDOTFromVolume(tt.weeklyMeters)
			if math.Abs(got-tt.expected) > tt.delta {
				t.Errorf("VDOTFromVolume(%.0f) = %.1f, want %.1f", tt.weeklyMeters, got, tt.expected)
			}
		})
	}
}

func TestEstimateVDOT(t *testing.T) {
	effort9 := 9
	effort5 := 5

	t.Run("empty history returns documented default", func(t *testing.T) {
		vdot, fromEfforts := EstimateVDOT(nil, 0)
		if vdot != DefaultVDOT {
			t.Errorf("vdot = %.1f, want %.1f", vdot, DefaultVDOT)
		}
		if fromEfforts {
			t.Error("fromEfforts = true, want false")
		}
	})

	t.Run("race flag qualifies", func(t *testing.T) {
		runs := []plan.RunRecord{
			{DistanceMeters: Distance5K, DurationSeconds: 1200, Race: true},
		}
		vdot, fromEfforts := EstimateVDOT(runs, 0)
		if !fromEfforts {
			t.Fatal("expected race-derived estimate")
		}
		if math.Abs(vdot-47.5) > 0.3 {
			t.Errorf("vdot = %.1f, want ~47.5", vdot)
		}
	})

	t.Run("best of several efforts wins", func(t *testing.T) {
		runs := []plan.RunRecord{
			{DistanceMeters: Distance5K, DurationSeconds: 1500, Race: true},
			{DistanceMeters: Distance10K, DurationSeconds: 2400, Race: true},
		}
		vdot, _ := EstimateVDOT(runs, 0)
		slower := VDOTFromPerformance(Distance5K, 1500)
		if vdot <= slower {
			t.Errorf("vdot = %.1f, should exceed the slower effort's %.1f", vdot, slower)
		}
	})

	t.Run("near-maximal perceived effort qualifies", func(t *testing.T) {
		runs := []plan.RunRecord{
			{DistanceMeters: Distance5K, DurationSeconds: 1300, PerceivedEffort: &effort9},
		}
		_, fromEfforts := EstimateVDOT(runs, 0)
		if !fromEfforts {
			t.Error("RPE 9 run should qualify as race-like")
		}
	})

	t.Run("easy runs fall back to volume", func(t *testing.T) {
		runs := []plan.RunRecord{
			{DistanceMeters: 10000, DurationSeconds: 3600, PerceivedEffort: &effort5},
		}
		vdot, fromEfforts := EstimateVDOT(runs, 40000)
		if fromEfforts {
			t.Error("easy run should not qualify")
		}
		if math.Abs(vdot-42.0) > 0.1 {
			t.Errorf("vdot = %.1f, want volume-derived 42.0", vdot)
		}
	})

	t.Run("sprint distances never qualify", func(t *testing.T) {
		runs := []plan.RunRecord{
			{DistanceMeters: 400, DurationSeconds: 60, Race: true},
		}
		_, fromEfforts := EstimateVDOT(runs, 0)
		if fromEfforts {
			t.Error("400m should be below the qualifying distance")
		}
	})
}

func TestVDOTLabel(t *testing.T) {
	tests := []struct {
		vdot float64
		want string
	}{
		{80, "Elite"},
		{67, "Highly Competitive"},
		{58, "Competitive"},
		{47, "Advanced Recreational"},
		{40, "Intermediate"},
		{31, "Beginner"},
		{25, "Novice"},
	}
	for _, tt := range tests {
		if got := VDOTLabel(tt.vdot); got != tt.want {
			t.Errorf("VDOTLabel(%.0f) = %q, want %q", tt.vdot, got, tt.want)
		}
	}
}
