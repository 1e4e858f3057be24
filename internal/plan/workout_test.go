package plan

import "testing"

func TestWorkoutTypeClass(t *testing.T) {
	tests := []struct {
		typ  WorkoutType
		want IntensityClass
	}{
		{WorkoutRecovery, IntensityEasy},
		{WorkoutEasy, IntensityEasy},
		{WorkoutLongRun, IntensityEasy},
		{WorkoutCrossTraining, IntensityEasy},
		{WorkoutSteady, IntensityModerate},
		{WorkoutTempo, IntensityModerate},
		{WorkoutRacePace, IntensityModerate},
		{WorkoutThreshold, IntensityHard},
		{WorkoutVO2Max, IntensityHard},
		{WorkoutHillRepeats, IntensityHard},
		{WorkoutTimeTrial, IntensityHard},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.Class(); got != tt.want {
				t.Errorf("Class() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSegmentTotals(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want int
	}{
		{"single", Segment{DurationSeconds: 600}, 600},
		{"repeat zero means once", Segment{DurationSeconds: 180, Repeat: 0}, 180},
		{"repeated", Segment{DurationSeconds: 180, Repeat: 5}, 900},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.TotalSeconds(); got != tt.want {
				t.Errorf("TotalSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWorkoutSegmentSecondsMatchesTargets(t *testing.T) {
	w := PlannedWorkout{
		Segments: []Segment{
			{Name: "warmup", DurationSeconds: 600},
			{Name: "work", DurationSeconds: 300, Repeat: 4},
			{Name: "cooldown", DurationSeconds: 600},
		},
		Targets: TargetMetrics{DurationSeconds: 2400},
	}
	if got := w.SegmentSeconds(); got != w.Targets.DurationSeconds {
		t.Errorf("SegmentSeconds() = %d, want %d", got, w.Targets.DurationSeconds)
	}
}

func TestRunRecordPace(t *testing.T) {
	recorded := 312.0
	tests := []struct {
		name string
		run  RunRecord
		want float64
	}{
		{"recorded pace wins", RunRecord{DistanceMeters: 10000, DurationSeconds: 3600, AvgPaceSecPerKm: &recorded}, 312},
		{"derived", RunRecord{DistanceMeters: 10000, DurationSeconds: 3000}, 300},
		{"no data", RunRecord{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run.PaceSecPerKm(); got != tt.want {
				t.Errorf("PaceSecPerKm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPlanIDDeterministic(t *testing.T) {
	a := NewPlanID([]byte("goal=10k|weeks=12"))
	b := NewPlanID([]byte("goal=10k|weeks=12"))
	c := NewPlanID([]byte("goal=10k|weeks=16"))

	if a != b {
		t.Errorf("same fingerprint produced different IDs: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different fingerprints produced the same ID: %s", a)
	}
}
