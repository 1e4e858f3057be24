package transition

import (
	"math"
	"strings"
	"testing"

	"github.com/AustinOrphan/training-plan-generator/internal/methodology"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

func TestPlanLydiardToDaniels(t *testing.T) {
	s, err := Plan(nil, "lydiard", "daniels", 0)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if s.From != "lydiard" || s.To != "daniels" {
		t.Errorf("endpoints = %s -> %s", s.From, s.To)
	}
	if len(s.Weeks) != DefaultWeeks {
		t.Fatalf("weeks = %d, want %d", len(s.Weeks), DefaultWeeks)
	}

	want := []plan.IntensityDistribution{
		{EasyPercent: 73.8, ModeratePercent: 15, HardPercent: 11.2},
		{EasyPercent: 72.5, ModeratePercent: 15, HardPercent: 12.5},
		{EasyPercent: 71.3, ModeratePercent: 15, HardPercent: 13.7},
		{EasyPercent: 70, ModeratePercent: 15, HardPercent: 15},
	}
	for i, wk := range s.Weeks {
		if wk.Number != i+1 {
			t.Errorf("week %d numbered %d", i+1, wk.Number)
		}
		if math.Abs(wk.Intensity.EasyPercent-want[i].EasyPercent) > 0.001 ||
			math.Abs(wk.Intensity.ModeratePercent-want[i].ModeratePercent) > 0.001 ||
			math.Abs(wk.Intensity.HardPercent-want[i].HardPercent) > 0.001 {
			t.Errorf("week %d intensity = %+v, want %+v", i+1, wk.Intensity, want[i])
		}
	}
	if got := s.Weeks[0].Focus; got != "75% lydiard / 25% daniels emphasis" {
		t.Errorf("week 1 focus = %q", got)
	}

	// Recovery emphasis falls 0.70 -> 0.50 and the lead quality session
	// becomes a hard type; both deserve watch-points.
	if len(s.WatchPoints) != 2 {
		t.Fatalf("watch points = %v, want 2", s.WatchPoints)
	}
	if !strings.Contains(s.WatchPoints[0], "recovery emphasis") {
		t.Errorf("watch point 0 = %q", s.WatchPoints[0])
	}
	if !strings.Contains(s.WatchPoints[1], "Threshold") {
		t.Errorf("watch point 1 = %q", s.WatchPoints[1])
	}

	if len(s.Notes) != 3 {
		t.Fatalf("notes = %v, want 3", s.Notes)
	}
	if !strings.Contains(s.Notes[1], "Steady to Threshold") {
		t.Errorf("note 1 = %q", s.Notes[1])
	}
}

func TestPlanWeeksDefaultAndClamp(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultWeeks},
		{1, MinWeeks},
		{2, 2},
		{5, 5},
		{8, 8},
		{12, MaxWeeks},
	}
	for _, tt := range tests {
		s, err := Plan(nil, "hudson", "pfitzinger", tt.in)
		if err != nil {
			t.Fatalf("Plan(%d): %v", tt.in, err)
		}
		if len(s.Weeks) != tt.want {
			t.Errorf("Plan(%d) weeks = %d, want %d", tt.in, len(s.Weeks), tt.want)
		}
		last := s.Weeks[len(s.Weeks)-1].Intensity
		if math.Abs(last.EasyPercent-70) > 0.001 || math.Abs(last.HardPercent-15) > 0.001 {
			t.Errorf("Plan(%d) final week = %+v, want target mix", tt.in, last)
		}
	}
}

func TestPlanErrors(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantSub  string
	}{
		{"unknown source", "galloway", "daniels", "transition from"},
		{"unknown target", "daniels", "maffetone", "transition to"},
		{"same methodology", "daniels", "Daniels", "already training on"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plan(nil, tt.from, tt.to, 4)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %v, want %q", err, tt.wantSub)
			}
		})
	}
}

func TestPlanTotalsPreserved(t *testing.T) {
	registry := methodology.NewRegistry()
	names := registry.Names()
	for _, from := range names {
		for _, to := range names {
			if from == to {
				continue
			}
			for weeks := MinWeeks; weeks <= MaxWeeks; weeks++ {
				s, err := Plan(registry, from, to, weeks)
				if err != nil {
					t.Fatalf("Plan(%s, %s, %d): %v", from, to, weeks, err)
				}
				for _, wk := range s.Weeks {
					sum := wk.Intensity.EasyPercent + wk.Intensity.ModeratePercent + wk.Intensity.HardPercent
					if math.Abs(sum-100) > 1e-9 {
						t.Errorf("%s -> %s week %d sums to %v", from, to, wk.Number, sum)
					}
				}
			}
		}
	}
}

func TestPlanLargeShiftWatchPoints(t *testing.T) {
	registry := methodology.NewRegistry()
	durations := make(map[plan.Phase]methodology.PhaseDuration)
	for _, phase := range plan.PhaseOrder {
		durations[phase] = methodology.PhaseDuration{MinWeeks: 1, OptimalWeeks: 2, MaxWeeks: 4}
	}
	err := registry.Register(methodology.Profile{
		Name:             "track",
		Description:      "short event speed block",
		Intensity:        plan.IntensityDistribution{EasyPercent: 50, ModeratePercent: 20, HardPercent: 30},
		Priorities:       []plan.WorkoutType{plan.WorkoutSpeed, plan.WorkoutVO2Max},
		RecoveryEmphasis: 0.3,
		PhaseDurations:   durations,
		DeloadEveryWeeks: 3,
		DeloadReduction:  0.2,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	s, err := Plan(registry, "hudson", "track", 6)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	// Easy and hard both move 20 points, recovery emphasis drops 0.30, and
	// the lead quality becomes a hard type.
	if len(s.WatchPoints) != 4 {
		t.Fatalf("watch points = %v, want 4", s.WatchPoints)
	}
	if !strings.Contains(s.WatchPoints[0], "easy share moves 20 points") {
		t.Errorf("watch point 0 = %q", s.WatchPoints[0])
	}
	if !strings.Contains(s.WatchPoints[1], "hard share moves 20 points") {
		t.Errorf("watch point 1 = %q", s.WatchPoints[1])
	}
	if !strings.Contains(s.WatchPoints[3], "Speed") {
		t.Errorf("watch point 3 = %q", s.WatchPoints[3])
	}
}
