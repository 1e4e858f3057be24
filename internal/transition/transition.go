// Package transition plans the switch from one training methodology to
// another: a short bridge whose weekly intensity mix moves linearly from the
// old profile's distribution to the new one's. The planner only reads
// methodology data; it never reschedules an existing plan.
package transition

import (
	"fmt"
	"math"

	"github.com/AustinOrphan/training-plan-generator/internal/methodology"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Bridge length bounds in weeks.
const (
	DefaultWeeks = 4
	MinWeeks     = 2
	MaxWeeks     = 8

	// watchPointDelta is the endpoint-to-endpoint shift, in percentage
	// points of one intensity class, above which the bridge earns a
	// watch-point.
	watchPointDelta = 10.0
)

// Week is one step of the bridge schedule.
type Week struct {
	Number    int                        `json:"number"`
	Intensity plan.IntensityDistribution `json:"intensity"`
	Focus     string                     `json:"focus"`
}

// Schedule is the full methodology bridge.
type Schedule struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Weeks []Week `json:"weeks"`

	// WatchPoints flag the shifts large enough to need deliberate
	// management; Notes describe the remaining adaptations.
	WatchPoints []string `json:"watch_points,omitempty"`
	Notes       []string `json:"notes"`
}

// Plan builds a bridge between two registered methodologies. A weeks value of
// zero selects the default; other values clamp to [MinWeeks, MaxWeeks]. A nil
// registry uses the built-in methodologies.
func Plan(registry *methodology.Registry, from, to string, weeks int) (*Schedule, error) {
	if registry == nil {
		registry = methodology.NewRegistry()
	}
	src, err := registry.Get(from)
	if err != nil {
		return nil, fmt.Errorf("transition from: %w", err)
	}
	dst, err := registry.Get(to)
	if err != nil {
		return nil, fmt.Errorf("transition to: %w", err)
	}
	if src.Name == dst.Name {
		return nil, fmt.Errorf("transition: already training on %s", src.Name)
	}

	switch {
	case weeks == 0:
		weeks = DefaultWeeks
	case weeks < MinWeeks:
		weeks = MinWeeks
	case weeks > MaxWeeks:
		weeks = MaxWeeks
	}

	s := &Schedule{From: src.Name, To: dst.Name, Weeks: make([]Week, weeks)}
	for i := range s.Weeks {
		t := float64(i+1) / float64(weeks) // week `weeks` lands on the target mix
		s.Weeks[i] = Week{
			Number:    i + 1,
			Intensity: blend(src.Intensity, dst.Intensity, t),
			Focus: fmt.Sprintf("%.0f%% %s / %.0f%% %s emphasis",
				(1-t)*100, src.Name, t*100, dst.Name),
		}
	}

	s.WatchPoints = watchPoints(src, dst)
	s.Notes = notes(src, dst, weeks)
	return s, nil
}

// blend interpolates between two intensity mixes at fraction t, rounding to
// one decimal while keeping the three shares summing to 100.
func blend(from, to plan.IntensityDistribution, t float64) plan.IntensityDistribution {
	easy := round1(from.EasyPercent + (to.EasyPercent-from.EasyPercent)*t)
	moderate := round1(from.ModeratePercent + (to.ModeratePercent-from.ModeratePercent)*t)
	return plan.IntensityDistribution{
		EasyPercent:     easy,
		ModeratePercent: moderate,
		HardPercent:     round1(100 - easy - moderate),
	}
}

func watchPoints(src, dst methodology.Profile) []string {
	var points []string

	type shift struct {
		label    string
		from, to float64
	}
	for _, sh := range []shift{
		{"easy", src.Intensity.EasyPercent, dst.Intensity.EasyPercent},
		{"moderate", src.Intensity.ModeratePercent, dst.Intensity.ModeratePercent},
		{"hard", src.Intensity.HardPercent, dst.Intensity.HardPercent},
	} {
		if math.Abs(sh.to-sh.from) > watchPointDelta {
			points = append(points, fmt.Sprintf(
				"%s share moves %.0f points (%.0f%% to %.0f%%); hold each step for the full week before adding more",
				sh.label, math.Abs(sh.to-sh.from), sh.from, sh.to))
		}
	}

	if dst.RecoveryEmphasis < src.RecoveryEmphasis-0.15 {
		points = append(points, fmt.Sprintf(
			"recovery emphasis drops from %.2f to %.2f; watch morning resting heart rate for accumulating fatigue",
			src.RecoveryEmphasis, dst.RecoveryEmphasis))
	}

	if lead := leadQuality(dst); lead != leadQuality(src) && lead.Class() == plan.IntensityHard {
		points = append(points, fmt.Sprintf(
			"lead quality session becomes %s; run the first two at reduced rep counts",
			lead.Label()))
	}

	return points
}

func notes(src, dst methodology.Profile, weeks int) []string {
	notes := []string{fmt.Sprintf(
		"Intensity mix moves from %.0f/%.0f/%.0f to %.0f/%.0f/%.0f (easy/moderate/hard) over %d weeks.",
		src.Intensity.EasyPercent, src.Intensity.ModeratePercent, src.Intensity.HardPercent,
		dst.Intensity.EasyPercent, dst.Intensity.ModeratePercent, dst.Intensity.HardPercent,
		weeks)}

	if src.DeloadEveryWeeks != dst.DeloadEveryWeeks {
		notes = append(notes, fmt.Sprintf(
			"Deload cadence changes from every %d weeks to every %d.",
			src.DeloadEveryWeeks, dst.DeloadEveryWeeks))
	}
	if lead := leadQuality(dst); lead != leadQuality(src) {
		notes = append(notes, fmt.Sprintf(
			"Lead quality session changes from %s to %s.",
			leadQuality(src).Label(), lead.Label()))
	}
	notes = append(notes, fmt.Sprintf("After the bridge, regenerate the plan with methodology %q.", dst.Name))
	return notes
}

// leadQuality is a profile's most characteristic workout type.
func leadQuality(p methodology.Profile) plan.WorkoutType {
	if len(p.Priorities) == 0 {
		return plan.WorkoutEasy
	}
	return p.Priorities[0]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
