package fitness

import (
	"math"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Intensity-factor bounds. Paces far outside the threshold neighborhood are
// clamped rather than extrapolated; runs with no pace data assume an easy
// aerobic effort.
const (
	MinIntensityFactor     = 0.3
	MaxIntensityFactor     = 1.3
	DefaultIntensityFactor = 0.65
)

// IntensityFactor is the ratio of threshold pace to actual pace: 1.0 at
// threshold, above 1.0 when faster.
func IntensityFactor(paceSecPerKm, thresholdPaceSecPerKm float64) float64 {
	if paceSecPerKm <= 0 || thresholdPaceSecPerKm <= 0 {
		return DefaultIntensityFactor
	}
	ifact := thresholdPaceSecPerKm / paceSecPerKm
	if ifact < MinIntensityFactor {
		return MinIntensityFactor
	}
	if ifact > MaxIntensityFactor {
		return MaxIntensityFactor
	}
	return ifact
}

// TSS is the training stress of a duration held at an intensity factor.
// An hour at threshold scores 100; stress grows with the square of
// intensity.
func TSS(durationSeconds int, intensityFactor float64) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	hours := float64(durationSeconds) / 3600.0
	return hours * intensityFactor * intensityFactor * 100.0
}

// RunTSS scores one completed run against the athlete's threshold pace.
func RunTSS(r plan.RunRecord, thresholdPaceSecPerKm float64) float64 {
	ifact := IntensityFactor(r.PaceSecPerKm(), thresholdPaceSecPerKm)
	return math.Round(TSS(r.DurationSeconds, ifact)*10) / 10
}
