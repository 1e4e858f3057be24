package fitness

import (
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// DefaultDPrime is the anaerobic distance capacity assumed when the history
// cannot support a critical-speed fit.
const DefaultDPrime = 200.0

// Plausibility bounds for a fitted model. Fits outside these reject.
const (
	minCriticalSpeed = 1.0 // m/s, ~16:40/km
	maxCriticalSpeed = 8.0 // m/s, beyond world-record pace
	maxDPrime        = 1000.0
)

// csBuckets are the duration windows (seconds) the fit samples best efforts
// from. The hyperbolic model holds between roughly 3 and 120 minutes.
var csBuckets = [][2]int{
	{180, 480},
	{480, 900},
	{900, 1500},
	{1500, 2400},
	{2400, 4200},
	{4200, 7200},
}

// csEffort reports whether a run counts as a maximal effort for the fit.
// Easy mileage would drag the model toward training pace, so only races and
// near-maximal sessions qualify.
func csEffort(r plan.RunRecord) bool {
	if r.Race {
		return true
	}
	return r.PerceivedEffort != nil && *r.PerceivedEffort >= 8
}

// FitCriticalSpeed fits the two-parameter hyperbolic model
// distance = CS*t + D' by least squares over the fastest maximal effort in
// each duration bucket. It reports ok=false when fewer than two buckets are
// populated or the fitted parameters are implausible.
func FitCriticalSpeed(runs []plan.RunRecord) (cs, dPrime float64, ok bool) {
	type point struct {
		t float64 // seconds
		d float64 // meters
	}

	var points []point
	for _, bucket := range csBuckets {
		var best *plan.RunRecord
		bestSpeed := 0.0
		for i := range runs {
			r := runs[i]
			if !csEffort(r) {
				continue
			}
			if r.DurationSeconds < bucket[0] || r.DurationSeconds >= bucket[1] {
				continue
			}
			if speed := r.SpeedMPS(); speed > bestSpeed {
				bestSpeed = speed
				best = &runs[i]
			}
		}
		if best != nil {
			points = append(points, point{
				t: float64(best.DurationSeconds),
				d: best.DistanceMeters,
			})
		}
	}

	if len(points) < 2 {
		return 0, 0, false
	}

	var sumT, sumD float64
	for _, p := range points {
		sumT += p.t
		sumD += p.d
	}
	meanT := sumT / float64(len(points))
	meanD := sumD / float64(len(points))

	var num, den float64
	for _, p := range points {
		num += (p.t - meanT) * (p.d - meanD)
		den += (p.t - meanT) * (p.t - meanT)
	}
	if den == 0 {
		return 0, 0, false
	}

	cs = num / den
	dPrime = meanD - cs*meanT

	if cs < minCriticalSpeed || cs > maxCriticalSpeed || dPrime < 0 || dPrime > maxDPrime {
		return 0, 0, false
	}
	return cs, dPrime, true
}

// FallbackCriticalSpeed approximates critical speed from threshold speed
// when the history cannot support a fit. Critical speed sits slightly above
// threshold intensity.
func FallbackCriticalSpeed(vdot float64) float64 {
	return ThresholdSpeedMPS(vdot) * 1.02
}
