package fitness

import (
	"sort"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// DefaultEconomy is the beats-per-kilometer proxy assumed when no run
// carries heart-rate data. Lower values mean better economy.
const DefaultEconomy = 750.0

// minEconomyDistance filters out runs too short for a stable HR average.
const minEconomyDistance = 2000.0

// EstimateEconomy derives a running-economy proxy (heart beats per
// kilometer) as the median over runs carrying both pace and heart rate.
// It reports ok=false when no run qualifies.
func EstimateEconomy(runs []plan.RunRecord) (economy float64, ok bool) {
	var samples []float64
	for _, r := range runs {
		if r.AvgHeartrate == nil || *r.AvgHeartrate <= 0 {
			continue
		}
		if r.DistanceMeters < minEconomyDistance || r.DurationSeconds <= 0 {
			continue
		}
		minutes := float64(r.DurationSeconds) / 60.0
		km := r.DistanceMeters / 1000.0
		samples = append(samples, *r.AvgHeartrate*minutes/km)
	}
	if len(samples) == 0 {
		return 0, false
	}

	sort.Float64s(samples)
	mid := len(samples) / 2
	if len(samples)%2 == 1 {
		return samples[mid], true
	}
	return (samples[mid-1] + samples[mid]) / 2, true
}
