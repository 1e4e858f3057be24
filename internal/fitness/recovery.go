package fitness

import (
	"math"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Recovery scoring constants. A fully rested week scores RestedScore; strain
// accumulated over the trailing week pulls the score down.
const (
	RestedScore     = 85.0
	DefaultRecovery = 75.0

	strainDivisor    = 12.0
	monotonyPenalty  = 5.0
	monotonyCeiling  = 3.0
	monotonySafeZone = 2.0
)

// Monotony is Foster's training monotony: mean daily load over its standard
// deviation, capped at monotonyCeiling. Uniform daily loading recovers worse
// than the same volume with variation.
func Monotony(daily []float64) float64 {
	if len(daily) == 0 {
		return 0
	}
	var sum float64
	for _, v := range daily {
		sum += v
	}
	mean := sum / float64(len(daily))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, v := range daily {
		variance += (v - mean) * (v - mean)
	}
	sd := math.Sqrt(variance / float64(len(daily)))
	if sd == 0 {
		return monotonyCeiling
	}
	m := mean / sd
	if m > monotonyCeiling {
		return monotonyCeiling
	}
	return m
}

// RecoveryScore rates current recovery 0-100 from the trailing week's strain
// (weekly load times monotony). An empty week scores as rested.
func RecoveryScore(runs []plan.RunRecord, thresholdPaceSecPerKm float64, asOf time.Time) float64 {
	asOfDay := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := asOfDay.AddDate(0, 0, -AcuteWindowDays)

	daily := make([]float64, AcuteWindowDays)
	var weekly float64
	seen := false
	for _, r := range runs {
		day := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(windowStart) || !day.Before(asOfDay) {
			continue
		}
		idx := int(day.Sub(windowStart).Hours() / 24)
		if idx < 0 || idx >= AcuteWindowDays {
			continue
		}
		tss := RunTSS(r, thresholdPaceSecPerKm)
		daily[idx] += tss
		weekly += tss
		seen = true
	}

	if !seen {
		return RestedScore
	}

	monotony := Monotony(daily)
	strain := weekly * monotony

	score := 100.0 - strain/strainDivisor
	if monotony > monotonySafeZone {
		score -= (monotony - monotonySafeZone) * monotonyPenalty
	}
	return math.Round(clamp(score, 0, 100)*10) / 10
}

// InjuryRisk composes the load ratio band, week-over-week volume growth and
// the recovery deficit into a 0-100 risk score.
func InjuryRisk(load plan.TrainingLoad, weeklyIncreasePct, recoveryScore float64) plan.InjuryRisk {
	var ratioComponent float64
	switch load.Status {
	case plan.LoadVeryLow:
		ratioComponent = 20
	case plan.LoadOptimal:
		ratioComponent = 10
	case plan.LoadCaution:
		ratioComponent = 50
	default:
		ratioComponent = 85
	}
	if !load.RatioValid {
		ratioComponent = 30 // unknown history carries its own risk
	}

	increaseComponent := clamp((weeklyIncreasePct-5)*4, 0, 100)
	deficitComponent := clamp(100-recoveryScore, 0, 100)

	score := 0.45*ratioComponent + 0.25*increaseComponent + 0.30*deficitComponent
	score = math.Round(clamp(score, 0, 100)*10) / 10

	var band string
	switch {
	case score < 33:
		band = "low"
	case score < 66:
		band = "moderate"
	default:
		band = "high"
	}
	return plan.InjuryRisk{Score: score, Band: band}
}
