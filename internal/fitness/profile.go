package fitness

import (
	"math"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Trailing windows used for volume figures.
const (
	volumeWindowDays  = 28
	longRunWindowDays = 56
	maxTrainingAge    = 20.0
)

// WeeklyVolume averages meters per week over the trailing four weeks before
// asOf.
func WeeklyVolume(runs []plan.RunRecord, asOf time.Time) float64 {
	cutoff := asOf.AddDate(0, 0, -volumeWindowDays)
	var meters float64
	for _, r := range runs {
		if r.Date.Before(cutoff) || r.Date.After(asOf) {
			continue
		}
		meters += r.DistanceMeters
	}
	return meters / (volumeWindowDays / 7.0)
}

// LongestRun returns the longest single run within the trailing eight weeks.
func LongestRun(runs []plan.RunRecord, asOf time.Time) float64 {
	cutoff := asOf.AddDate(0, 0, -longRunWindowDays)
	var longest float64
	for _, r := range runs {
		if r.Date.Before(cutoff) || r.Date.After(asOf) {
			continue
		}
		if r.DistanceMeters > longest {
			longest = r.DistanceMeters
		}
	}
	return longest
}

// TrainingAge estimates years of running from the span of the history.
func TrainingAge(runs []plan.RunRecord) float64 {
	if len(runs) == 0 {
		return 0
	}
	first, last := runs[0].Date, runs[0].Date
	for _, r := range runs[1:] {
		if r.Date.Before(first) {
			first = r.Date
		}
		if r.Date.After(last) {
			last = r.Date
		}
	}
	years := last.Sub(first).Hours() / (24 * 365.25)
	if years > maxTrainingAge {
		return maxTrainingAge
	}
	return math.Round(years*10) / 10
}

// EstimateProfile derives the full fitness profile from run history as of a
// reference date. Estimates that cannot be supported by the data fall back
// to documented defaults and are listed in Defaulted.
func EstimateProfile(runs []plan.RunRecord, asOf time.Time) plan.FitnessProfile {
	var p plan.FitnessProfile

	p.WeeklyVolumeMeters = WeeklyVolume(runs, asOf)
	p.LongestRunMeters = LongestRun(runs, asOf)
	p.TrainingAgeYears = TrainingAge(runs)
	p.Experience = plan.ExperienceForTrainingAge(p.TrainingAgeYears)

	vdot, fromEfforts := EstimateVDOT(runs, p.WeeklyVolumeMeters)
	p.VDOT = vdot
	if !fromEfforts {
		p.Defaulted = append(p.Defaulted, "vdot")
	}

	p.ThresholdPaceSecPerKm = math.Round(ThresholdPaceSecPerKm(p.VDOT)*10) / 10

	cs, dPrime, ok := FitCriticalSpeed(runs)
	if !ok {
		cs = FallbackCriticalSpeed(p.VDOT)
		dPrime = DefaultDPrime
		p.Defaulted = append(p.Defaulted, "critical_speed")
	}
	p.CriticalSpeedMPS = math.Round(cs*100) / 100
	p.DPrimeMeters = math.Round(dPrime)

	economy, ok := EstimateEconomy(runs)
	if !ok {
		economy = DefaultEconomy
		p.Defaulted = append(p.Defaulted, "running_economy")
	}
	p.RunningEconomy = math.Round(economy)

	if len(runs) == 0 {
		p.RecoveryScore = DefaultRecovery
		p.Defaulted = append(p.Defaulted, "recovery_score")
	} else {
		p.RecoveryScore = RecoveryScore(runs, p.ThresholdPaceSecPerKm, asOf)
	}

	p.MaxHeartrate = observedMaxHR(runs)

	return p
}

// observedMaxHR returns the highest heart rate seen in the history, 0 when
// no run carries HR data.
func observedMaxHR(runs []plan.RunRecord) float64 {
	var maxHR float64
	for _, r := range runs {
		if r.MaxHeartrate != nil && *r.MaxHeartrate > maxHR {
			maxHR = *r.MaxHeartrate
		}
		if r.AvgHeartrate != nil && *r.AvgHeartrate > maxHR {
			maxHR = *r.AvgHeartrate
		}
	}
	return maxHR
}
