package workout

import (
	"math"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// zoneBand maps a training zone to its intensity band as a percentage of
// threshold speed.
type zoneBand struct {
	zone plan.Zone
	low  float64
	high float64
}

var zoneBands = []zoneBand{
	{plan.Zone1, 68, 77},
	{plan.Zone2, 78, 87},
	{plan.Zone3, 88, 94},
	{plan.Zone4, 95, 102},
	{plan.Zone5, 103, 115},
}

// hrBand maps a zone to its heart-rate band as a fraction of max HR.
type hrBand struct {
	low  float64
	high float64
}

var hrBands = map[plan.Zone]hrBand{
	plan.Zone1: {0.60, 0.70},
	plan.Zone2: {0.70, 0.80},
	plan.Zone3: {0.80, 0.87},
	plan.Zone4: {0.87, 0.92},
	plan.Zone5: {0.92, 0.97},
}

// zoneFor buckets an intensity percentage into its training zone.
func zoneFor(pct float64) plan.Zone {
	switch {
	case pct <= 77:
		return plan.Zone1
	case pct <= 87:
		return plan.Zone2
	case pct <= 94:
		return plan.Zone3
	case pct <= 102:
		return plan.Zone4
	default:
		return plan.Zone5
	}
}

// Environment adjustment parameters. Heat, altitude and humidity slow target
// paces; they never change effort-based load numbers.
const (
	altitudeFloorMeters  = 1500
	altitudePctPer1000m  = 1.5
	temperatureFloorC    = 18
	temperaturePctPerC   = 0.4
	temperaturePctCap    = 6.0
	humidityFloorPercent = 60
	humidityPctPer10     = 0.3
	humidityPctCap       = 2.0
)

// EnvironmentMultiplier returns the pace slowdown factor for the configured
// conditions, 1.0 at or below every threshold. Factors compose
// multiplicatively.
func EnvironmentMultiplier(env plan.Environment) float64 {
	m := 1.0
	if env.AltitudeMeters > altitudeFloorMeters {
		m *= 1 + altitudePctPer1000m/100*(env.AltitudeMeters-altitudeFloorMeters)/1000
	}
	if env.AvgTemperatureC > temperatureFloorC {
		pct := temperaturePctPerC * (env.AvgTemperatureC - temperatureFloorC)
		if pct > temperaturePctCap {
			pct = temperaturePctCap
		}
		m *= 1 + pct/100
	}
	if env.HumidityPercent > humidityFloorPercent {
		pct := humidityPctPer10 * (env.HumidityPercent - humidityFloorPercent) / 10
		if pct > humidityPctCap {
			pct = humidityPctCap
		}
		m *= 1 + pct/100
	}
	return m
}

// paceRange resolves a zone to a pace window, slowed by the environment
// multiplier. Fast is the pace at the top of the band.
func (s *Selector) paceRange(z plan.Zone) *plan.PaceRange {
	band := zoneBands[z-1]
	return &plan.PaceRange{
		FastSecPerKm: math.Round(s.thresholdPace / (band.high / 100) * s.envMult),
		SlowSecPerKm: math.Round(s.thresholdPace / (band.low / 100) * s.envMult),
	}
}

// hrRange resolves a zone to a heart-rate window, or nil when max HR is
// unknown. Heart-rate targets are not environment adjusted.
func (s *Selector) hrRange(z plan.Zone) *plan.HRRange {
	if s.maxHR <= 0 {
		return nil
	}
	band := hrBands[z]
	return &plan.HRRange{
		MinBPM: int(math.Round(s.maxHR * band.low)),
		MaxBPM: int(math.Round(s.maxHR * band.high)),
	}
}

// speedAt returns ground speed in m/s for an intensity percentage under the
// configured conditions.
func (s *Selector) speedAt(pct float64) float64 {
	return s.thresholdSpeed * (pct / 100) / s.envMult
}
