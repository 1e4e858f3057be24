package fitness

import (
	"math"
	"sort"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// EWMA window lengths in days. Decay follows 2/(N+1).
const (
	AcuteWindowDays   = 7
	ChronicWindowDays = 28

	// minHistoryDays is the span required before the acute:chronic ratio
	// is considered meaningful.
	minHistoryDays = 14

	// trendBand is the relative change in chronic load over the trailing
	// week treated as stable.
	trendBand = 0.02
)

// DailyLoad is the summed training stress of one calendar day.
type DailyLoad struct {
	Date time.Time
	TSS  float64
}

// DailyLoads buckets run stress by UTC calendar day, date-ascending.
func DailyLoads(runs []plan.RunRecord, thresholdPaceSecPerKm float64) []DailyLoad {
	if len(runs) == 0 {
		return nil
	}

	byDay := make(map[string]float64)
	for _, r := range runs {
		key := r.Date.UTC().Format("2006-01-02")
		byDay[key] += RunTSS(r, thresholdPaceSecPerKm)
	}

	loads := make([]DailyLoad, 0, len(byDay))
	for key, tss := range byDay {
		d, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		loads = append(loads, DailyLoad{Date: d, TSS: tss})
	}
	sort.Slice(loads, func(i, j int) bool { return loads[i].Date.Before(loads[j].Date) })
	return loads
}

// ComputeTrainingLoad walks the history day by day up to asOf, maintaining
// acute and chronic exponential moving averages of daily stress, and
// classifies the resulting ratio. Days without runs count as zero load.
func ComputeTrainingLoad(runs []plan.RunRecord, thresholdPaceSecPerKm float64, asOf time.Time) plan.TrainingLoad {
	loads := DailyLoads(runs, thresholdPaceSecPerKm)
	asOfDay := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	if len(loads) == 0 || !loads[0].Date.Before(asOfDay) {
		return insufficientLoad()
	}

	loadMap := make(map[string]float64, len(loads))
	for _, dl := range loads {
		loadMap[dl.Date.Format("2006-01-02")] = dl.TSS
	}

	acuteDecay := 2.0 / (AcuteWindowDays + 1.0)
	chronicDecay := 2.0 / (ChronicWindowDays + 1.0)

	var acute, chronic float64
	var chronicWeekAgo float64

	start := loads[0].Date
	weekAgo := asOfDay.AddDate(0, 0, -AcuteWindowDays)
	for d := start; !d.After(asOfDay); d = d.AddDate(0, 0, 1) {
		tss := loadMap[d.Format("2006-01-02")]
		acute = acute + acuteDecay*(tss-acute)
		chronic = chronic + chronicDecay*(tss-chronic)
		if d.Equal(weekAgo) {
			chronicWeekAgo = chronic
		}
	}

	spanDays := int(asOfDay.Sub(start).Hours() / 24)
	ratioValid := chronic > 0 && spanDays >= minHistoryDays
	if !ratioValid {
		tl := insufficientLoad()
		tl.AcuteLoad = round1(acute)
		tl.ChronicLoad = round1(chronic)
		return tl
	}

	ratio := acute / chronic
	status := classifyRatio(ratio)
	trend := classifyTrend(chronic, chronicWeekAgo)

	return plan.TrainingLoad{
		AcuteLoad:      round1(acute),
		ChronicLoad:    round1(chronic),
		Ratio:          math.Round(ratio*100) / 100,
		RatioValid:     true,
		Status:         status,
		Trend:          trend,
		Recommendation: loadRecommendation(status),
	}
}

func insufficientLoad() plan.TrainingLoad {
	return plan.TrainingLoad{
		Status:         plan.LoadVeryLow,
		Trend:          plan.TrendStable,
		Recommendation: "Not enough training history to assess load. Build volume gradually.",
	}
}

// classifyRatio bands the acute:chronic ratio.
func classifyRatio(ratio float64) plan.LoadStatus {
	switch {
	case ratio < 0.8:
		return plan.LoadVeryLow
	case ratio <= 1.3:
		return plan.LoadOptimal
	case ratio <= 1.5:
		return plan.LoadCaution
	default:
		return plan.LoadHighRisk
	}
}

// classifyTrend compares chronic load now against a week earlier.
func classifyTrend(current, weekAgo float64) plan.LoadTrend {
	if weekAgo <= 0 {
		if current > 0 {
			return plan.TrendIncreasing
		}
		return plan.TrendStable
	}
	change := (current - weekAgo) / weekAgo
	switch {
	case change > trendBand:
		return plan.TrendIncreasing
	case change < -trendBand:
		return plan.TrendDecreasing
	default:
		return plan.TrendStable
	}
}

func loadRecommendation(status plan.LoadStatus) string {
	switch status {
	case plan.LoadVeryLow:
		return "Training load is well below fitness. Volume can increase safely."
	case plan.LoadOptimal:
		return "Load sits in the productive range. Hold the current build."
	case plan.LoadCaution:
		return "Acute load is rising faster than fitness. Add recovery before building further."
	default:
		return "Acute load has spiked above chronic fitness. Cut volume and recover."
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
