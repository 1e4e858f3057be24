package plan

// ExperienceLevel groups runners by training history for progression pacing.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// ExperienceForTrainingAge maps years of consistent running to a level.
func ExperienceForTrainingAge(years float64) ExperienceLevel {
	switch {
	case years >= 3:
		return ExperienceAdvanced
	case years >= 1:
		return ExperienceIntermediate
	default:
		return ExperienceBeginner
	}
}

// FitnessProfile holds the derived (or caller-supplied) fitness estimates the
// generator plans against. Defaulted lists the estimates that fell back to
// documented defaults for lack of input data.
type FitnessProfile struct {
	VDOT                  float64 `json:"vdot"`
	CriticalSpeedMPS      float64 `json:"critical_speed_mps"`
	DPrimeMeters          float64 `json:"d_prime_meters"`
	RunningEconomy        float64 `json:"running_economy"` // beats per km proxy, lower is better
	ThresholdPaceSecPerKm float64 `json:"threshold_pace_sec_per_km"`
	WeeklyVolumeMeters    float64 `json:"weekly_volume_meters"`
	LongestRunMeters      float64 `json:"longest_run_meters"`
	TrainingAgeYears      float64 `json:"training_age_years"`
	MaxHeartrate          float64 `json:"max_heartrate,omitempty"`

	Experience    ExperienceLevel `json:"experience"`
	RecoveryScore float64         `json:"recovery_score"` // 0-100

	Defaulted []string `json:"defaulted,omitempty"`
}

// LoadStatus classifies the acute:chronic workload ratio.
type LoadStatus string

const (
	LoadVeryLow  LoadStatus = "very_low"
	LoadOptimal  LoadStatus = "optimal"
	LoadCaution  LoadStatus = "caution"
	LoadHighRisk LoadStatus = "high_risk"
)

// LoadTrend describes the direction of chronic load over the trailing week.
type LoadTrend string

const (
	TrendIncreasing LoadTrend = "increasing"
	TrendStable     LoadTrend = "stable"
	TrendDecreasing LoadTrend = "decreasing"
)

// TrainingLoad is the acute/chronic workload snapshot taken from run history
// before planning starts.
type TrainingLoad struct {
	AcuteLoad   float64 `json:"acute_load"`   // ~7-day EWMA of daily stress
	ChronicLoad float64 `json:"chronic_load"` // ~28-day EWMA of daily stress

	// Ratio is acute divided by chronic. RatioValid is false when the
	// chronic history is too thin to divide by; Ratio is then 0.
	Ratio      float64 `json:"ratio"`
	RatioValid bool    `json:"ratio_valid"`

	Status         LoadStatus `json:"status"`
	Trend          LoadTrend  `json:"trend"`
	Recommendation string     `json:"recommendation"`
}

// InjuryRisk is the composite risk assessment derived from load ratio,
// volume growth and recovery state.
type InjuryRisk struct {
	Score float64 `json:"score"` // 0-100, higher is riskier
	Band  string  `json:"band"`  // low, moderate, high
}
