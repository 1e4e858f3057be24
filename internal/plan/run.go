package plan

import "time"

// RunRecord is a single completed run supplied as input to fitness
// estimation. Distances are meters, durations seconds, paces seconds per
// kilometer; display layers convert to the configured units.
type RunRecord struct {
	Date            time.Time `json:"date"`
	DistanceMeters  float64   `json:"distance_meters"`
	DurationSeconds int       `json:"duration_seconds"`

	// Optional metrics, nil when not recorded.
	AvgPaceSecPerKm *float64 `json:"avg_pace_sec_per_km,omitempty"`
	AvgHeartrate    *float64 `json:"avg_heartrate,omitempty"`
	MaxHeartrate    *float64 `json:"max_heartrate,omitempty"`
	ElevationGain   *float64 `json:"elevation_gain_meters,omitempty"`
	PerceivedEffort *int     `json:"perceived_effort,omitempty"` // session RPE, 1-10
	TemperatureC    *float64 `json:"temperature_c,omitempty"`

	Race bool `json:"race,omitempty"`
}

// PaceSecPerKm returns the run's average pace, deriving it from distance and
// duration when no recorded pace is present. Returns 0 when underivable.
func (r RunRecord) PaceSecPerKm() float64 {
	if r.AvgPaceSecPerKm != nil && *r.AvgPaceSecPerKm > 0 {
		return *r.AvgPaceSecPerKm
	}
	if r.DistanceMeters <= 0 || r.DurationSeconds <= 0 {
		return 0
	}
	return float64(r.DurationSeconds) / (r.DistanceMeters / 1000.0)
}

// SpeedMPS returns the run's average speed in meters per second, 0 when
// underivable.
func (r RunRecord) SpeedMPS() float64 {
	if r.DistanceMeters <= 0 || r.DurationSeconds <= 0 {
		return 0
	}
	return r.DistanceMeters / float64(r.DurationSeconds)
}
