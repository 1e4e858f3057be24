package tui

import (
	"fmt"

	"github.com/AustinOrphan/training-plan-generator/internal/config"
)

const (
	metersPerMile = 1609.34
	metersPerKm   = 1000.0
)

// Units provides unit conversion and formatting based on display preferences.
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a Units helper for the given display config.
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance in meters to the preferred unit.
func (u Units) FormatDistance(meters float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.1f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f km", meters/metersPerKm)
}

// FormatDistanceValue returns just the numeric distance value.
func (u Units) FormatDistanceValue(meters float64) string {
	if u.IsMiles() {
		return fmt.Sprintf("%.1f", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f", meters/metersPerKm)
}

// FormatPace formats pace from total seconds and meters.
func (u Units) FormatPace(seconds int, meters float64) string {
	if meters <= 0 || seconds <= 0 {
		return "-"
	}

	var paceSeconds float64
	if u.cfg.PaceUnit == "min/mi" {
		paceSeconds = float64(seconds) / (meters / metersPerMile)
	} else {
		paceSeconds = float64(seconds) / (meters / metersPerKm)
	}
	return clockFromSeconds(paceSeconds) + "/" + u.DistanceLabel()
}

// FormatPacePerKm formats a seconds-per-kilometer pace, converting to the
// preferred unit first.
func (u Units) FormatPacePerKm(secPerKm float64) string {
	if secPerKm <= 0 {
		return "-"
	}
	if u.cfg.PaceUnit == "min/mi" {
		return clockFromSeconds(secPerKm*metersPerMile/metersPerKm) + "/mi"
	}
	return clockFromSeconds(secPerKm) + "/km"
}

// FormatPaceRange formats a fast-to-slow pace window stored in seconds per
// kilometer, converting to the preferred unit first.
func (u Units) FormatPaceRange(fastSecPerKm, slowSecPerKm float64) string {
	if fastSecPerKm <= 0 || slowSecPerKm <= 0 {
		return "-"
	}
	factor := 1.0
	unit := "/km"
	if u.cfg.PaceUnit == "min/mi" {
		factor = metersPerMile / metersPerKm
		unit = "/mi"
	}
	return clockFromSeconds(fastSecPerKm*factor) + "-" + clockFromSeconds(slowSecPerKm*factor) + unit
}

// ChartDistances converts a series of meter values for plotting.
func (u Units) ChartDistances(meters []float64) []float64 {
	divisor := metersPerKm
	if u.IsMiles() {
		divisor = metersPerMile
	}
	out := make([]float64, len(meters))
	for i, m := range meters {
		out[i] = m / divisor
	}
	return out
}

// DistanceLabel returns the short unit label ("mi" or "km").
func (u Units) DistanceLabel() string {
	if u.IsMiles() {
		return "mi"
	}
	return "km"
}

// PaceLabel returns the pace unit label.
func (u Units) PaceLabel() string {
	if u.cfg.PaceUnit == "min/mi" {
		return "min/mi"
	}
	return "min/km"
}

// IsMiles returns true if the distance unit is miles.
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}

func clockFromSeconds(seconds float64) string {
	mins := int(seconds) / 60
	secs := int(seconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// formatDuration renders seconds as "1h 42m" or "48m".
func formatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// formatRaceTime renders a race time as h:mm:ss, or m:ss under an hour.
func formatRaceTime(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
