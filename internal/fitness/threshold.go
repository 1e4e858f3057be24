package fitness

import "math"

// Daniels velocity curve coefficients: VO2 = a + b*v + c*v^2 with v in
// meters per minute.
const (
	vo2CoeffA = -4.60
	vo2CoeffB = 0.182258
	vo2CoeffC = 0.000104

	// thresholdFraction is the share of VO2max sustainable for roughly an
	// hour, which defines lactate-threshold intensity.
	thresholdFraction = 0.88
)

// velocityAtVO2 inverts the Daniels curve, returning velocity in meters per
// minute for a target oxygen cost.
func velocityAtVO2(vo2 float64) float64 {
	if vo2 <= 0 {
		return 0
	}
	disc := vo2CoeffB*vo2CoeffB - 4*vo2CoeffC*(vo2CoeffA-vo2)
	if disc <= 0 {
		return 0
	}
	return (-vo2CoeffB + math.Sqrt(disc)) / (2 * vo2CoeffC)
}

// VO2MaxSpeedMPS returns the velocity at VO2max in meters per second.
func VO2MaxSpeedMPS(vdot float64) float64 {
	return velocityAtVO2(vdot) / 60.0
}

// ThresholdSpeedMPS returns lactate-threshold speed in meters per second,
// derived from the closed-form percentage-of-VDOT mapping.
func ThresholdSpeedMPS(vdot float64) float64 {
	return velocityAtVO2(thresholdFraction*vdot) / 60.0
}

// ThresholdPaceSecPerKm returns lactate-threshold pace in seconds per
// kilometer. VDOT 50 lands near 4:15/km.
func ThresholdPaceSecPerKm(vdot float64) float64 {
	speed := ThresholdSpeedMPS(vdot)
	if speed <= 0 {
		return 0
	}
	return 1000.0 / speed
}
