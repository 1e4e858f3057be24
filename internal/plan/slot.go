package plan

import "time"

// WorkoutSlot is a scheduled-but-unresolved session: the microcycle layer
// decides when and what kind, the workout selector fills in the rest.
type WorkoutSlot struct {
	Date       time.Time
	WeekNumber int
	Phase      Phase
	Type       WorkoutType

	// DistanceBudgetMeters is the slot's share of the week's volume target.
	DistanceBudgetMeters float64
	// MaxDurationSeconds caps the resolved workout's duration.
	MaxDurationSeconds int
}
