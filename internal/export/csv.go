package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// csvHeader names the per-workout columns in output order.
var csvHeader = []string{
	"week", "date", "type", "name",
	"duration_min", "distance_km", "tss", "intensity_pct",
	"description",
}

// WriteCSV writes one row per workout with its scheduling context, walking
// the blocks so each row carries its plan week number.
func WriteCSV(w io.Writer, p *plan.TrainingPlan) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, b := range p.Blocks {
		for _, mc := range b.Microcycles {
			for _, wk := range mc.Workouts {
				row := []string{
					strconv.Itoa(mc.WeekNumber),
					wk.Date.Format("2006-01-02"),
					string(wk.Type),
					wk.Name,
					strconv.Itoa(wk.Targets.DurationSeconds / 60),
					strconv.FormatFloat(wk.Targets.DistanceMeters/1000, 'f', 1, 64),
					strconv.FormatFloat(wk.Targets.TSS, 'f', 1, 64),
					strconv.FormatFloat(wk.Targets.IntensityPercent, 'f', 1, 64),
					wk.Description,
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
