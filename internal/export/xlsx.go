package export

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Sheet names in the exported workbook.
const (
	sheetOverview = "Overview"
	sheetSchedule = "Schedule"
	sheetWorkouts = "Workouts"
)

// phaseFills tints schedule rows by training phase.
var phaseFills = map[plan.Phase]string{
	plan.PhaseBase:     "C6E0B4",
	plan.PhaseBuild:    "FFE699",
	plan.PhasePeak:     "F8CBAD",
	plan.PhaseTaper:    "BDD7EE",
	plan.PhaseRecovery: "D9D9D9",
}

// classFills tints workout rows by intensity class.
var classFills = map[plan.IntensityClass]string{
	plan.IntensityEasy:     "E2EFDA",
	plan.IntensityModerate: "FFF2CC",
	plan.IntensityHard:     "FCE4EC",
}

// BuildWorkbook renders the plan as a styled three-sheet workbook. Callers
// that want bytes should prefer WriteXLSX.
func BuildWorkbook(p *plan.TrainingPlan) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", sheetOverview)
	f.NewSheet(sheetSchedule)
	f.NewSheet(sheetWorkouts)

	if err := overviewSheet(f, p); err != nil {
		return nil, fmt.Errorf("overview sheet: %w", err)
	}
	if err := scheduleSheet(f, p); err != nil {
		return nil, fmt.Errorf("schedule sheet: %w", err)
	}
	if err := workoutsSheet(f, p); err != nil {
		return nil, fmt.Errorf("workouts sheet: %w", err)
	}
	f.SetActiveSheet(0)
	return f, nil
}

// WriteXLSX renders the workbook to w.
func WriteXLSX(w io.Writer, p *plan.TrainingPlan) error {
	f, err := BuildWorkbook(p)
	if err != nil {
		return err
	}
	return f.Write(w)
}

func titleStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	return style
}

func headerStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	return style
}

func labelStyle(f *excelize.File) int {
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E2EFDA"}, Pattern: 1},
	})
	return style
}

func fillStyle(f *excelize.File, color string) int {
	style, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	return style
}

func overviewSheet(f *excelize.File, p *plan.TrainingPlan) error {
	sheet := sheetOverview
	s := p.Summary

	f.SetCellValue(sheet, "A1", planTitle(p))
	f.MergeCell(sheet, "A1", "D1")
	f.SetCellStyle(sheet, "A1", "D1", titleStyle(f))
	f.SetRowHeight(sheet, 1, 28)

	labels := labelStyle(f)
	end := p.Config.StartDate.AddDate(0, 0, p.Config.TotalWeeks*7-1)
	rows := []struct {
		label string
		value any
	}{
		{"Methodology", p.Methodology},
		{"Generated", p.GeneratedAt.UTC().Format("2006-01-02")},
		{"Plan ID", p.ID.String()},
		{"Start", p.Config.StartDate.Format("Mon 2 Jan 2006")},
		{"End", end.Format("Mon 2 Jan 2006")},
		{"Weeks", s.TotalWeeks},
		{"Workouts", s.TotalWorkouts},
		{"Total distance (km)", round1f(s.TotalDistanceMeters / 1000)},
		{"Avg weekly (km)", round1f(s.AvgWeeklyDistanceMeters / 1000)},
		{"Peak weekly (km)", round1f(s.PeakWeeklyDistanceMeters / 1000)},
		{"Total TSS", s.TotalTSS},
		{"Long runs", s.LongRunCount},
		{"Rest days", s.RestDays},
		{"Intensity (E/M/H %)", fmt.Sprintf("%.1f / %.1f / %.1f",
			s.Intensity.EasyPercent, s.Intensity.ModeratePercent, s.Intensity.HardPercent)},
		{"VDOT", p.Fitness.VDOT},
		{"Threshold pace", paceString(p.Fitness.ThresholdPaceSecPerKm)},
	}
	row := 3
	for _, r := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.value)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labels)
		row++
	}

	// Per-phase table below the summary block.
	row += 1
	headers := []string{"Phase", "Weeks", "Distance (km)", "Workouts"}
	head := headerStyle(f)
	for i, h := range headers {
		cell := fmt.Sprintf("%c%d", 'A'+i, row)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, head)
	}
	row++
	for _, ph := range s.Phases {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), ph.Phase.Label())
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), ph.Weeks)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), round1f(ph.DistanceMeters/1000))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), ph.WorkoutCount)
		if color, ok := phaseFills[ph.Phase]; ok {
			f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), fillStyle(f, color))
		}
		row++
	}

	f.SetColWidth(sheet, "A", "A", 22)
	f.SetColWidth(sheet, "B", "B", 38)
	f.SetColWidth(sheet, "C", "D", 14)
	return nil
}

func scheduleSheet(f *excelize.File, p *plan.TrainingPlan) error {
	sheet := sheetSchedule

	headers := []string{"Week", "Start", "Phase", "Pattern", "Distance (km)", "Duration (h)", "Load (TSS)", "Deload"}
	head := headerStyle(f)
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, head)
	}

	phaseStyles := make(map[plan.Phase]int, len(phaseFills))
	for ph, color := range phaseFills {
		phaseStyles[ph] = fillStyle(f, color)
	}

	row := 2
	for _, b := range p.Blocks {
		for _, mc := range b.Microcycles {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), mc.WeekNumber)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), mc.StartDate.Format("2006-01-02"))
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), mc.Phase.Label())
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), mc.Pattern)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), round1f(mc.TotalDistanceMeters/1000))
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), round1f(float64(mc.TotalDurationSeconds)/3600))
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), round1f(mc.TotalLoad))
			if mc.Deload {
				f.SetCellValue(sheet, fmt.Sprintf("H%d", row), "deload")
			}
			if style, ok := phaseStyles[mc.Phase]; ok {
				f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), style)
			}
			row++
		}
	}

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "B", 12)
	f.SetColWidth(sheet, "C", "C", 10)
	f.SetColWidth(sheet, "D", "D", 52)
	f.SetColWidth(sheet, "E", "G", 13)
	f.SetColWidth(sheet, "H", "H", 8)
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	return nil
}

func workoutsSheet(f *excelize.File, p *plan.TrainingPlan) error {
	sheet := sheetWorkouts

	headers := []string{"Week", "Date", "Day", "Type", "Name", "Duration (min)", "Distance (km)", "TSS", "Description"}
	head := headerStyle(f)
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, head)
	}

	classStyles := make(map[plan.IntensityClass]int, len(classFills))
	for class, color := range classFills {
		classStyles[class] = fillStyle(f, color)
	}

	row := 2
	for _, b := range p.Blocks {
		for _, mc := range b.Microcycles {
			for _, wk := range mc.Workouts {
				f.SetCellValue(sheet, fmt.Sprintf("A%d", row), mc.WeekNumber)
				f.SetCellValue(sheet, fmt.Sprintf("B%d", row), wk.Date.Format("2006-01-02"))
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), wk.Date.Weekday().String()[:3])
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), wk.Type.Label())
				f.SetCellValue(sheet, fmt.Sprintf("E%d", row), wk.Name)
				f.SetCellValue(sheet, fmt.Sprintf("F%d", row), wk.Targets.DurationSeconds/60)
				f.SetCellValue(sheet, fmt.Sprintf("G%d", row), round1f(wk.Targets.DistanceMeters/1000))
				f.SetCellValue(sheet, fmt.Sprintf("H%d", row), wk.Targets.TSS)
				f.SetCellValue(sheet, fmt.Sprintf("I%d", row), wk.Description)
				if style, ok := classStyles[wk.Type.Class()]; ok {
					f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), style)
				}
				row++
			}
		}
	}

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "C", 11)
	f.SetColWidth(sheet, "D", "D", 12)
	f.SetColWidth(sheet, "E", "E", 34)
	f.SetColWidth(sheet, "F", "H", 13)
	f.SetColWidth(sheet, "I", "I", 70)
	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	return nil
}

func round1f(v float64) float64 {
	return math.Round(v*10) / 10
}

// paceString formats seconds per kilometer as m:ss/km.
func paceString(secPerKm float64) string {
	if secPerKm <= 0 {
		return "-"
	}
	total := int(math.Round(secPerKm))
	return fmt.Sprintf("%d:%02d /km", total/60, total%60)
}
