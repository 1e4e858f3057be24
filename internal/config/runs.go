package config

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Required and optional run-history columns. The header row names them; the
// column order doesn't matter.
var (
	requiredRunColumns = []string{"date", "distance_km", "duration"}
	optionalRunColumns = []string{"avg_hr", "elevation_m", "effort", "temp_c", "race"}
)

// LoadRuns reads run history from a CSV file.
func LoadRuns(path string) ([]plan.RunRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening runs file: %w", err)
	}
	defer f.Close()

	runs, err := ParseRuns(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return runs, nil
}

// ParseRuns decodes run-history CSV. Runs come back sorted by date.
func ParseRuns(r io.Reader) ([]plan.RunRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty runs file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredRunColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var runs []plan.RunRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		run, err := parseRun(row, col)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		runs = append(runs, run)
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Date.Before(runs[j].Date) })
	return runs, nil
}

func parseRun(row []string, col map[string]int) (plan.RunRecord, error) {
	var run plan.RunRecord

	date, err := parseDate(field(row, col, "date"))
	if err != nil || date.IsZero() {
		return run, fmt.Errorf("date: %q is not a YYYY-MM-DD date", field(row, col, "date"))
	}
	run.Date = date

	km, err := strconv.ParseFloat(field(row, col, "distance_km"), 64)
	if err != nil || km <= 0 {
		return run, fmt.Errorf("distance_km: %q is not a positive number", field(row, col, "distance_km"))
	}
	run.DistanceMeters = km * 1000

	seconds, err := parseClock(field(row, col, "duration"))
	if err != nil {
		return run, fmt.Errorf("duration: %w", err)
	}
	run.DurationSeconds = seconds

	if v := field(row, col, "avg_hr"); v != "" {
		hr, err := strconv.ParseFloat(v, 64)
		if err != nil || hr <= 0 {
			return run, fmt.Errorf("avg_hr: %q is not a positive number", v)
		}
		run.AvgHeartrate = &hr
	}
	if v := field(row, col, "elevation_m"); v != "" {
		gain, err := strconv.ParseFloat(v, 64)
		if err != nil || gain < 0 {
			return run, fmt.Errorf("elevation_m: %q is not a non-negative number", v)
		}
		run.ElevationGain = &gain
	}
	if v := field(row, col, "effort"); v != "" {
		effort, err := strconv.Atoi(v)
		if err != nil || effort < 1 || effort > 10 {
			return run, fmt.Errorf("effort: %q is not an RPE between 1 and 10", v)
		}
		run.PerceivedEffort = &effort
	}
	if v := field(row, col, "temp_c"); v != "" {
		temp, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return run, fmt.Errorf("temp_c: %q is not a number", v)
		}
		run.TemperatureC = &temp
	}
	if v := field(row, col, "race"); v != "" {
		race, err := strconv.ParseBool(v)
		if err != nil {
			return run, fmt.Errorf("race: %q is not a boolean", v)
		}
		run.Race = race
	}

	pace := float64(run.DurationSeconds) / km
	run.AvgPaceSecPerKm = &pace

	return run, nil
}

// field returns the trimmed cell for a named column, "" when the column is
// absent or the row is short.
func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseClock reads h:mm:ss or m:ss into seconds.
func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%q is not h:mm:ss or m:ss", s)
	}
	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%q is not h:mm:ss or m:ss", s)
		}
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("%q has a minute or second segment over 59", s)
		}
		total = total*60 + n
	}
	if total == 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return total, nil
}
