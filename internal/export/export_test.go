package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/generator"
	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

var exportNow = time.Date(2026, time.March, 4, 8, 0, 0, 0, time.UTC)

// samplePlan generates a small 5K plan from defaults; no run history keeps
// the fixture deterministic and fast.
func samplePlan(t *testing.T) *plan.TrainingPlan {
	t.Helper()
	cfg := plan.PlanConfig{
		Goal:        plan.Goal5K,
		TotalWeeks:  8,
		Methodology: "daniels",
	}
	p, err := generator.Generate(cfg, nil, exportNow)
	if err != nil {
		t.Fatalf("generate sample plan: %v", err)
	}
	return p
}

func TestWriteJSONRoundTrip(t *testing.T) {
	p := samplePlan(t)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, p); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{\n  \"id\"") {
		t.Errorf("output not indented: %q", buf.String()[:40])
	}

	var decoded plan.TrainingPlan
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.ID != p.ID {
		t.Errorf("round-tripped ID = %s, want %s", decoded.ID, p.ID)
	}
	if len(decoded.Workouts) != len(p.Workouts) {
		t.Errorf("round-tripped %d workouts, want %d", len(decoded.Workouts), len(p.Workouts))
	}

	var again bytes.Buffer
	if err := WriteJSON(&again, p); err != nil {
		t.Fatalf("WriteJSON second pass: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), again.Bytes()) {
		t.Error("repeated export produced different bytes")
	}
}

func TestWriteCSV(t *testing.T) {
	p := samplePlan(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, p); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != len(p.Workouts)+1 {
		t.Fatalf("rows = %d, want %d workouts plus header", len(rows), len(p.Workouts)+1)
	}
	if !reflect.DeepEqual(rows[0], csvHeader) {
		t.Errorf("header = %v, want %v", rows[0], csvHeader)
	}
	if rows[1][0] != "1" {
		t.Errorf("first row week = %q, want 1", rows[1][0])
	}
	for i, row := range rows[1:] {
		if _, err := time.Parse("2006-01-02", row[1]); err != nil {
			t.Errorf("row %d date %q does not parse: %v", i+1, row[1], err)
		}
	}
}

func TestWriteICS(t *testing.T) {
	p := samplePlan(t)

	var buf bytes.Buffer
	if err := WriteICS(&buf, p); err != nil {
		t.Fatalf("WriteICS: %v", err)
	}
	out := buf.String()

	if !strings.HasSuffix(out, "\r\n") {
		t.Error("output does not end with CRLF")
	}
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	if lines[0] != "BEGIN:VCALENDAR" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[len(lines)-1] != "END:VCALENDAR" {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}
	for i, l := range lines {
		if len(l) > 75 {
			t.Errorf("line %d is %d octets, want <= 75: %q", i, len(l), l)
		}
		if strings.ContainsAny(l, "\r\n") {
			t.Errorf("line %d contains a bare line break", i)
		}
	}

	events := strings.Count(out, "BEGIN:VEVENT")
	if events != len(p.Workouts) {
		t.Errorf("events = %d, want one per workout %d", events, len(p.Workouts))
	}
	if ends := strings.Count(out, "END:VEVENT"); ends != events {
		t.Errorf("unbalanced VEVENT blocks: %d begins, %d ends", events, ends)
	}

	wantUID := fmt.Sprintf("UID:%s-%s-1@trainingplan", p.ID, p.Workouts[0].Date.Format("20060102"))
	if !strings.Contains(out, wantUID) {
		t.Errorf("missing deterministic UID %q", wantUID)
	}
	if !strings.Contains(out, "DTSTAMP:20260304T080000Z") {
		t.Error("DTSTAMP not taken from the plan generation time")
	}
}

func TestBuildWorkbook(t *testing.T) {
	p := samplePlan(t)

	f, err := BuildWorkbook(p)
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	defer f.Close()

	want := []string{sheetOverview, sheetSchedule, sheetWorkouts}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}

	title, err := f.GetCellValue(sheetOverview, "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if title != "5K Training Plan" {
		t.Errorf("title = %q", title)
	}

	week, _ := f.GetCellValue(sheetSchedule, "A2")
	if week != "1" {
		t.Errorf("first schedule row week = %q, want 1", week)
	}

	rows, err := f.GetRows(sheetWorkouts)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != len(p.Workouts)+1 {
		t.Errorf("workout rows = %d, want %d plus header", len(rows), len(p.Workouts)+1)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"all", 4, false},
		{"", 4, false},
		{"json", 1, false},
		{"XLSX", 1, false},
		{"yaml", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			continue
		}
		if len(got) != tt.want {
			t.Errorf("ParseFormat(%q) = %d formats, want %d", tt.in, len(got), tt.want)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	p := samplePlan(t)
	dir := t.TempDir()

	paths, err := WriteFiles(dir, p, Formats())
	if err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if len(paths) != 4 {
		t.Fatalf("paths = %d, want 4", len(paths))
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing artifact: %v", err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("empty artifact %s", path)
		}
	}
}
