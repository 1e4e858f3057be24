package config

import (
	"path/filepath"
	"strings"
	"testing"
)

const validRuns = `date,distance_km,duration,avg_hr,elevation_m,effort,temp_c,race
2026-02-18,12.5,1:02:30,148,130,4,8.5,false
2026-02-15,5,22:30,,,,,
2026-02-20,10,45:00,172,80,8,12,true
`

func TestParseRuns(t *testing.T) {
	runs, err := ParseRuns(strings.NewReader(validRuns))
	if err != nil {
		t.Fatalf("ParseRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("parsed %d runs, want 3", len(runs))
	}

	// Rows come back date-sorted regardless of file order.
	wantDates := []string{"2026-02-15", "2026-02-18", "2026-02-20"}
	for i, want := range wantDates {
		if got := runs[i].Date.Format("2006-01-02"); got != want {
			t.Errorf("runs[%d].Date = %s, want %s", i, got, want)
		}
	}

	bare := runs[0]
	if bare.DistanceMeters != 5000 {
		t.Errorf("DistanceMeters = %v, want 5000", bare.DistanceMeters)
	}
	if bare.DurationSeconds != 1350 {
		t.Errorf("DurationSeconds = %d, want 1350", bare.DurationSeconds)
	}
	if bare.AvgHeartrate != nil || bare.ElevationGain != nil || bare.PerceivedEffort != nil || bare.TemperatureC != nil {
		t.Errorf("blank optional cells produced values: %+v", bare)
	}
	if bare.AvgPaceSecPerKm == nil || *bare.AvgPaceSecPerKm != 270 {
		t.Errorf("AvgPaceSecPerKm = %v, want 270", bare.AvgPaceSecPerKm)
	}
	if bare.Race {
		t.Error("blank race cell parsed as true")
	}

	full := runs[1]
	if full.DistanceMeters != 12500 || full.DurationSeconds != 3750 {
		t.Errorf("full row = %v m in %d s, want 12500 in 3750", full.DistanceMeters, full.DurationSeconds)
	}
	if full.AvgHeartrate == nil || *full.AvgHeartrate != 148 {
		t.Errorf("AvgHeartrate = %v, want 148", full.AvgHeartrate)
	}
	if full.ElevationGain == nil || *full.ElevationGain != 130 {
		t.Errorf("ElevationGain = %v, want 130", full.ElevationGain)
	}
	if full.PerceivedEffort == nil || *full.PerceivedEffort != 4 {
		t.Errorf("PerceivedEffort = %v, want 4", full.PerceivedEffort)
	}
	if full.TemperatureC == nil || *full.TemperatureC != 8.5 {
		t.Errorf("TemperatureC = %v, want 8.5", full.TemperatureC)
	}

	if !runs[2].Race {
		t.Error("race row not flagged")
	}
}

func TestParseRunsHeaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantSub string
	}{
		{"empty file", "", "empty runs file"},
		{"missing duration", "date,distance_km\n", "duration"},
		{"missing date", "distance_km,duration\n", "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRuns(strings.NewReader(tt.csv))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %v, want %q", err, tt.wantSub)
			}
		})
	}
}

func TestParseRunsRowErrors(t *testing.T) {
	const header = "date,distance_km,duration,avg_hr,elevation_m,effort,temp_c,race\n"
	tests := []struct {
		name    string
		row     string
		wantSub string
	}{
		{"bad date", "2026-02-30,5,25:00,,,,,", "date"},
		{"negative distance", "2026-02-15,-4,25:00,,,,,", "distance_km"},
		{"bare seconds duration", "2026-02-15,5,1500,,,,,", "duration"},
		{"minutes over 59", "2026-02-15,5,1:75:00,,,,,", "duration"},
		{"effort out of range", "2026-02-15,5,25:00,,,11,,", "effort"},
		{"bad heart rate", "2026-02-15,5,25:00,abc,,,,", "avg_hr"},
		{"bad race flag", "2026-02-15,5,25:00,,,,,maybe", "race"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRuns(strings.NewReader(header + tt.row + "\n"))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %v, want %q", err, tt.wantSub)
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("error = %v, want line number", err)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"45:00", 2700, true},
		{"1:02:30", 3750, true},
		{"0:30", 30, true},
		{"7:05", 425, true},
		{"1:2:3:4", 0, false},
		{"", 0, false},
		{"90", 0, false},
		{"0:00", 0, false},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if tt.ok && err != nil {
			t.Errorf("parseClock(%q) error: %v", tt.in, err)
			continue
		}
		if !tt.ok && err == nil {
			t.Errorf("parseClock(%q) = %d, want error", tt.in, got)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("parseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLoadRunsMissingFile(t *testing.T) {
	_, err := LoadRuns(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "opening runs file") {
		t.Errorf("error = %v", err)
	}
}

// Sorting must be stable for runs on the same day.
func TestParseRunsSameDayStable(t *testing.T) {
	const csv = `date,distance_km,duration
2026-02-15,5,25:00
2026-02-15,8,40:00
`
	runs, err := ParseRuns(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseRuns: %v", err)
	}
	if runs[0].DistanceMeters != 5000 || runs[1].DistanceMeters != 8000 {
		t.Errorf("same-day rows reordered: %v, %v", runs[0].DistanceMeters, runs[1].DistanceMeters)
	}
}
