package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

const (
	icsProdID    = "-//training-plan-generator//running plan//EN"
	icsUIDDomain = "trainingplan"

	// icsLineLimit is the maximum content-line length in octets before
	// folding, excluding the CRLF terminator (RFC 5545 section 3.1).
	icsLineLimit = 75
)

// icsEscaper quotes the characters RFC 5545 reserves in text values.
var icsEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\;",
	",", "\\,",
	"\r\n", "\\n",
	"\n", "\\n",
)

// WriteICS renders the plan as an RFC 5545 calendar with one all-day event
// per workout. Event UIDs derive from the plan ID, date and sequence, and
// DTSTAMP reuses the plan's generation time, so output is reproducible.
func WriteICS(w io.Writer, p *plan.TrainingPlan) error {
	var b strings.Builder
	line := func(s string) {
		for _, folded := range foldICS(s) {
			b.WriteString(folded)
			b.WriteString("\r\n")
		}
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:" + icsProdID)
	line("CALSCALE:GREGORIAN")
	line("X-WR-CALNAME:" + icsEscaper.Replace(planTitle(p)))

	stamp := p.GeneratedAt.UTC().Format("20060102T150405Z")
	for i, wk := range p.Workouts {
		date := wk.Date.Format("20060102")
		line("BEGIN:VEVENT")
		line(fmt.Sprintf("UID:%s-%s-%d@%s", p.ID, date, i+1, icsUIDDomain))
		line("DTSTAMP:" + stamp)
		line("DTSTART;VALUE=DATE:" + date)
		line("DTEND;VALUE=DATE:" + wk.Date.AddDate(0, 0, 1).Format("20060102"))
		line("SUMMARY:" + icsEscaper.Replace(wk.Name))
		if desc := eventDescription(wk); desc != "" {
			line("DESCRIPTION:" + icsEscaper.Replace(desc))
		}
		line("CATEGORIES:" + icsEscaper.Replace(strings.ToUpper(wk.Type.Label())))
		line("END:VEVENT")
	}
	line("END:VCALENDAR")

	_, err := io.WriteString(w, b.String())
	return err
}

// eventDescription combines the workout description with its planned demand.
func eventDescription(wk plan.PlannedWorkout) string {
	planned := fmt.Sprintf("Planned: %d min", wk.Targets.DurationSeconds/60)
	if wk.Targets.DistanceMeters > 0 {
		planned += fmt.Sprintf(", %.1f km", wk.Targets.DistanceMeters/1000)
	}
	planned += fmt.Sprintf(", TSS %.0f.", wk.Targets.TSS)
	if wk.Description == "" {
		return planned
	}
	return wk.Description + " " + planned
}

// foldICS splits a content line into chunks of at most icsLineLimit octets,
// continuation lines led by a single space. Splits never land inside a UTF-8
// sequence.
func foldICS(line string) []string {
	if len(line) <= icsLineLimit {
		return []string{line}
	}
	var out []string
	for len(line) > icsLineLimit {
		cut := icsLineLimit
		for cut > 1 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		out = append(out, line[:cut])
		line = " " + line[cut:]
	}
	return append(out, line)
}
