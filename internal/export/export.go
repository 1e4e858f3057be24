// Package export renders finished training plans as JSON, CSV, ICS calendar
// and XLSX workbook artifacts. Every exporter is a pure function of the plan;
// exporting the same plan twice produces identical bytes.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Format identifies an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatICS  Format = "ics"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format in output order.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatICS, FormatXLSX}
}

// ParseFormat resolves a format flag value. "all" (and the empty string)
// selects every format.
func ParseFormat(s string) ([]Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return Formats(), nil
	case "json":
		return []Format{FormatJSON}, nil
	case "csv":
		return []Format{FormatCSV}, nil
	case "ics":
		return []Format{FormatICS}, nil
	case "xlsx":
		return []Format{FormatXLSX}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (expected json|csv|ics|xlsx|all)", s)
	}
}

// Write renders the plan to w in the given format.
func Write(w io.Writer, p *plan.TrainingPlan, f Format) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, p)
	case FormatCSV:
		return WriteCSV(w, p)
	case FormatICS:
		return WriteICS(w, p)
	case FormatXLSX:
		return WriteXLSX(w, p)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// FileName returns the artifact name for the plan in a format. Names derive
// from the plan ID, so re-exporting the same plan overwrites its own files.
func FileName(p *plan.TrainingPlan, f Format) string {
	id := p.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("plan-%s.%s", id, f)
}

// WriteFiles renders the plan in each format under dir, creating the
// directory if needed, and returns the written paths in format order.
func WriteFiles(dir string, p *plan.TrainingPlan, formats []Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(dir, FileName(p, f))
		file, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", path, err)
		}
		err = Write(file, p, f)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// planTitle names the plan in human-facing artifacts.
func planTitle(p *plan.TrainingPlan) string {
	return fmt.Sprintf("%s Training Plan", p.Config.Goal.Label())
}
