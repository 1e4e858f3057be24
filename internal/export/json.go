package export

import (
	"encoding/json"
	"io"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// WriteJSON writes the full plan as indented JSON. Struct marshalling keeps
// the field order stable, so identical plans serialize to identical bytes.
func WriteJSON(w io.Writer, p *plan.TrainingPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
