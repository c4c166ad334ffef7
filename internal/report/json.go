package report

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonRenderer struct{}

// Render writes the report as indented JSON. Map keys are sorted by
// encoding/json, so output is stable.
func (jsonRenderer) Render(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
