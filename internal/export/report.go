package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/health"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
)

// Document is the one-shot export payload: the generated series together
// with the derived health report and maintenance estimate, plus enough run
// metadata to reproduce it. Field names are a stable contract.
type Document struct {
	GeneratedAt time.Time `json:"generated_at"`
	VehicleID   string    `json:"vehicle_id"`

	// Scenarios lists the scenario(s) run, in order. A plain run has one
	// entry; the full suite has all four.
	Scenarios []string `json:"scenarios"`

	Seed      int64   `json:"seed"`
	Steps     int     `json:"steps"`
	MileageKM float64 `json:"mileage_km"`

	Series      telemetry.Series `json:"series"`
	Health      *health.Report   `json:"health,omitempty"`
	Maintenance *health.Estimate `json:"maintenance,omitempty"`
}

// Write serialises the document as JSON to w. With pretty set, output is
// two-space indented for human inspection.
func Write(w io.Writer, doc *Document, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: encode document: %w", err)
	}
	return nil
}

// WriteFile writes the document to path, truncating any existing file.
func WriteFile(path string, doc *Document, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, doc, pretty); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
