package storage

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"github.com/okean-lab/ntraj/internal/ocean"
)

// exportPoint uses pointers so missing values serialize as null rather
// than tripping JSON's lack of NaN.
type exportPoint struct {
	Cast int      `json:"cast"`
	S    *float64 `json:"s"`
	T    *float64 `json:"t"`
	P    *float64 `json:"p"`
}

type exportDoc struct {
	Meta   RunMetadata   `json:"meta"`
	Points []exportPoint `json:"points"`
}

// ExportJSON writes a run as a single JSON document.
func ExportJSON(w io.Writer, meta RunMetadata, tr ocean.Trajectory) error {
	doc := exportDoc{Meta: meta, Points: make([]exportPoint, len(tr))}
	for i, b := range tr {
		doc.Points[i] = exportPoint{
			Cast: i,
			S:    jsonNumber(b.S),
			T:    jsonNumber(b.T),
			P:    jsonNumber(b.P),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ExportJSONStdout is the convenience used by the CLI.
func ExportJSONStdout(meta RunMetadata, tr ocean.Trajectory) error {
	return ExportJSON(os.Stdout, meta, tr)
}

func jsonNumber(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
