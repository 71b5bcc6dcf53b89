package section

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/okean-lab/ntraj/internal/ocean"
)

// LoadCSV reads a section from a wide CSV file: a header row
// "p,s0,t0,s1,t1,..." followed by one row per level. All casts share the
// pressure column. Empty cells and "nan" are missing values.
func LoadCSV(path string) ([]ocean.Cast, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("section: reading %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("section: %s has no data rows", path)
	}

	cols := len(records[0])
	if cols < 3 || (cols-1)%2 != 0 {
		return nil, fmt.Errorf("section: %s: %w (want p,s0,t0,s1,t1,...)", path, ocean.ErrShapeMismatch)
	}
	nCasts := (cols - 1) / 2
	nLevels := len(records) - 1

	P := make([]float64, nLevels)
	casts := make([]ocean.Cast, nCasts)
	for j := range casts {
		casts[j] = ocean.Cast{
			S: make([]float64, nLevels),
			T: make([]float64, nLevels),
			P: P,
		}
	}

	for i, rec := range records[1:] {
		if len(rec) != cols {
			return nil, fmt.Errorf("section: %s row %d: %w", path, i+2, ocean.ErrShapeMismatch)
		}
		p, err := parseCell(rec[0])
		if err != nil || math.IsNaN(p) {
			return nil, fmt.Errorf("section: %s row %d: bad pressure %q", path, i+2, rec[0])
		}
		if i > 0 && p <= P[i-1] {
			return nil, fmt.Errorf("section: %s row %d: pressure not increasing", path, i+2)
		}
		P[i] = p
		for j := 0; j < nCasts; j++ {
			s, err := parseCell(rec[1+2*j])
			if err != nil {
				return nil, fmt.Errorf("section: %s row %d: bad salinity %q", path, i+2, rec[1+2*j])
			}
			t, err := parseCell(rec[2+2*j])
			if err != nil {
				return nil, fmt.Errorf("section: %s row %d: bad temperature %q", path, i+2, rec[2+2*j])
			}
			casts[j].S[i] = s
			casts[j].T[i] = t
		}
	}

	return casts, nil
}

// WriteCSV writes a section in the format LoadCSV reads. Shared pressure
// grids are assumed; the first cast's P column is used.
func WriteCSV(path string, casts []ocean.Cast) error {
	if len(casts) == 0 {
		return fmt.Errorf("section: nothing to write")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"p"}
	for j := range casts {
		header = append(header, fmt.Sprintf("s%d", j), fmt.Sprintf("t%d", j))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < casts[0].Len(); i++ {
		row := []string{formatCell(casts[0].P[i])}
		for j := range casts {
			row = append(row, formatCell(casts[j].S[i]), formatCell(casts[j].T[i]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func parseCell(s string) (float64, error) {
	if s == "" || s == "nan" || s == "NaN" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
