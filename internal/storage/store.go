package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/okean-lab/ntraj/internal/ocean"
)

// Store persists trajectory runs under a base directory, one directory
// per run holding metadata.json and trajectory.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a stored trajectory run.
type RunMetadata struct {
	ID        string    `json:"id"`
	Section   string    `json:"section"`
	Timestamp time.Time `json:"timestamp"`
	EOS       string    `json:"eos"`
	Interp    string    `json:"interp"`
	TolP      float64   `json:"tol_p"`
	P0        float64   `json:"p0"`
	Casts     int       `json:"casts"`
	Connected int       `json:"connected"`

	Diagnostics map[string]float64 `json:"diagnostics,omitempty"`
}

// Save stores a trajectory and returns the generated run id.
func (s *Store) Save(meta RunMetadata, tr ocean.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Section, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Casts = len(tr)
	meta.Connected = tr.NConnected()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"cast", "s", "t", "p"}); err != nil {
		return "", err
	}
	for i, b := range tr {
		row := []string{
			strconv.Itoa(i),
			formatField(b.S),
			formatField(b.T),
			formatField(b.P),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Load returns the metadata of one run.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTrajectory reads a stored trajectory back.
func (s *Store) LoadTrajectory(runID string) (ocean.Trajectory, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return ocean.Trajectory{}, nil
	}

	tr := make(ocean.Trajectory, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 4 {
			continue
		}
		tr = append(tr, ocean.Bottle{
			S: parseField(rec[1]),
			T: parseField(rec[2]),
			P: parseField(rec[3]),
		})
	}
	return tr, nil
}

func formatField(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func parseField(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
