// Package storage persists simulation runs under a data directory, one
// directory per run holding metadata.json and data.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ahertz/qwave/internal/propagate"
	"github.com/ahertz/qwave/internal/qm"
)

const (
	KindSpectrum  = "spectrum"
	KindEvolution = "evolution"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Potential string             `json:"potential"`
	Timestamp time.Time          `json:"timestamp"`
	N         int                `json:"n"`
	Xmin      float64            `json:"xmin"`
	Xmax      float64            `json:"xmax"`
	Dx        float64            `json:"dx"`
	L         int                `json:"l,omitempty"`
	Dt        float64            `json:"dt,omitempty"`
	Steps     int                `json:"steps,omitempty"`
	Energies  []float64          `json:"energies,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// SaveSpectrum stores eigenpairs as one CSV column per state plus the grid
// positions, with energies in the metadata.
func (s *Store) SaveSpectrum(meta RunMetadata, points []float64, pairs []qm.Eigenpair) (string, error) {
	meta.Kind = KindSpectrum
	meta.Timestamp = time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Potential, meta.Timestamp.Unix())
	meta.Energies = make([]float64, len(pairs))
	for i, p := range pairs {
		meta.Energies[i] = p.Energy
	}

	runDir, err := s.makeRunDir(meta)
	if err != nil {
		return "", err
	}

	header := []string{"x"}
	for i := range pairs {
		header = append(header, fmt.Sprintf("psi%d", i))
	}
	rows := make([][]float64, len(points))
	for i, x := range points {
		row := make([]float64, 0, len(pairs)+1)
		row = append(row, x)
		for _, p := range pairs {
			row = append(row, p.State[i])
		}
		rows[i] = row
	}
	if err := writeCSV(filepath.Join(runDir, "data.csv"), header, rows); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// SaveEvolution stores recorded frames as probability density rows, one row
// per frame: time, norm, then |psi|^2 at every grid point.
func (s *Store) SaveEvolution(meta RunMetadata, result *propagate.Result) (string, error) {
	meta.Kind = KindEvolution
	meta.Timestamp = time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Potential, meta.Timestamp.Unix())
	meta.Metrics = result.Metrics

	runDir, err := s.makeRunDir(meta)
	if err != nil {
		return "", err
	}

	header := []string{"time", "norm"}
	for i := 0; i < meta.N; i++ {
		header = append(header, fmt.Sprintf("p%d", i))
	}
	rows := make([][]float64, len(result.Frames))
	for i, frame := range result.Frames {
		row := make([]float64, 0, meta.N+2)
		row = append(row, result.Times[i], result.Norms[i])
		row = append(row, frame.Density()...)
		rows[i] = row
	}
	if err := writeCSV(filepath.Join(runDir, "data.csv"), header, rows); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func (s *Store) makeRunDir(meta RunMetadata) (string, error) {
	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}
	return runDir, nil
}

func writeCSV(path string, header []string, rows [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	record := make([]string, 0, len(header))
	for _, row := range rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'g', 12, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

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
	return runs, nil
}

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

// LoadData reads a run's CSV back as a header plus numeric rows.
func (s *Store) LoadData(runID string) ([]string, [][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "data.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, fmt.Errorf("run %s has no data", runID)
	}

	header := records[0]
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]float64, 0, len(record))
		for _, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("run %s: bad value %q: %w", runID, field, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}
