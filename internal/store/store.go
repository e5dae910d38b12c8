// Package store persists generated waves as runs under a data directory:
// one subdirectory per run holding metadata.json and samples.csv, plus
// JSON/SVG export helpers.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/qwave/internal/qm"
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
	ID          string    `json:"id"`
	Scenario    string    `json:"scenario"`
	Timestamp   time.Time `json:"timestamp"`
	Samples     int       `json:"samples"`
	Orbital     int       `json:"orbital,omitempty"`
	EnergyShift float64   `json:"energy_shift,omitempty"`
	Regime      string    `json:"regime,omitempty"`
	XMin        float64   `json:"x_min,omitempty"`
	XMax        float64   `json:"x_max,omitempty"`
	Phase       float64   `json:"phase,omitempty"`
	HasDensity  bool      `json:"has_density"`
}

// Save writes a run directory for a wave and optional density buffer and
// returns the run ID. A nil density stores the wave column only.
func (s *Store) Save(meta RunMetadata, wave, density qm.SampleBuffer) (string, error) {
	if density != nil && len(density) != len(wave) {
		return "", fmt.Errorf("%w: wave %d, density %d", qm.ErrBufferLength, len(wave), len(density))
	}

	runID := fmt.Sprintf("%s_%d", meta.Scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Samples = len(wave)
	meta.HasDensity = density != nil

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

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"index", "psi"}
	if density != nil {
		header = append(header, "density")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, v := range wave {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 6, 64)}
		if density != nil {
			row = append(row, strconv.FormatFloat(density[i], 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
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

// LoadSamples reads back the wave and, when present, density columns.
func (s *Store) LoadSamples(runID string) (qm.SampleBuffer, qm.SampleBuffer, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return qm.SampleBuffer{}, nil, nil
	}

	hasDensity := len(records[0]) > 2
	wave := make(qm.SampleBuffer, 0, len(records)-1)
	var density qm.SampleBuffer
	if hasDensity {
		density = make(qm.SampleBuffer, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		wave = append(wave, v)

		if hasDensity && len(record) > 2 {
			d, err := strconv.ParseFloat(record[2], 64)
			if err != nil {
				continue
			}
			density = append(density, d)
		}
	}

	return wave, density, nil
}
