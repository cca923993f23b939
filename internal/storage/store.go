// Package storage persists batch runs for later plotting and export.
// Each run gets its own directory under the data dir with a
// metadata.json and a bodies.csv of recorded frames.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kalder/gravlab/internal/sim"
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
	ID         string             `json:"id"`
	Scene      string             `json:"scene"`
	Timestamp  time.Time          `json:"timestamp"`
	Dt         float64            `json:"dt"`
	G          float64            `json:"g"`
	Softening  float64            `json:"softening"`
	Integrator string             `json:"integrator"`
	Bodies     int                `json:"bodies"`
	Steps      int                `json:"steps"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes a run directory with metadata and per-frame body rows.
// The CSV header is time followed by x/y/vx/vy columns per body.
func (s *Store) Save(sceneName, integrator string, cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", sceneName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	bodies := 0
	if len(result.Frames) > 0 {
		bodies = len(result.Frames[0])
	}

	meta := RunMetadata{
		ID:         runID,
		Scene:      sceneName,
		Timestamp:  time.Now(),
		Dt:         cfg.Dt,
		G:          cfg.G,
		Softening:  cfg.Softening,
		Integrator: integrator,
		Bodies:     bodies,
		Steps:      result.StepsTaken,
		Metrics:    result.Metrics,
	}

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

	csvFile, err := os.Create(filepath.Join(runDir, "bodies.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Frames) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for _, b := range result.Frames[0] {
		id := strconv.Itoa(b.ID)
		header = append(header, "b"+id+"_x", "b"+id+"_y", "b"+id+"_vx", "b"+id+"_vy")
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, frame := range result.Frames {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}
		for _, b := range frame {
			row = append(row,
				strconv.FormatFloat(b.Pos.X, 'f', 6, 64),
				strconv.FormatFloat(b.Pos.Y, 'f', 6, 64),
				strconv.FormatFloat(b.Vel.X, 'f', 6, 64),
				strconv.FormatFloat(b.Vel.Y, 'f', 6, 64))
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

// LoadFrames reads back the recorded frames as flat rows of
// x/y/vx/vy per body, plus the frame times.
func (s *Store) LoadFrames(runID string) ([][]float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "bodies.csv"))
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
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	frames := make([][]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		row := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, v)
		}
		times = append(times, t)
		frames = append(frames, row)
	}

	return frames, times, nil
}

// CSVPath returns the location of a run's frame file.
func (s *Store) CSVPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "bodies.csv")
}
