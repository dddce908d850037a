package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/pfx3d/internal/dynamo"
	"github.com/san-kum/pfx3d/internal/sim"
)

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
)

var statesHeader = []string{"pitch", "time", "x", "y", "z", "vx", "vy", "vz"}

// Store keeps sampled pitch runs under baseDir, one directory per run.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// PitchSummary describes one sampled pitch of a run.
type PitchSummary struct {
	Index       int                `json:"index"`
	ID          string             `json:"id"`
	Description string             `json:"description"`
	PitchType   string             `json:"pitch_type"`
	Outcome     string             `json:"outcome"`
	FlightTime  float64            `json:"flight_time"`
	Plate       dynamo.Vec3        `json:"plate"`
	Samples     int                `json:"samples"`
	Metrics     map[string]float64 `json:"metrics"`
}

type RunMetadata struct {
	ID         string         `json:"id"`
	Source     string         `json:"source"`
	Timestamp  time.Time      `json:"timestamp"`
	Dt         float64        `json:"dt"`
	Integrator string         `json:"integrator"`
	Pitches    []PitchSummary `json:"pitches"`
}

// Sample is one row of a run's states file.
type Sample struct {
	Pitch int
	Time  float64
	State dynamo.State
}

func summarize(r *sim.PitchRun) PitchSummary {
	return PitchSummary{
		Index:       r.Index,
		ID:          r.Pitch.ID,
		Description: r.Pitch.Description,
		PitchType:   r.Pitch.PitchType,
		Outcome:     r.Pitch.Outcome.Code(),
		FlightTime:  r.Trajectory.FlightTime(),
		Plate:       r.Trajectory.PlateCrossing(),
		Samples:     len(r.Result.States),
		Metrics:     r.Result.Metrics,
	}
}

// Save writes runs as a new stored run and returns its id. Nil entries
// (pitches that failed to sample) are skipped.
func (s *Store) Save(source, integrator string, dt float64, runs []*sim.PitchRun) (string, error) {
	now := s.now()
	runID := fmt.Sprintf("run_%s_%s", now.Format("20060102T150405"), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Source:     source,
		Timestamp:  now,
		Dt:         dt,
		Integrator: integrator,
		Pitches:    make([]PitchSummary, 0, len(runs)),
	}
	for _, r := range runs {
		if r != nil {
			meta.Pitches = append(meta.Pitches, summarize(r))
		}
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, statesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeStates(csvFile, runs); err != nil {
		return "", fmt.Errorf("write states: %w", err)
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStates(out io.Writer, runs []*sim.PitchRun) error {
	w := csv.NewWriter(out)
	if err := w.Write(statesHeader); err != nil {
		return err
	}

	for _, r := range runs {
		if r == nil {
			continue
		}
		for i, x := range r.Result.States {
			row := make([]string, 0, len(statesHeader))
			row = append(row, strconv.Itoa(r.Index), strconv.FormatFloat(r.Result.Times[i], 'g', -1, 64))
			for _, v := range x {
				row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// List returns stored runs, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s metadata: %w", runID, err)
	}

	return &meta, nil
}

// LoadSamples reads back every sampled state of a run in file order.
func (s *Store) LoadSamples(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, statesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(statesHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s states: %w", runID, err)
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for line, record := range records[1:] {
		idx, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("run %s states line %d: %w", runID, line+2, err)
		}
		vals := make([]float64, len(record)-1)
		for j, raw := range record[1:] {
			if vals[j], err = strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("run %s states line %d: %w", runID, line+2, err)
			}
		}
		samples = append(samples, Sample{Pitch: idx, Time: vals[0], State: dynamo.State(vals[1:])})
	}

	return samples, nil
}
