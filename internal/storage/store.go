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

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrBadTrack    = errors.New("storage: malformed positions file")
)

const (
	metadataFile  = "metadata.json"
	positionsFile = "positions.csv"
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

// RunMetadata describes a recorded run. Bodies lists the orbiting bodies
// in the same order as MajorRadii and Speeds.
type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Frames     int                `json:"frames"`
	Catalog    string             `json:"catalog"`
	Bodies     []string           `json:"bodies"`
	MajorRadii []float64          `json:"majorRadii"`
	Speeds     []float64          `json:"speeds"`
	Metrics    map[string]float64 `json:"metrics"`
}

// NewMetadata fills the run description from the simulation state.
func NewMetadata(state *sim.State, seed int64, source string) RunMetadata {
	names := make([]string, 0, len(state.Orbiting()))
	for _, b := range state.Orbiting() {
		names = append(names, b.Name)
	}
	return RunMetadata{
		Seed:       seed,
		Catalog:    source,
		Bodies:     names,
		MajorRadii: append([]float64(nil), state.MajorRadii...),
		Speeds:     append([]float64(nil), state.Speeds...),
	}
}

func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	if meta.ID == "" {
		meta.ID = fmt.Sprintf("run_%d", now.UnixNano())
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = now
	}
	meta.Frames = result.Frames
	meta.Metrics = result.Metrics

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, positionsFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writePositions(csvFile, meta.Bodies, result.Positions); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writePositions(out io.Writer, bodies []string, frames [][]orbit.Position) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"frame", "body", "x", "z"}); err != nil {
		return err
	}

	for frame, positions := range frames {
		for i, p := range positions {
			if i >= len(bodies) {
				break
			}
			row := []string{
				strconv.Itoa(frame),
				bodies[i],
				strconv.FormatFloat(p.X, 'f', -1, 64),
				strconv.FormatFloat(p.Z, 'f', -1, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
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
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTracks returns each body's recorded positions in frame order.
func (s *Store) LoadTracks(runID string) (map[string][]orbit.Position, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, positionsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", runID, ErrRunNotFound)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTrack, err)
	}

	tracks := make(map[string][]orbit.Position)
	for i := 1; i < len(records); i++ {
		record := records[i]
		x, errX := strconv.ParseFloat(record[2], 64)
		z, errZ := strconv.ParseFloat(record[3], 64)
		if errX != nil || errZ != nil {
			return nil, fmt.Errorf("%w: line %d", ErrBadTrack, i+1)
		}
		tracks[record[1]] = append(tracks[record[1]], orbit.Position{X: x, Z: z})
	}

	return tracks, nil
}

// LoadResult rebuilds the recorded frames of a run.
func (s *Store) LoadResult(runID string) (*RunMetadata, *sim.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	tracks, err := s.LoadTracks(runID)
	if err != nil {
		return nil, nil, err
	}

	frames := 0
	for _, name := range meta.Bodies {
		if n := len(tracks[name]); n > frames {
			frames = n
		}
	}

	result := &sim.Result{
		Frames:    meta.Frames,
		Positions: make([][]orbit.Position, frames),
		Metrics:   meta.Metrics,
	}
	for f := range result.Positions {
		row := make([]orbit.Position, len(meta.Bodies))
		for i, name := range meta.Bodies {
			if f < len(tracks[name]) {
				row[i] = tracks[name][f]
			}
		}
		result.Positions[f] = row
	}
	return meta, result, nil
}
