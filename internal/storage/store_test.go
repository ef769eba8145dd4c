package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
)

func testRun() (RunMetadata, *sim.Result) {
	meta := RunMetadata{
		Seed:       42,
		Catalog:    "testdata",
		Bodies:     []string{"Mercury", "Venus"},
		MajorRadii: []float64{520, 728},
		Speeds:     []float64{2, 1.75},
	}
	result := &sim.Result{
		Frames: 2,
		Positions: [][]orbit.Position{
			{{X: 10, Z: 467.5}, {X: -20, Z: -654.9}},
			{{X: 12.25, Z: 467.4}, {X: -18, Z: -655}},
			{{X: 14.5, Z: 467.3}, {X: -16, Z: -655.1}},
		},
		Metrics: map[string]float64{"laps": 0.5},
	}
	return meta, result
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta, result := testRun()
	runID, err := st.Save(meta, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
	if loaded.Frames != 2 {
		t.Errorf("expected 2 frames, got %d", loaded.Frames)
	}
	if loaded.Metrics["laps"] != 0.5 {
		t.Errorf("expected laps 0.5, got %f", loaded.Metrics["laps"])
	}
	if loaded.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestStoreCSVLayout(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	meta, result := testRun()
	meta.ID = "fixed"

	if _, err := st.Save(meta, result); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "fixed", "positions.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "frame,body,x,z" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if len(lines) != 7 {
		t.Errorf("expected 7 lines, got %d", len(lines))
	}
	if lines[3] != "1,Mercury,12.25,467.4" {
		t.Errorf("unexpected row %q", lines[3])
	}
}

func TestStoreLoadTracks(t *testing.T) {
	st := New(t.TempDir())
	meta, result := testRun()
	runID, err := st.Save(meta, result)
	if err != nil {
		t.Fatal(err)
	}

	tracks, err := st.LoadTracks(runID)
	if err != nil {
		t.Fatalf("load tracks failed: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}
	if len(tracks["Venus"]) != 3 {
		t.Errorf("expected 3 Venus positions, got %d", len(tracks["Venus"]))
	}
	if tracks["Mercury"][2] != (orbit.Position{X: 14.5, Z: 467.3}) {
		t.Errorf("unexpected Mercury position %v", tracks["Mercury"][2])
	}
}

func TestStoreLoadResult(t *testing.T) {
	st := New(t.TempDir())
	meta, result := testRun()
	runID, err := st.Save(meta, result)
	if err != nil {
		t.Fatal(err)
	}

	_, loaded, err := st.LoadResult(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Positions) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(loaded.Positions))
	}
	for f := range result.Positions {
		for i := range result.Positions[f] {
			if loaded.Positions[f][i] != result.Positions[f][i] {
				t.Errorf("frame %d body %d: %v != %v", f, i, loaded.Positions[f][i], result.Positions[f][i])
			}
		}
	}
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	meta, result := testRun()
	meta.ID = "first"
	if _, err := st.Save(meta, result); err != nil {
		t.Fatal(err)
	}
	meta.ID = "second"
	if _, err := st.Save(meta, result); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreMissingRun(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("ghost"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadTracks("ghost"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreBadTrack(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := os.MkdirAll(filepath.Join(dir, "bad"), 0755); err != nil {
		t.Fatal(err)
	}
	csv := "frame,body,x,z\n0,Mars,abc,1\n"
	if err := os.WriteFile(filepath.Join(dir, "bad", "positions.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := st.LoadTracks("bad"); !errors.Is(err, ErrBadTrack) {
		t.Errorf("expected ErrBadTrack, got %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	meta, result := testRun()
	meta.ID = "exp"

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, result); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Run.ID != "exp" {
		t.Errorf("expected run id exp, got %s", data.Run.ID)
	}
	if len(data.Tracks["Mercury"]) != 3 {
		t.Errorf("expected 3 Mercury points, got %d", len(data.Tracks["Mercury"]))
	}
	if data.Tracks["Venus"][0].X != -20 {
		t.Errorf("unexpected first Venus point %v", data.Tracks["Venus"][0])
	}
}
