package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
)

type ExportData struct {
	Run    RunMetadata                 `json:"run"`
	Tracks map[string][]orbit.Position `json:"tracks"`
}

// ExportJSON writes a run and its per-body tracks as indented JSON.
func ExportJSON(w io.Writer, meta RunMetadata, result *sim.Result) error {
	data := ExportData{
		Run:    meta,
		Tracks: make(map[string][]orbit.Position, len(meta.Bodies)),
	}

	for _, positions := range result.Positions {
		for i, p := range positions {
			if i >= len(meta.Bodies) {
				break
			}
			name := meta.Bodies[i]
			data.Tracks[name] = append(data.Tracks[name], p)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
