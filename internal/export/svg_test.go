package export

import (
	"strings"
	"testing"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/present"
	"github.com/san-kum/orrery/internal/sim"
)

func testState() *sim.State {
	return &sim.State{
		Bodies: []catalog.Body{
			{Name: "Sun", DisplayRadius: 160},
			{Name: "Mercury", DisplayRadius: 4},
			{Name: "Venus", DisplayRadius: 7},
		},
		MajorRadii: []float64{520, 728},
		Speeds:     []float64{2, 1.75},
		Positions:  []orbit.Position{{X: 520, Z: 0}, {X: 0, Z: -655.2}},
	}
}

func TestOrbitsSVG(t *testing.T) {
	svg := OrbitsSVG(testState(), present.DefaultCentralOffset, 800)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("expected a complete svg document")
	}
	if n := strings.Count(svg, "<ellipse"); n != 2 {
		t.Errorf("expected 2 orbits, got %d", n)
	}
	if n := strings.Count(svg, "<circle"); n != 3 {
		t.Errorf("expected 3 bodies, got %d", n)
	}

	// outermost orbit fills 90% of the half width: 360px, minor 324px.
	if !strings.Contains(svg, `rx="360.0" ry="324.0"`) {
		t.Error("outer orbit not scaled to the canvas")
	}
	// Mercury at (520, 0) sits on the right edge of its ellipse.
	if !strings.Contains(svg, `cx="657.1" cy="400.0"`) {
		t.Error("Mercury not placed on its orbit")
	}

	// the central body sits 20 units left of centre, as in the other views
	if !strings.Contains(svg, `cx="390.1" cy="400.0" r="79.1"`) {
		t.Error("central body not drawn at its offset")
	}

	sun, _ := catalog.Lookup("Sun")
	if !strings.Contains(svg, sun.Color) {
		t.Error("expected the central body color")
	}
}

func TestOrbitsSVGEmpty(t *testing.T) {
	if OrbitsSVG(nil, present.DefaultCentralOffset, 800) != "" {
		t.Error("expected empty output for nil state")
	}
	if OrbitsSVG(testState(), present.DefaultCentralOffset, 0) != "" {
		t.Error("expected empty output for zero size")
	}
}

func TestTracksSVG(t *testing.T) {
	tracks := map[string][]orbit.Position{
		"Venus":   {{X: 0, Z: 100}, {X: 10, Z: 99}, {X: 20, Z: 98}},
		"Mercury": {{X: 50, Z: 0}, {X: 49, Z: -5}},
		"Mars":    {{X: 1, Z: 1}},
	}

	svg := TracksSVG(tracks, 400)
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 paths, got %d", n)
	}
	if strings.Index(svg, "<title>Mercury</title>") > strings.Index(svg, "<title>Venus</title>") {
		t.Error("tracks should be drawn in name order")
	}
	if strings.Contains(svg, "<title>Mars</title>") {
		t.Error("single-point track should be skipped")
	}
}

func TestTracksSVGEmpty(t *testing.T) {
	if TracksSVG(nil, 400) != "" {
		t.Error("expected empty output for no tracks")
	}
}
