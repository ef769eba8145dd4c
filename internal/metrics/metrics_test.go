package metrics

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
)

func single(a float64, p orbit.Position) *sim.State {
	return &sim.State{
		MajorRadii: []float64{a},
		Speeds:     []float64{1},
		Positions:  []orbit.Position{p},
	}
}

func onEllipse(x, a float64, negative bool) orbit.Position {
	return orbit.Position{X: x, Z: orbit.ZFromX(x, a, negative)}
}

func TestEllipseResidual(t *testing.T) {
	m := NewEllipseResidual()

	m.Observe(single(100, onEllipse(40, 100, false)))
	if m.Value() > 1e-12 {
		t.Errorf("expected ~0 on the ellipse, got %g", m.Value())
	}

	m.Observe(single(100, orbit.Position{X: 0, Z: 0}))
	if math.Abs(m.Value()-1) > 1e-12 {
		t.Errorf("expected 1 at the origin, got %g", m.Value())
	}

	m.Observe(single(100, orbit.Position{X: math.NaN(), Z: 0}))
	if math.IsNaN(m.Value()) {
		t.Error("NaN position leaked into residual")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %g", m.Value())
	}
}

func TestBoundaryRatio(t *testing.T) {
	m := NewBoundaryRatio()
	m.Observe(single(100, orbit.Position{X: -50}))
	m.Observe(single(100, orbit.Position{X: 80}))
	m.Observe(single(100, orbit.Position{X: 20}))

	if math.Abs(m.Value()-0.8) > 1e-12 {
		t.Errorf("expected 0.8, got %g", m.Value())
	}
}

func TestLaps(t *testing.T) {
	m := NewLaps()
	a := 100.0

	frames := []orbit.Position{
		onEllipse(90, a, false),
		onEllipse(99, a, false),
		onEllipse(98, a, true), // turned at +a
		onEllipse(-99, a, true),
		onEllipse(-98, a, false), // turned at -a, not counted
		onEllipse(99, a, false),
		onEllipse(97, a, true), // second lap
	}
	for _, p := range frames {
		m.Observe(single(a, p))
	}

	if got := m.Value(); got != 2 {
		t.Errorf("expected 2 laps, got %v", got)
	}
	if got := m.PerBody(); len(got) != 1 || got[0] != 2 {
		t.Errorf("unexpected per-body laps %v", got)
	}
}

func TestSpread(t *testing.T) {
	m := NewSpread()
	state := &sim.State{
		MajorRadii: []float64{100, 200},
		Positions:  []orbit.Position{{X: 0, Z: 90}, {X: 0, Z: 180}},
	}
	m.Observe(state)

	state.Positions = []orbit.Position{{X: 1, Z: 90}, {X: 3, Z: 180}}
	m.Observe(state)

	means := m.MeanSteps()
	if means[0] != 1 || means[1] != 3 {
		t.Fatalf("unexpected mean steps %v", means)
	}

	// sample standard deviation of {1, 3}
	if got := m.Value(); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("expected sqrt(2), got %g", got)
	}
}

func TestRunCountsFirstFrame(t *testing.T) {
	a := 520.0
	state := single(a, onEllipse(a-0.05, a, false))
	state.Speeds = []float64{2}

	laps := NewLaps()
	spread := NewSpread()
	s := sim.New(state)
	s.AddMetric(laps)
	s.AddMetric(spread)

	result, err := s.Run(context.Background(), sim.Config{Frames: 3, Record: true})
	if err != nil {
		t.Fatal(err)
	}

	if q := orbit.Classify(result.Positions[1][0]); q != orbit.QuadrantLowerRight {
		t.Fatalf("expected a turnaround at +a on frame 1, got %v", q)
	}
	if got := result.Metrics["laps"]; got != 1 {
		t.Errorf("expected 1 lap, got %v", got)
	}

	var travel float64
	for i := 1; i < len(result.Positions); i++ {
		p, q := result.Positions[i-1][0], result.Positions[i][0]
		travel += math.Hypot(q.X-p.X, q.Z-p.Z)
	}
	if got := spread.MeanSteps()[0]; math.Abs(got-travel/3) > 1e-9 {
		t.Errorf("expected mean step over all 3 frames %g, got %g", travel/3, got)
	}
}

func TestStandardOverRun(t *testing.T) {
	bodies := make([]catalog.Body, 0, len(catalog.CanonicalOrder))
	for _, name := range catalog.CanonicalOrder {
		d, _ := catalog.Lookup(name)
		bodies = append(bodies, catalog.Body{Name: name, DisplayRadius: d.Radius})
	}

	state, err := sim.Layout(bodies, orbit.DefaultSpeeds, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	s := sim.New(state)
	for _, m := range Standard() {
		s.AddMetric(m)
	}

	result, err := s.Run(context.Background(), sim.Config{Frames: 3000})
	if err != nil {
		t.Fatal(err)
	}

	if r := result.Metrics["ellipse_residual"]; r > 1e-6 {
		t.Errorf("residual %g exceeds tolerance", r)
	}
	if b := result.Metrics["boundary_ratio"]; b > 1+1e-9 {
		t.Errorf("boundary ratio %g exceeds 1", b)
	}
	if l := result.Metrics["laps"]; l <= 0 {
		t.Errorf("expected some laps in 3000 frames, got %g", l)
	}
	if sp := result.Metrics["step_spread"]; sp <= 0 {
		t.Errorf("expected bodies to move at different rates, got %g", sp)
	}
}
