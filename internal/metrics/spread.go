package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
)

// Spread is the standard deviation, across bodies, of each body's mean
// per-frame travel.
type Spread struct {
	name    string
	prev    []orbit.Position
	sums    []float64
	samples int
}

func NewSpread() *Spread {
	return &Spread{name: "step_spread"}
}

func (sp *Spread) Name() string { return sp.name }

func (sp *Spread) Observe(s *sim.State) {
	if sp.prev == nil || len(sp.prev) != len(s.Positions) {
		sp.prev = append([]orbit.Position(nil), s.Positions...)
		sp.sums = make([]float64, len(s.Positions))
		sp.samples = 0
		return
	}

	for i, p := range s.Positions {
		d := math.Hypot(p.X-sp.prev[i].X, p.Z-sp.prev[i].Z)
		if !math.IsNaN(d) {
			sp.sums[i] += d
		}
		sp.prev[i] = p
	}
	sp.samples++
}

// MeanSteps returns each body's mean travel per frame.
func (sp *Spread) MeanSteps() []float64 {
	means := make([]float64, len(sp.sums))
	if sp.samples == 0 {
		return means
	}
	for i, sum := range sp.sums {
		means[i] = sum / float64(sp.samples)
	}
	return means
}

func (sp *Spread) Value() float64 {
	means := sp.MeanSteps()
	if len(means) < 2 {
		return 0
	}
	return stat.StdDev(means, nil)
}

func (sp *Spread) Reset() {
	sp.prev = nil
	sp.sums = nil
	sp.samples = 0
}

// Standard returns the diagnostics a headless run reports.
func Standard() []sim.Metric {
	return []sim.Metric{
		NewEllipseResidual(),
		NewBoundaryRatio(),
		NewLaps(),
		NewSpread(),
	}
}
