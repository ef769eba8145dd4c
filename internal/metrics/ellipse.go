package metrics

import (
	"math"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
)

// EllipseResidual tracks how far any body strays from its ellipse.
type EllipseResidual struct {
	name    string
	maxDiff float64
}

func NewEllipseResidual() *EllipseResidual {
	return &EllipseResidual{name: "ellipse_residual"}
}

func (e *EllipseResidual) Name() string { return e.name }

func (e *EllipseResidual) Observe(s *sim.State) {
	for i, p := range s.Positions {
		if i >= len(s.MajorRadii) {
			break
		}
		diff := math.Abs(orbit.Residual(p, s.MajorRadii[i]) - 1)
		if math.IsNaN(diff) {
			continue
		}
		if diff > e.maxDiff {
			e.maxDiff = diff
		}
	}
}

func (e *EllipseResidual) Value() float64 { return e.maxDiff }

func (e *EllipseResidual) Reset() { e.maxDiff = 0 }

// BoundaryRatio is the largest |x|/a seen. Anything above 1 means a body
// left its orbit.
type BoundaryRatio struct {
	name     string
	maxRatio float64
}

func NewBoundaryRatio() *BoundaryRatio {
	return &BoundaryRatio{name: "boundary_ratio"}
}

func (b *BoundaryRatio) Name() string { return b.name }

func (b *BoundaryRatio) Observe(s *sim.State) {
	for i, p := range s.Positions {
		if i >= len(s.MajorRadii) || s.MajorRadii[i] <= 0 {
			continue
		}
		ratio := math.Abs(p.X) / s.MajorRadii[i]
		if ratio > b.maxRatio {
			b.maxRatio = ratio
		}
	}
}

func (b *BoundaryRatio) Value() float64 { return b.maxRatio }

func (b *BoundaryRatio) Reset() { b.maxRatio = 0 }
