package sim

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/orbit"
)

// Layout computes every orbit once and draws the initial positions.
func Layout(bodies []catalog.Body, speeds []float64, rng *rand.Rand) (*State, error) {
	if len(bodies) == 0 {
		return nil, ErrNoBodies
	}

	radii := orbit.MajorRadii(catalog.DisplayRadii(bodies))
	if err := orbit.ValidateRadii(radii); err != nil {
		return nil, err
	}
	if len(speeds) < len(radii) {
		return nil, fmt.Errorf("%d orbiting bodies, %d speeds: %w", len(radii), len(speeds), orbit.ErrDimensionMismatch)
	}

	return &State{
		Bodies:     bodies,
		MajorRadii: radii,
		Speeds:     append([]float64(nil), speeds[:len(radii)]...),
		Positions:  orbit.InitialPositions(radii, rng),
	}, nil
}
