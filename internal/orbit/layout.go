package orbit

import (
	"fmt"
	"math"
	"math/rand"
)

// Clearance is the fixed gap added between neighbouring orbits.
const Clearance = 200.0

// MajorRadii packs orbits outward. displayRadii lists every body including
// the central one; the result has one entry per orbiting body. Each orbit
// sits one diameter of the previous body plus Clearance beyond the last.
func MajorRadii(displayRadii []float64) []float64 {
	if len(displayRadii) < 2 {
		return []float64{}
	}
	radii := make([]float64, 0, len(displayRadii)-1)
	total := 0.0
	for i := 1; i < len(displayRadii); i++ {
		total += displayRadii[i-1]*2 + Clearance
		radii = append(radii, total)
	}
	return radii
}

// ValidateRadii reports the first radius that cannot describe an ellipse.
func ValidateRadii(majorRadii []float64) error {
	for i, r := range majorRadii {
		if !validRadius(r) {
			return fmt.Errorf("body %d radius %v: %w", i, r, ErrInvalidRadius)
		}
	}
	return nil
}

// InitialPositions draws an independent random starting point on each orbit.
// x is drawn from [1, a] and flipped with even odds; a second coin picks
// the z branch.
func InitialPositions(majorRadii []float64, rng *rand.Rand) []Position {
	positions := make([]Position, len(majorRadii))
	for i, a := range majorRadii {
		x := math.Min(math.Floor(rng.Float64()*a+1), a)
		if rng.Intn(2) != 1 {
			x = -x
		}
		negative := rng.Intn(2) == 1
		positions[i] = Position{X: x, Z: ZFromX(x, a, negative)}
	}
	return positions
}
