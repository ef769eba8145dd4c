package orbit

import (
	"fmt"
	"math"
)

// Step moves p one frame along its ellipse.
//
// The two turnaround states clamp the step at the major radius and send the
// leftover distance back the other way on the opposite branch. Origin and
// undefined positions have no transition and are returned as is.
func Step(p Position, majorRadius, speed float64) Position {
	x := p.X
	inc := RelativeStep(majorRadius, math.Abs(x), speed)

	switch Classify(p) {
	case QuadrantUpperRight:
		if inc > majorRadius-x {
			edge := majorRadius - x
			x += edge
			x -= inc - edge
			return Position{X: x, Z: ZFromX(x, majorRadius, true)}
		}
		x += inc
		return Position{X: x, Z: ZFromX(x, majorRadius, false)}

	case QuadrantRightAxis, QuadrantLowerRight, QuadrantLowerAxis:
		x -= inc
		return Position{X: x, Z: ZFromX(x, majorRadius, true)}

	case QuadrantUpperAxis, QuadrantUpperLeft, QuadrantLeftAxis:
		x += inc
		return Position{X: x, Z: ZFromX(x, majorRadius, false)}

	case QuadrantLowerLeft:
		if inc > majorRadius-math.Abs(x) {
			edge := majorRadius - math.Abs(x)
			x -= edge
			x += inc - edge
			return Position{X: x, Z: ZFromX(x, majorRadius, false)}
		}
		x -= inc
		return Position{X: x, Z: ZFromX(x, majorRadius, true)}
	}

	return p
}

// Advance returns the next frame's positions. The input slice is not
// modified. Every body is stepped independently with its own radius and
// speed; speeds may be longer than positions.
func Advance(positions []Position, majorRadii, speeds []float64) ([]Position, error) {
	if len(majorRadii) != len(positions) {
		return nil, fmt.Errorf("%d positions, %d radii: %w", len(positions), len(majorRadii), ErrDimensionMismatch)
	}
	if len(speeds) < len(positions) {
		return nil, fmt.Errorf("%d positions, %d speeds: %w", len(positions), len(speeds), ErrDimensionMismatch)
	}
	next := make([]Position, len(positions))
	for i, p := range positions {
		next[i] = Step(p, majorRadii[i], speeds[i])
	}
	return next, nil
}
