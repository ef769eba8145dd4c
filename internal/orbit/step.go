package orbit

// DefaultSpeeds holds the base step per orbiting body, innermost first.
var DefaultSpeeds = []float64{2.00, 1.75, 1.50, 1.25, 1.00, 0.75, 0.50, 0.25}

const (
	edgeBand = 0.1
	edgeStep = 0.01
)

// RelativeStep returns how far |x| moves this frame. Bodies move fastest
// near x = 0 and slow towards the turnaround; within edgeBand of the major
// radius a small constant step is used instead.
func RelativeStep(majorRadius, absX, baseSpeed float64) float64 {
	if absX+edgeBand >= majorRadius {
		return edgeStep + baseSpeed
	}
	return (majorRadius-absX)/majorRadius + baseSpeed
}
