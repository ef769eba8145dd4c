package orbit

import "math"

// Quadrant is the sign state of a position, used to pick its transition.
type Quadrant int

const (
	QuadrantUndefined  Quadrant = iota
	QuadrantUpperRight          // x > 0, z > 0
	QuadrantRightAxis           // x > 0, z == 0
	QuadrantLowerRight          // x > 0, z < 0
	QuadrantUpperAxis           // x == 0, z > 0
	QuadrantOrigin              // x == 0, z == 0
	QuadrantLowerAxis           // x == 0, z < 0
	QuadrantUpperLeft           // x < 0, z > 0
	QuadrantLeftAxis            // x < 0, z == 0
	QuadrantLowerLeft           // x < 0, z < 0
)

var quadrantNames = map[Quadrant]string{
	QuadrantUndefined:  "undefined",
	QuadrantUpperRight: "upper-right",
	QuadrantRightAxis:  "right-axis",
	QuadrantLowerRight: "lower-right",
	QuadrantUpperAxis:  "upper-axis",
	QuadrantOrigin:     "origin",
	QuadrantLowerAxis:  "lower-axis",
	QuadrantUpperLeft:  "upper-left",
	QuadrantLeftAxis:   "left-axis",
	QuadrantLowerLeft:  "lower-left",
}

func (q Quadrant) String() string {
	if name, ok := quadrantNames[q]; ok {
		return name
	}
	return "unknown"
}

// Upper reports whether bodies in q move towards +x.
func (q Quadrant) Upper() bool {
	return q == QuadrantUpperRight || q == QuadrantUpperAxis || q == QuadrantUpperLeft || q == QuadrantLeftAxis
}

// Classify returns the quadrant of p. NaN coordinates are undefined.
func Classify(p Position) Quadrant {
	if math.IsNaN(p.X) || math.IsNaN(p.Z) {
		return QuadrantUndefined
	}
	col := sign(p.X)
	row := sign(p.Z)
	switch {
	case col > 0 && row > 0:
		return QuadrantUpperRight
	case col > 0 && row == 0:
		return QuadrantRightAxis
	case col > 0:
		return QuadrantLowerRight
	case col == 0 && row > 0:
		return QuadrantUpperAxis
	case col == 0 && row == 0:
		return QuadrantOrigin
	case col == 0:
		return QuadrantLowerAxis
	case row > 0:
		return QuadrantUpperLeft
	case row == 0:
		return QuadrantLeftAxis
	default:
		return QuadrantLowerLeft
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
