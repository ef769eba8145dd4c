package orbit

import "math"

// MinorRatio is the fixed minor/major radius ratio shared by every orbit.
const MinorRatio = 0.9

// Position is a point on the orbital plane. Y is always zero.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Z float64 `json:"z" yaml:"z"`
}

// MinorRadius returns the minor radius of an orbit with the given major radius.
func MinorRadius(majorRadius float64) float64 {
	return majorRadius / 10 * 9
}

// ZFromX returns the z coordinate on the ellipse boundary for x.
//
// A negative radicand, which shows up when |x| overshoots the major radius
// by a rounding error, is flipped before the square root. The sign of the
// result always follows negativeBranch.
func ZFromX(x, majorRadius float64, negativeBranch bool) float64 {
	b := MinorRadius(majorRadius)
	value := b * b * (1 - (x*x)/(majorRadius*majorRadius))
	if value < 0 {
		value = -value
	}
	z := math.Sqrt(value)
	if negativeBranch {
		return -z
	}
	return z
}

// Residual evaluates z²/b² + x²/a² for p. Points on the ellipse give 1.
func Residual(p Position, majorRadius float64) float64 {
	b := MinorRadius(majorRadius)
	return (p.Z*p.Z)/(b*b) + (p.X*p.X)/(majorRadius*majorRadius)
}

func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
