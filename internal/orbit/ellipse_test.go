package orbit

import (
	"math"
	"testing"
)

func TestZFromXOnEllipse(t *testing.T) {
	radii := []float64{520, 728, 944, 1160, 1370}
	for _, a := range radii {
		for _, negative := range []bool{false, true} {
			for k := -20; k <= 20; k++ {
				x := a * float64(k) / 20
				z := ZFromX(x, a, negative)

				if r := Residual(Position{X: x, Z: z}, a); math.Abs(r-1) > 1e-6 {
					t.Errorf("a=%v x=%v: residual %v, want 1", a, x, r)
				}
				if negative && z > 0 {
					t.Errorf("a=%v x=%v: z=%v on negative branch", a, x, z)
				}
				if !negative && z < 0 {
					t.Errorf("a=%v x=%v: z=%v on positive branch", a, x, z)
				}
			}
		}
	}
}

func TestZFromXNegativeRadicand(t *testing.T) {
	a := 520.0
	x := a + 1e-3

	pos := ZFromX(x, a, false)
	neg := ZFromX(x, a, true)

	if math.IsNaN(pos) || math.IsNaN(neg) {
		t.Fatalf("expected finite z for overshoot, got %v / %v", pos, neg)
	}
	if pos < 0 || neg > 0 {
		t.Errorf("branch sign not honoured: pos=%v neg=%v", pos, neg)
	}
	if math.Abs(pos) > 10 {
		t.Errorf("expected near-zero z for slight overshoot, got %v", pos)
	}
}

func TestZFromXExtremes(t *testing.T) {
	a := 728.0
	b := MinorRadius(a)

	tests := []struct {
		name     string
		x        float64
		negative bool
		want     float64
	}{
		{"top", 0, false, b},
		{"bottom", 0, true, -b},
		{"right cusp", a, false, 0},
		{"left cusp", -a, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZFromX(tt.x, a, tt.negative); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ZFromX(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestMinorRadius(t *testing.T) {
	if got := MinorRadius(1000); math.Abs(got-900) > 1e-9 {
		t.Errorf("MinorRadius(1000) = %v, want 900", got)
	}
}
