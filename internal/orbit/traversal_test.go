package orbit_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/orbit"
)

type turn struct {
	frame int
	right bool
}

// traverse steps a single body and records every change between the upper
// and lower halves of its ellipse.
func traverse(start orbit.Position, a, speed float64, frames int) ([]turn, float64) {
	p := start
	upper := orbit.Classify(p).Upper()
	turns := []turn{}
	maxAbsX := math.Abs(p.X)
	for f := 1; f <= frames; f++ {
		p = orbit.Step(p, a, speed)
		maxAbsX = math.Max(maxAbsX, math.Abs(p.X))
		if u := orbit.Classify(p).Upper(); u != upper {
			turns = append(turns, turn{frame: f, right: p.X > 0})
			upper = u
		}
	}
	return turns, maxAbsX
}

var _ = Describe("Traversal", func() {
	radii := orbit.MajorRadii([]float64{160, 4, 7, 8, 5, 32, 28, 20, 19})

	Context("starting just inside the right cusp", func() {
		a := radii[0]
		x := a - 0.05
		start := orbit.Position{X: x, Z: orbit.ZFromX(x, a, false)}

		It("turns around immediately onto the lower branch", func() {
			next := orbit.Step(start, a, orbit.DefaultSpeeds[0])
			Expect(next.X).To(BeNumerically("<", a))
			Expect(next.Z).To(BeNumerically("<", 0))
			Expect(orbit.Classify(next)).To(Equal(orbit.QuadrantLowerRight))
		})

		It("alternates right and left turnarounds without leaving the ellipse", func() {
			turns, maxAbsX := traverse(start, a, orbit.DefaultSpeeds[0], 10000)

			Expect(len(turns)).To(BeNumerically(">=", 8))
			for i, tr := range turns {
				Expect(tr.right).To(Equal(i%2 == 0), "turn %d at frame %d", i, tr.frame)
			}
			Expect(maxAbsX).To(BeNumerically("<=", a+1e-9))
		})
	})

	Context("starting on the lower left arc", func() {
		a := radii[3]
		x := -(a - 0.05)
		start := orbit.Position{X: x, Z: orbit.ZFromX(x, a, true)}

		It("turns onto the upper branch moving towards +x", func() {
			next := orbit.Step(start, a, orbit.DefaultSpeeds[3])
			Expect(next.X).To(BeNumerically(">", -a))
			Expect(next.Z).To(BeNumerically(">", 0))
			Expect(orbit.Classify(next)).To(Equal(orbit.QuadrantUpperLeft))
		})
	})

	Context("every body from random starts", func() {
		It("stays on its ellipse for many frames", func() {
			rng := rand.New(rand.NewSource(42))
			positions := orbit.InitialPositions(radii, rng)
			for f := 0; f < 5000; f++ {
				var err error
				positions, err = orbit.Advance(positions, radii, orbit.DefaultSpeeds)
				Expect(err).NotTo(HaveOccurred())
			}
			for i, p := range positions {
				Expect(orbit.Residual(p, radii[i])).To(BeNumerically("~", 1, 1e-6))
				Expect(math.Abs(p.X)).To(BeNumerically("<=", radii[i]+1e-9))
			}
		})

		It("moves inner bodies further per frame than outer ones", func() {
			inner := orbit.RelativeStep(radii[0], 0, orbit.DefaultSpeeds[0])
			outer := orbit.RelativeStep(radii[7], 0, orbit.DefaultSpeeds[7])
			Expect(inner).To(BeNumerically(">", outer))
		})
	})
})
