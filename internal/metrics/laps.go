package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/sim"
)

// Laps counts turnarounds at +a, one per completed lap, and reports the
// mean across bodies.
type Laps struct {
	name   string
	counts []float64
	upper  []bool
	seen   bool
}

func NewLaps() *Laps {
	return &Laps{name: "laps"}
}

func (l *Laps) Name() string { return l.name }

func (l *Laps) Observe(s *sim.State) {
	if !l.seen || len(l.upper) != len(s.Positions) {
		l.counts = make([]float64, len(s.Positions))
		l.upper = make([]bool, len(s.Positions))
		for i, p := range s.Positions {
			l.upper[i] = orbit.Classify(p).Upper()
		}
		l.seen = true
		return
	}

	for i, p := range s.Positions {
		upper := orbit.Classify(p).Upper()
		if l.upper[i] && !upper && p.X > 0 {
			l.counts[i]++
		}
		l.upper[i] = upper
	}
}

// PerBody returns the lap count of each orbiting body.
func (l *Laps) PerBody() []float64 {
	return append([]float64(nil), l.counts...)
}

func (l *Laps) Value() float64 {
	if len(l.counts) == 0 {
		return 0
	}
	return stat.Mean(l.counts, nil)
}

func (l *Laps) Reset() {
	l.counts = nil
	l.upper = nil
	l.seen = false
}
