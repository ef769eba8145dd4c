package sim

import (
	"errors"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/orbit"
)

// ErrNoBodies indicates a layout was requested for an empty catalog.
var ErrNoBodies = errors.New("sim: no bodies to lay out")

// State is the whole simulation: the catalog, each orbiting body's major
// radius and speed, and its current position. MajorRadii, Speeds and
// Positions are aligned with Bodies[1:].
type State struct {
	Bodies     []catalog.Body
	MajorRadii []float64
	Speeds     []float64
	Positions  []orbit.Position
	Frame      int
}

// Clone returns a deep copy of the mutable parts of s. Bodies are shared
// since nothing writes to them after layout.
func (s *State) Clone() *State {
	c := &State{
		Bodies:     s.Bodies,
		MajorRadii: append([]float64(nil), s.MajorRadii...),
		Speeds:     append([]float64(nil), s.Speeds...),
		Positions:  append([]orbit.Position(nil), s.Positions...),
		Frame:      s.Frame,
	}
	return c
}

// Orbiting returns the bodies that move, i.e. all but the central one.
func (s *State) Orbiting() []catalog.Body {
	if len(s.Bodies) == 0 {
		return nil
	}
	return s.Bodies[1:]
}

type Metric interface {
	Name() string
	Observe(s *State)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(s *State)
}

type Config struct {
	Frames int
	Record bool
}

type Result struct {
	Frames    int
	Positions [][]orbit.Position
	Metrics   map[string]float64
}
