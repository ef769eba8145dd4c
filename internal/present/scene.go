package present

import (
	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/orbit"
)

// Vec3 is a point in scene space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DefaultCentralOffset is where the central body is drawn, shifted off the
// origin to hint at perihelion and aphelion.
var DefaultCentralOffset = Vec3{X: -20}

// Mesh describes the sphere built once for a body.
type Mesh struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Color       string  `json:"color"`
	Radius      float64 `json:"radius"`
	MajorRadius float64 `json:"majorRadius,omitempty"`
}

// Scene is everything a renderer needs before the first frame.
type Scene struct {
	Meshes        []Mesh `json:"meshes"`
	CentralOffset Vec3   `json:"centralOffset"`
}

// NewScene pairs each body with its display data. majorRadii is aligned
// with bodies[1:].
func NewScene(bodies []catalog.Body, majorRadii []float64, offset Vec3) Scene {
	meshes := make([]Mesh, len(bodies))
	for i, b := range bodies {
		d, _ := catalog.Lookup(b.Name)
		m := Mesh{Name: b.Name, Label: d.Label, Color: d.Color, Radius: b.DisplayRadius}
		if m.Label == "" {
			m.Label = b.Name
		}
		if i > 0 && i-1 < len(majorRadii) {
			m.MajorRadius = majorRadii[i-1]
		}
		meshes[i] = m
	}
	return Scene{Meshes: meshes, CentralOffset: offset}
}

// Placement is where one mesh goes this frame.
type Placement struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

// Frame is the set of placements for one animation frame.
type Frame struct {
	Index      int         `json:"frame"`
	Placements []Placement `json:"bodies"`
}

// NewFrame places the central body at offset and every orbiting body at
// its position. positions is aligned with bodies[1:].
func NewFrame(index int, bodies []catalog.Body, positions []orbit.Position, offset Vec3) Frame {
	placements := make([]Placement, 0, len(bodies))
	for i, b := range bodies {
		if i == 0 {
			placements = append(placements, Placement{Name: b.Name, X: offset.X, Y: offset.Y, Z: offset.Z})
			continue
		}
		if i-1 >= len(positions) {
			break
		}
		p := positions[i-1]
		placements = append(placements, Placement{Name: b.Name, X: p.X, Z: p.Z})
	}
	return Frame{Index: index, Placements: placements}
}
