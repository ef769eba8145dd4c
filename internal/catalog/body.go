package catalog

// Quantity is a value written as Value × 10^Exponent.
type Quantity struct {
	Value    float64 `json:"value" yaml:"value"`
	Exponent int     `json:"exponent" yaml:"exponent"`
}

// Attributes are the optional physical properties of a body. A zero value
// means the feed did not provide the field.
type Attributes struct {
	Moons           int       `json:"moons,omitempty" yaml:"moons,omitempty"`
	SemimajorAxis   float64   `json:"semimajorAxis,omitempty" yaml:"semimajor_axis,omitempty"`
	Perihelion      float64   `json:"perihelion,omitempty" yaml:"perihelion,omitempty"`
	Aphelion        float64   `json:"aphelion,omitempty" yaml:"aphelion,omitempty"`
	Eccentricity    float64   `json:"eccentricity,omitempty" yaml:"eccentricity,omitempty"`
	Inclination     float64   `json:"inclination,omitempty" yaml:"inclination,omitempty"`
	Mass            *Quantity `json:"mass,omitempty" yaml:"mass,omitempty"`
	Volume          *Quantity `json:"vol,omitempty" yaml:"vol,omitempty"`
	Density         float64   `json:"density,omitempty" yaml:"density,omitempty"`
	Gravity         float64   `json:"gravity,omitempty" yaml:"gravity,omitempty"`
	Escape          float64   `json:"escape,omitempty" yaml:"escape,omitempty"`
	MeanRadius      float64   `json:"meanRadius,omitempty" yaml:"mean_radius,omitempty"`
	EquaRadius      float64   `json:"equaRadius,omitempty" yaml:"equa_radius,omitempty"`
	PolarRadius     float64   `json:"polarRadius,omitempty" yaml:"polar_radius,omitempty"`
	Flattening      float64   `json:"flattening,omitempty" yaml:"flattening,omitempty"`
	SideralOrbit    float64   `json:"sideralOrbit,omitempty" yaml:"sideral_orbit,omitempty"`
	SideralRotation float64   `json:"sideralRotation,omitempty" yaml:"sideral_rotation,omitempty"`
	AxialTilt       float64   `json:"axialTilt,omitempty" yaml:"axial_tilt,omitempty"`
	DiscoveredBy    string    `json:"discoveredBy,omitempty" yaml:"discovered_by,omitempty"`
	DiscoveryDate   string    `json:"discoveryDate,omitempty" yaml:"discovery_date,omitempty"`
}

// Body is one entry of the canonical catalog. The first body is the
// central one.
type Body struct {
	Name          string     `json:"englishName" yaml:"name"`
	DisplayRadius float64    `json:"displayRadius" yaml:"display_radius"`
	Attributes    Attributes `json:"attributes" yaml:"attributes"`
}

// Central reports whether b is the body every orbit is centred on.
func (b Body) Central() bool { return b.Name == CanonicalOrder[0] }

// DisplayRadii returns the display radius of every body, in order.
func DisplayRadii(bodies []Body) []float64 {
	radii := make([]float64, len(bodies))
	for i, b := range bodies {
		radii[i] = b.DisplayRadius
	}
	return radii
}

// Find returns the body named name.
func Find(bodies []Body, name string) (Body, bool) {
	for _, b := range bodies {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}
