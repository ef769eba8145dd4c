package catalog

import "fmt"

type rawMoon struct {
	Moon string `json:"moon"`
	Rel  string `json:"rel"`
}

type rawMass struct {
	MassValue    float64 `json:"massValue"`
	MassExponent int     `json:"massExponent"`
}

type rawVol struct {
	VolValue    float64 `json:"volValue"`
	VolExponent int     `json:"volExponent"`
}

// rawBody mirrors one record of the bodies endpoint. Fields the catalog
// never shows (id, name, isPlanet, rel, ...) are decoded only so they can be
// told apart from the ones that matter.
type rawBody struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	EnglishName     string    `json:"englishName"`
	IsPlanet        bool      `json:"isPlanet"`
	Rel             string    `json:"rel"`
	Moons           []rawMoon `json:"moons"`
	SemimajorAxis   float64   `json:"semimajorAxis"`
	Perihelion      float64   `json:"perihelion"`
	Aphelion        float64   `json:"aphelion"`
	Eccentricity    float64   `json:"eccentricity"`
	Inclination     float64   `json:"inclination"`
	Mass            *rawMass  `json:"mass"`
	Vol             *rawVol   `json:"vol"`
	Density         float64   `json:"density"`
	Gravity         float64   `json:"gravity"`
	Escape          float64   `json:"escape"`
	MeanRadius      float64   `json:"meanRadius"`
	EquaRadius      float64   `json:"equaRadius"`
	PolarRadius     float64   `json:"polarRadius"`
	Flattening      float64   `json:"flattening"`
	SideralOrbit    float64   `json:"sideralOrbit"`
	SideralRotation float64   `json:"sideralRotation"`
	AxialTilt       float64   `json:"axialTilt"`
	DiscoveredBy    string    `json:"discoveredBy"`
	DiscoveryDate   string    `json:"discoveryDate"`
}

type rawResponse struct {
	Bodies []rawBody `json:"bodies"`
}

func (r rawBody) attributes() Attributes {
	a := Attributes{
		Moons:           len(r.Moons),
		SemimajorAxis:   r.SemimajorAxis,
		Perihelion:      r.Perihelion,
		Aphelion:        r.Aphelion,
		Eccentricity:    r.Eccentricity,
		Inclination:     r.Inclination,
		Density:         r.Density,
		Gravity:         r.Gravity,
		Escape:          r.Escape,
		MeanRadius:      r.MeanRadius,
		EquaRadius:      r.EquaRadius,
		PolarRadius:     r.PolarRadius,
		Flattening:      r.Flattening,
		SideralOrbit:    r.SideralOrbit,
		SideralRotation: r.SideralRotation,
		AxialTilt:       r.AxialTilt,
		DiscoveredBy:    r.DiscoveredBy,
		DiscoveryDate:   r.DiscoveryDate,
	}
	if r.Mass != nil && r.Mass.MassValue != 0 {
		a.Mass = &Quantity{Value: r.Mass.MassValue, Exponent: r.Mass.MassExponent}
	}
	if r.Vol != nil && r.Vol.VolValue != 0 {
		a.Volume = &Quantity{Value: r.Vol.VolValue, Exponent: r.Vol.VolExponent}
	}
	return a
}

// stripCentral clears the fields that make no sense for the central body.
func stripCentral(a Attributes) Attributes {
	a.Moons = 0
	a.Volume = nil
	a.DiscoveredBy = ""
	a.DiscoveryDate = ""
	return a
}

// shape turns the two raw responses into the canonical body list. Entries
// that are not canonical bodies, and repeats of a body already seen, are
// the feed's residual noise and are dropped.
func shape(central, planets []rawBody) ([]Body, error) {
	seen := make(map[string]rawBody, len(CanonicalOrder))
	for _, group := range [][]rawBody{central, planets} {
		for _, r := range group {
			if _, ok := DisplayTable[r.EnglishName]; !ok {
				continue
			}
			if _, dup := seen[r.EnglishName]; dup {
				continue
			}
			seen[r.EnglishName] = r
		}
	}

	bodies := make([]Body, 0, len(CanonicalOrder))
	for i, name := range CanonicalOrder {
		r, ok := seen[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrIncompleteCatalog)
		}
		attrs := r.attributes()
		if i == 0 {
			attrs = stripCentral(attrs)
		}
		bodies = append(bodies, Body{
			Name:          name,
			DisplayRadius: DisplayTable[name].Radius,
			Attributes:    attrs,
		})
	}
	return bodies, nil
}

// Normalize reorders bodies into canonical order and refreshes display
// radii from the table. It is applied to snapshots read from disk.
func Normalize(bodies []Body) ([]Body, error) {
	byName := make(map[string]Body, len(bodies))
	for _, b := range bodies {
		if _, ok := DisplayTable[b.Name]; !ok {
			return nil, fmt.Errorf("%q: %w", b.Name, ErrUnknownBody)
		}
		byName[b.Name] = b
	}
	out := make([]Body, 0, len(CanonicalOrder))
	for i, name := range CanonicalOrder {
		b, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, ErrIncompleteCatalog)
		}
		b.DisplayRadius = DisplayTable[name].Radius
		if i == 0 {
			b.Attributes = stripCentral(b.Attributes)
		}
		out = append(out, b)
	}
	return out, nil
}
