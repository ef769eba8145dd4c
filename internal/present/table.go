package present

import (
	"html"
	"strconv"
	"strings"

	"github.com/san-kum/orrery/internal/catalog"
)

const degree = "°"

// Row is one label/value/unit line of a body's property table.
type Row struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Value        string `json:"value"`
	Exponent     string `json:"exponent,omitempty"`
	Unit         string `json:"unit,omitempty"`
	UnitExponent string `json:"unitExponent,omitempty"`
}

// Text renders the row value as plain text, e.g. "5.97 ×10^24 kg".
func (r Row) Text() string {
	var b strings.Builder
	b.WriteString(r.Value)
	if r.Exponent != "" {
		b.WriteString(" ×10^" + r.Exponent)
	}
	if r.Unit != "" {
		if r.Unit != degree {
			b.WriteByte(' ')
		}
		b.WriteString(r.Unit)
		if r.UnitExponent != "" {
			b.WriteString("^" + r.UnitExponent)
		}
	}
	return b.String()
}

// HTML renders the row value with superscript exponents. Values are escaped.
func (r Row) HTML() string {
	var b strings.Builder
	b.WriteString(html.EscapeString(r.Value))
	if r.Exponent != "" {
		b.WriteString(" &times; 10<sup>" + html.EscapeString(r.Exponent) + "</sup>")
	}
	if r.Unit != "" {
		if r.Unit == degree {
			b.WriteString("&deg;")
		} else {
			b.WriteString(" " + html.EscapeString(r.Unit))
		}
		if r.UnitExponent != "" {
			b.WriteString("<sup>" + html.EscapeString(r.UnitExponent) + "</sup>")
		}
	}
	return b.String()
}

type field struct {
	key, label, unit, unitExp string
	num                       func(catalog.Attributes) float64
	qty                       func(catalog.Attributes) *catalog.Quantity
	str                       func(catalog.Attributes) string
}

// fields lists the displayable attributes in table order.
var fields = []field{
	{key: "moons", label: "Moons", num: func(a catalog.Attributes) float64 { return float64(a.Moons) }},
	{key: "semimajorAxis", label: "Semi-major axis", unit: "km", num: func(a catalog.Attributes) float64 { return a.SemimajorAxis }},
	{key: "perihelion", label: "Perihelion", unit: "km", num: func(a catalog.Attributes) float64 { return a.Perihelion }},
	{key: "aphelion", label: "Aphelion", unit: "km", num: func(a catalog.Attributes) float64 { return a.Aphelion }},
	{key: "eccentricity", label: "Eccentricity", num: func(a catalog.Attributes) float64 { return a.Eccentricity }},
	{key: "inclination", label: "Inclination", unit: degree, num: func(a catalog.Attributes) float64 { return a.Inclination }},
	{key: "mass", label: "Mass", unit: "kg", qty: func(a catalog.Attributes) *catalog.Quantity { return a.Mass }},
	{key: "vol", label: "Volume", unit: "km", unitExp: "3", qty: func(a catalog.Attributes) *catalog.Quantity { return a.Volume }},
	{key: "density", label: "Density", unit: "g/cm", unitExp: "3", num: func(a catalog.Attributes) float64 { return a.Density }},
	{key: "gravity", label: "Gravity", unit: "m/s", unitExp: "2", num: func(a catalog.Attributes) float64 { return a.Gravity }},
	{key: "escape", label: "Escape velocity", unit: "m/s", num: func(a catalog.Attributes) float64 { return a.Escape }},
	{key: "meanRadius", label: "Mean radius", unit: "km", num: func(a catalog.Attributes) float64 { return a.MeanRadius }},
	{key: "equaRadius", label: "Equatorial radius", unit: "km", num: func(a catalog.Attributes) float64 { return a.EquaRadius }},
	{key: "polarRadius", label: "Polar radius", unit: "km", num: func(a catalog.Attributes) float64 { return a.PolarRadius }},
	{key: "flattening", label: "Flattening", num: func(a catalog.Attributes) float64 { return a.Flattening }},
	{key: "sideralOrbit", label: "Sidereal orbit", unit: "d", num: func(a catalog.Attributes) float64 { return a.SideralOrbit }},
	{key: "sideralRotation", label: "Sidereal rotation", unit: "h", num: func(a catalog.Attributes) float64 { return a.SideralRotation }},
	{key: "axialTilt", label: "Axial tilt", unit: degree, num: func(a catalog.Attributes) float64 { return a.AxialTilt }},
	{key: "discoveredBy", label: "Discoverer", str: func(a catalog.Attributes) string { return a.DiscoveredBy }},
	{key: "discoveryDate", label: "Discovered", str: func(a catalog.Attributes) string { return a.DiscoveryDate }},
}

// PropertyTable builds the rows shown for body. Attributes the body does
// not have are left out.
func PropertyTable(body catalog.Body) []Row {
	rows := make([]Row, 0, len(fields)+1)
	rows = append(rows, Row{Key: "englishName", Label: "Name", Value: body.Name})

	for _, f := range fields {
		row := Row{Key: f.key, Label: f.label, Unit: f.unit, UnitExponent: f.unitExp}
		switch {
		case f.qty != nil:
			q := f.qty(body.Attributes)
			if q == nil {
				continue
			}
			row.Value = formatFloat(q.Value)
			row.Exponent = strconv.Itoa(q.Exponent)
		case f.str != nil:
			s := f.str(body.Attributes)
			if s == "" {
				continue
			}
			row.Value = s
		default:
			v := f.num(body.Attributes)
			if v == 0 {
				continue
			}
			row.Value = formatFloat(v)
		}
		rows = append(rows, row)
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
