package catalog

// Display is the fixed presentation data of a canonical body.
type Display struct {
	Radius float64
	Label  string
	Color  string
}

// CanonicalOrder is the order bodies are laid out in, central body first.
var CanonicalOrder = []string{
	"Sun", "Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune",
}

// DisplayTable maps a body name to its size class, button label and colour.
var DisplayTable = map[string]Display{
	"Sun":     {Radius: 160, Label: "sun", Color: "#fdb813"},
	"Mercury": {Radius: 4, Label: "MeRcury", Color: "#b5b5b5"},
	"Venus":   {Radius: 7, Label: "Venus", Color: "#e8cda2"},
	"Earth":   {Radius: 8, Label: "eARtH", Color: "#2e86ab"},
	"Mars":    {Radius: 5, Label: "MARs", Color: "#c1440e"},
	"Jupiter": {Radius: 32, Label: "jupiteR", Color: "#d8ca9d"},
	"Saturn":  {Radius: 28, Label: "sAtuRn", Color: "#e3c16f"},
	"Uranus":  {Radius: 20, Label: "uRAnus", Color: "#9fc4d8"},
	"Neptune": {Radius: 19, Label: "neptune", Color: "#4b70dd"},
}

// Lookup returns the display entry for name.
func Lookup(name string) (Display, bool) {
	d, ok := DisplayTable[name]
	return d, ok
}
