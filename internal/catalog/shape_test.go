package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func loadRaw(t *testing.T, name string) []rawBody {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	var resp rawResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decoding %s: %v", name, err)
	}
	return resp.Bodies
}

func TestShapeCanonicalOrder(t *testing.T) {
	bodies, err := shape(loadRaw(t, "central.json"), loadRaw(t, "planets.json"))
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}

	if len(bodies) != len(CanonicalOrder) {
		t.Fatalf("expected %d bodies, got %d", len(CanonicalOrder), len(bodies))
	}
	for i, b := range bodies {
		if b.Name != CanonicalOrder[i] {
			t.Errorf("body %d = %s, want %s", i, b.Name, CanonicalOrder[i])
		}
		if b.DisplayRadius != DisplayTable[b.Name].Radius {
			t.Errorf("%s display radius = %v, want %v", b.Name, b.DisplayRadius, DisplayTable[b.Name].Radius)
		}
	}
}

func TestShapeDropsNoise(t *testing.T) {
	bodies, err := shape(loadRaw(t, "central.json"), loadRaw(t, "planets.json"))
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}

	if _, ok := Find(bodies, "Moon"); ok {
		t.Error("non-canonical body kept")
	}

	mars, _ := Find(bodies, "Mars")
	if mars.Attributes.SemimajorAxis != 227939200 {
		t.Errorf("duplicate Mars replaced the first record: semimajor axis %v", mars.Attributes.SemimajorAxis)
	}
}

func TestShapeAttributes(t *testing.T) {
	bodies, err := shape(loadRaw(t, "central.json"), loadRaw(t, "planets.json"))
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}

	tests := []struct {
		name   string
		moons  int
		hasVol bool
	}{
		{"Sun", 0, false},
		{"Mercury", 0, true},
		{"Earth", 1, true},
		{"Mars", 2, true},
		{"Uranus", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := Find(bodies, tt.name)
			if !ok {
				t.Fatalf("%s missing", tt.name)
			}
			if b.Attributes.Moons != tt.moons {
				t.Errorf("moons = %d, want %d", b.Attributes.Moons, tt.moons)
			}
			if (b.Attributes.Volume != nil) != tt.hasVol {
				t.Errorf("volume present = %v, want %v", b.Attributes.Volume != nil, tt.hasVol)
			}
		})
	}

	earth, _ := Find(bodies, "Earth")
	if earth.Attributes.Mass == nil || earth.Attributes.Mass.Exponent != 24 {
		t.Errorf("earth mass = %+v, want exponent 24", earth.Attributes.Mass)
	}
	if earth.Attributes.Inclination != 0 {
		t.Errorf("zero inclination should stay absent, got %v", earth.Attributes.Inclination)
	}
}

func TestShapeIncomplete(t *testing.T) {
	planets := loadRaw(t, "planets.json")
	trimmed := make([]rawBody, 0, len(planets))
	for _, p := range planets {
		if p.EnglishName != "Neptune" {
			trimmed = append(trimmed, p)
		}
	}

	_, err := shape(loadRaw(t, "central.json"), trimmed)
	if !errors.Is(err, ErrIncompleteCatalog) {
		t.Errorf("expected ErrIncompleteCatalog, got %v", err)
	}

	_, err = shape(nil, planets)
	if !errors.Is(err, ErrIncompleteCatalog) {
		t.Errorf("expected ErrIncompleteCatalog without central body, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	bodies, err := shape(loadRaw(t, "central.json"), loadRaw(t, "planets.json"))
	if err != nil {
		t.Fatalf("shape failed: %v", err)
	}

	reversed := make([]Body, len(bodies))
	for i, b := range bodies {
		b.DisplayRadius = 1
		reversed[len(bodies)-1-i] = b
	}

	out, err := Normalize(reversed)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	for i, b := range out {
		if b.Name != CanonicalOrder[i] {
			t.Errorf("body %d = %s, want %s", i, b.Name, CanonicalOrder[i])
		}
		if b.DisplayRadius == 1 {
			t.Errorf("%s display radius not refreshed", b.Name)
		}
	}

	_, err = Normalize(append(out, Body{Name: "Pluto"}))
	if !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}
}

func TestDisplayRadii(t *testing.T) {
	bodies := []Body{{Name: "Sun", DisplayRadius: 160}, {Name: "Mercury", DisplayRadius: 4}}
	radii := DisplayRadii(bodies)
	if len(radii) != 2 || radii[0] != 160 || radii[1] != 4 {
		t.Errorf("DisplayRadii = %v", radii)
	}
	if !bodies[0].Central() || bodies[1].Central() {
		t.Error("only the Sun is central")
	}
}
