package config

import "sort"

var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"brisk": func(c *Config) {
		scaleSpeeds(c, 2)
	},
	"lazy": func(c *Config) {
		c.Sim.FPS = 30
		scaleSpeeds(c, 0.5)
	},
	"offline": func(c *Config) {
		c.Catalog.APIURL = ""
		c.Catalog.File = "catalog.yaml"
	},
}

func scaleSpeeds(c *Config, k float64) {
	for i := range c.Sim.Speeds {
		c.Sim.Speeds[i] *= k
	}
}

// GetPreset returns a full config with the named preset applied to the
// defaults, or nil if there is no such preset.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
