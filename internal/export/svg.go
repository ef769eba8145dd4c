package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/present"
	"github.com/san-kum/orrery/internal/sim"
)

const (
	background   = "#0a0a0a"
	orbitStroke  = "#333333"
	defaultColor = "#00ff00"
	margin       = 0.9
)

func header(sb *strings.Builder, size int) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, size, size, size, size, background))
}

func colorOf(name string) string {
	if d, ok := catalog.Lookup(name); ok && d.Color != "" {
		return d.Color
	}
	return defaultColor
}

// OrbitsSVG draws a top-down view of the state: every orbit ellipse, each
// body at its current position and the central body at offset.
func OrbitsSVG(state *sim.State, offset present.Vec3, size int) string {
	if state == nil || len(state.Bodies) == 0 || size <= 0 {
		return ""
	}

	extent := 1.0
	for _, a := range state.MajorRadii {
		extent = math.Max(extent, a)
	}
	if len(state.MajorRadii) == 0 {
		extent = math.Max(extent, state.Bodies[0].DisplayRadius)
	}
	scale := float64(size) / 2 * margin / extent
	c := float64(size) / 2

	var sb strings.Builder
	header(&sb, size)

	sb.WriteString(fmt.Sprintf(`<g fill="none" stroke="%s" stroke-width="1">
`, orbitStroke))
	for _, a := range state.MajorRadii {
		sb.WriteString(fmt.Sprintf(`<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f"/>
`, c, c, a*scale, orbit.MinorRadius(a)*scale))
	}
	sb.WriteString("</g>\n")

	central := state.Bodies[0]
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"><title>%s</title></circle>
`, c+offset.X*scale, c-offset.Z*scale, math.Max(central.DisplayRadius*scale, 2), colorOf(central.Name), central.Name))

	for i, body := range state.Orbiting() {
		if i >= len(state.Positions) {
			break
		}
		p := state.Positions[i]
		if math.IsNaN(p.X) || math.IsNaN(p.Z) {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"><title>%s</title></circle>
`, c+p.X*scale, c-p.Z*scale, math.Max(body.DisplayRadius*scale, 2), colorOf(body.Name), body.Name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TracksSVG draws one polyline per recorded body, in name order.
func TracksSVG(tracks map[string][]orbit.Position, size int) string {
	if len(tracks) == 0 || size <= 0 {
		return ""
	}

	names := make([]string, 0, len(tracks))
	extent := 1.0
	for name, track := range tracks {
		names = append(names, name)
		for _, p := range track {
			if math.IsNaN(p.X) || math.IsNaN(p.Z) {
				continue
			}
			extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Z)))
		}
	}
	sort.Strings(names)

	scale := float64(size) / 2 * margin / extent
	c := float64(size) / 2

	var sb strings.Builder
	header(&sb, size)

	for _, name := range names {
		track := tracks[name]
		if len(track) < 2 {
			continue
		}

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, colorOf(name)))
		first := true
		for _, p := range track {
			if math.IsNaN(p.X) || math.IsNaN(p.Z) {
				continue
			}
			x := c + p.X*scale
			y := c - p.Z*scale
			if first {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
				first = false
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString(fmt.Sprintf(`"><title>%s</title></path>
`, name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
