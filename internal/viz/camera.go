package viz

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Camera is an orthographic view of the orbital plane tilted about the
// x axis. Tilt 0 looks edge-on, pi/2 straight down.
type Camera struct {
	Tilt   float64
	Zoom   float64
	Extent float64
}

const (
	defaultTilt = math.Pi / 4
	minZoom     = 0.2
	maxZoom     = 8
)

// NewCamera frames a scene whose furthest point is extent from the origin.
func NewCamera(extent float64) *Camera {
	if extent <= 0 {
		extent = 1
	}
	return &Camera{Tilt: defaultTilt, Zoom: 1, Extent: extent}
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(maxZoom, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(minZoom, c.Zoom/1.2) }

// Scale is the number of sub-pixels per world unit on a sw x sh surface.
func (c *Camera) Scale(sw, sh int) float64 {
	half := math.Min(float64(sw)/2, float64(sh)/2)
	return half / c.Extent * c.Zoom
}

// Project maps a world point to sub-pixel coordinates. Terminal cells are
// about twice as tall as wide, which the 2x4 braille grid already cancels.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, bool) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
		return 0, 0, false
	}
	cos, sin := math.Cos(c.Tilt), math.Sin(c.Tilt)
	screenY := p.Y*cos - p.Z*sin

	k := c.Scale(sw, sh)
	sx := int(math.Round(p.X*k)) + sw/2
	sy := int(math.Round(screenY*k)) + sh/2
	return sx, sy, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}
