// Package orbit provides the orbit geometry and the per-frame position
// update used to animate bodies around the central body.
//
// Every orbit is an origin-centred ellipse with its major axis along x and
// a minor radius of 0.9 times the major radius. Bodies move in the x/z
// plane only:
//
//   - [ZFromX]: z on the ellipse boundary for a given x and branch
//   - [MajorRadii]: packs orbits outward from the bodies' display radii
//   - [InitialPositions]: random starting points on each ellipse
//   - [RelativeStep]: position-dependent step length
//   - [Advance]: one frame of the quadrant state machine for every body
//
// # Traversal
//
// A body moves with increasing x while z > 0, turns around at x = +a,
// moves with decreasing x while z < 0 and turns around again at x = -a.
// No angle is stored; the quadrant of (x, z) alone selects the transition.
//
//	pos := orbit.InitialPositions(radii, rng)
//	for {
//	    pos, _ = orbit.Advance(pos, radii, orbit.DefaultSpeeds)
//	}
package orbit
