// Package viz draws the orrery in a terminal.
//
// The live view is a Bubble Tea program: a braille [Canvas] shows every
// orbit and body through a tilted [Camera], and a side panel lists the
// selected body's properties with a chart of its recent x positions.
//
// # Key Bindings
//
//	Space     - Pause/Resume
//	Tab       - Next body
//	Shift+Tab - Previous body
//	R         - Reset to the initial layout
//	+/-       - Zoom
//	Q         - Quit
package viz
