package server

import (
	"context"

	"github.com/san-kum/orrery/internal/present"
	"github.com/san-kum/orrery/internal/sim"
)

// Animate drives the simulator at fps and publishes every frame to hub.
// It is the only goroutine that touches the simulator.
func Animate(ctx context.Context, s *sim.Simulator, fps int, hub *Hub, offset present.Vec3) error {
	first := s.Snapshot()
	hub.Publish(present.NewFrame(first.Frame, first.Bodies, first.Positions, offset))

	return s.Animate(ctx, fps, func(st *sim.State) {
		hub.Publish(present.NewFrame(st.Frame, st.Bodies, st.Positions, offset))
	})
}
