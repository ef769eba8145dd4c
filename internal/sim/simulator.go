package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/orrery/internal/orbit"
)

// Simulator owns a State and is the only thing that writes to it.
// It is not safe for concurrent use; readers take a Snapshot.
type Simulator struct {
	state     *State
	initial   []orbit.Position
	metrics   []Metric
	observers []Observer
}

func New(state *State) *Simulator {
	return &Simulator{
		state:     state,
		initial:   append([]orbit.Position(nil), state.Positions...),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

// AddMetric attaches m and lets it observe the current frame as its
// baseline.
func (s *Simulator) AddMetric(m Metric) {
	s.metrics = append(s.metrics, m)
	m.Observe(s.state)
}

func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// rebaseline clears every metric and has it observe the current frame, so
// the first step is measured from frame 0.
func (s *Simulator) rebaseline() {
	for _, m := range s.metrics {
		m.Reset()
		m.Observe(s.state)
	}
}

// Frame returns the number of frames advanced since the last reset.
func (s *Simulator) Frame() int { return s.state.Frame }

// Step advances every orbiting body by one frame.
func (s *Simulator) Step() error {
	next, err := orbit.Advance(s.state.Positions, s.state.MajorRadii, s.state.Speeds)
	if err != nil {
		return err
	}
	s.state.Positions = next
	s.state.Frame++

	for _, m := range s.metrics {
		m.Observe(s.state)
	}
	for _, obs := range s.observers {
		obs.OnFrame(s.state)
	}
	return nil
}

// Snapshot returns a copy of the current state for readers.
func (s *Simulator) Snapshot() *State { return s.state.Clone() }

// Reset restores the initial positions and restarts metrics from frame 0.
func (s *Simulator) Reset() {
	s.state.Positions = append([]orbit.Position(nil), s.initial...)
	s.state.Frame = 0
	s.rebaseline()
}

// Run advances cfg.Frames frames as fast as possible.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}

	result := &Result{Metrics: make(map[string]float64)}
	if cfg.Record {
		result.Positions = make([][]orbit.Position, 0, cfg.Frames+1)
		result.Positions = append(result.Positions, append([]orbit.Position(nil), s.state.Positions...))
	}

	s.rebaseline()

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if err := s.Step(); err != nil {
			return result, err
		}
		result.Frames++

		if cfg.Record {
			result.Positions = append(result.Positions, append([]orbit.Position(nil), s.state.Positions...))
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// Animate steps once per tick at fps and hands a snapshot to fn after each
// frame. It only returns when ctx is done or a step fails.
func (s *Simulator) Animate(ctx context.Context, fps int, fn func(*State)) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.Step(); err != nil {
				return err
			}
			fn(s.Snapshot())
		}
	}
}
