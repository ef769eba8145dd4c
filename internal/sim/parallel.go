package sim

import (
	"context"
	"math/rand"
	"sync"

	"github.com/san-kum/orrery/internal/catalog"
)

// Ensemble runs the same catalog from several seeds to compare how the
// random starting layout affects the run metrics.
type Ensemble struct {
	bodies    []catalog.Body
	speeds    []float64
	metrics   func() []Metric
	numRuns   int
	seedStart int64
}

func NewEnsemble(bodies []catalog.Body, speeds []float64, metrics func() []Metric, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{bodies: bodies, speeds: speeds, metrics: metrics, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(e.seedStart + int64(idx)))
			state, err := Layout(e.bodies, e.speeds, rng)
			if err != nil {
				errs[idx] = err
				return
			}

			s := New(state)
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}
			results[idx], errs[idx] = s.Run(ctx, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
