package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Ensemble runs independent worlds, one per seed, concurrently. Each world
// is still updated by a single goroutine.
type Ensemble struct {
	world     WorldConfig
	cfg       Config
	numRuns   int
	seedStart int64
	metrics   func() []Metric
}

// NewEnsemble prepares numRuns worlds seeded seedStart, seedStart+1, ...
// metrics, if non-nil, builds a fresh metric set per run.
func NewEnsemble(world WorldConfig, cfg Config, numRuns int, seedStart int64, metrics func() []Metric) *Ensemble {
	return &Ensemble{world: world, cfg: cfg, numRuns: numRuns, seedStart: seedStart, metrics: metrics}
}

func (e *Ensemble) Run(ctx context.Context, start time.Time, ticks int) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(e.seedStart + int64(idx)))
			w, err := NewWorld(e.world, start, rng)
			if err != nil {
				errs[idx] = err
				return
			}
			s, err := New(w, e.cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.RunHeadless(ctx, start, ticks)
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
