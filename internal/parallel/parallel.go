// SPDX-License-Identifier: MIT

// Package parallel runs independent index-addressed work items on a bounded
// pool of goroutines. Results are aggregated by index, never by shared
// accumulation, and the first error wins.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum number of items before work is spread out.
}

// DefaultConfig uses every available processor. Work items here are whole
// trials, so even two items are worth spreading.
func DefaultConfig() Config {
	n := runtime.GOMAXPROCS(0)
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 2,
	}
}

// FromJobs maps a user-facing job count to a Config: 0 means all processors,
// 1 means sequential, anything else bounds the pool at jobs workers.
func FromJobs(jobs int) Config {
	cfg := DefaultConfig()
	if jobs > 0 {
		cfg.NumWorkers = jobs
		cfg.Enabled = jobs > 1
	}

	return cfg
}

// For executes f(i) for i in [0, n). It runs sequentially when parallelism
// is disabled or n is below MinChunkSize; otherwise at most NumWorkers calls
// run at once. The first non-nil error is returned after all started calls
// finish.
func For(n int, f func(i int) error, cfg Config) error {
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.NumWorkers < 2 {
		for i := 0; i < n; i++ {
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for i := 0; i < n; i++ {
		g.Go(func() error { return f(i) })
	}

	return g.Wait()
}

// Map evaluates f for every index in [0, n) under For and returns the results
// in index order.
func Map[T any](n int, f func(i int) (T, error), cfg Config) ([]T, error) {
	out := make([]T, n)
	err := For(n, func(i int) error {
		v, err := f(i)
		if err != nil {
			return err
		}
		out[i] = v
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}

	return out, nil
}
