package singularity

import (
	"runtime"

	"github.com/cwbudde/algo-ridge/grid"
)

type config struct {
	workers   int
	progress  func(scale int)
	scalePass func(scale int, index, orientation grid.Grid)
}

func defaultConfig() config {
	return config{workers: 1}
}

// Option configures a [Respond] call.
type Option func(*config)

// WithParallel runs the per-scale filter passes on one goroutine per scale,
// bounded by GOMAXPROCS workers. The cross-scale reduction still folds in
// ascending scale order, so the outputs are identical to a sequential run.
func WithParallel() Option {
	return func(cfg *config) {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
}

// WithWorkers bounds parallel scale processing to n workers.
// Values below 1 keep the run sequential.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.workers = n
		}
	}
}

// WithProgress registers a callback invoked as each scale starts processing.
// Under [WithParallel] the callback may be invoked concurrently from worker
// goroutines.
func WithProgress(fn func(scale int)) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

// WithScalePass registers an observer for each scale's full-resolution
// contribution before it enters the cross-scale reduction. The observer is
// always invoked in ascending scale order, regardless of parallelism. The
// grids are owned by the pipeline; copy them to retain them.
func WithScalePass(fn func(scale int, index, orientation grid.Grid)) Option {
	return func(cfg *config) {
		cfg.scalePass = fn
	}
}
