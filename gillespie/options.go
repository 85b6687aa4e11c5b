// SPDX-License-Identifier: MIT

package gillespie

import "runtime"

const panicWorkersInvalid = "gillespie: WithWorkers: workers must be >= 1"

// Option configures Ensemble.
type Option func(*Options)

// Options stores the effective Ensemble configuration.
type Options struct {
	workers int // default runtime.GOMAXPROCS(0)
}

// WithWorkers bounds the number of trajectories simulated concurrently.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
