// SPDX-License-Identifier: MIT

package gillespie

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
)

// Validate checks every Params field against its domain.
func (p Params) Validate() error {
	switch {
	case !(p.ProductionRate > 0) || math.IsInf(p.ProductionRate, 1):
		return fmt.Errorf("%w: production rate %g must be finite and > 0", ErrInvalidParams, p.ProductionRate)
	case !(p.DegradationRate >= 0) || math.IsInf(p.DegradationRate, 1):
		return fmt.Errorf("%w: degradation rate %g must be finite and >= 0", ErrInvalidParams, p.DegradationRate)
	case p.InitialMRNA < 0:
		return fmt.Errorf("%w: initial mRNA %d must be >= 0", ErrInvalidParams, p.InitialMRNA)
	case p.Events < 1:
		return fmt.Errorf("%w: events %d must be >= 1", ErrInvalidParams, p.Events)
	}

	return nil
}

// Simulate runs one SSA trajectory of p.Events reaction events.
// A nil src uses the global math/rand/v2 source.
func Simulate(p Params, src rand.Source) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return Trajectory{}, err
	}

	wait := distuv.Exponential{Rate: 1, Src: src}
	pick := distuv.Uniform{Min: 0, Max: 1, Src: src}

	times := make([]float64, p.Events+1)
	mrna := make([]int, p.Events+1)
	mrna[0] = p.InitialMRNA

	for i := 1; i <= p.Events; i++ {
		m := mrna[i-1]
		a0 := p.ProductionRate + p.DegradationRate*float64(m)

		times[i] = times[i-1] + wait.Rand()/a0
		if pick.Rand() < p.ProductionRate/a0 {
			mrna[i] = m + 1
		} else {
			mrna[i] = m - 1
		}
	}

	return Trajectory{Times: times, MRNA: mrna}, nil
}

// Ensemble runs sims independent trajectories concurrently. Trajectory i is
// driven by rand.NewPCG(seed, i), so the result depends only on (p, sims, seed).
// Cancelling ctx stops scheduling new trajectories and returns ctx.Err().
func Ensemble(ctx context.Context, p Params, sims int, seed uint64, opts ...Option) ([]Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if sims < 1 {
		return nil, fmt.Errorf("%w: sims=%d", ErrNoSimulations, sims)
	}
	o := gatherOptions(opts...)

	out := make([]Trajectory, sims)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < sims; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tr, err := Simulate(p, rand.NewPCG(seed, uint64(i)))
			if err != nil {
				return err
			}
			out[i] = tr

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the loop may stop scheduling without any goroutine observing the cancellation
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
