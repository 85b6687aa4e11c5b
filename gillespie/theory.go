// SPDX-License-Identifier: MIT

package gillespie

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Theory integrates dm/dt = r − γ·m with forward Euler from m(0) = m0.
// It returns steps samples spaced dt apart, starting at t = 0.
func Theory(p Params, dt float64, steps int) (times, mrna []float64, err error) {
	if err = p.Validate(); err != nil {
		return nil, nil, err
	}
	if !(dt > 0) || math.IsInf(dt, 1) {
		return nil, nil, fmt.Errorf("%w: dt=%g", ErrInvalidParams, dt)
	}
	if steps < 1 {
		return nil, nil, fmt.Errorf("%w: steps=%d", ErrInvalidParams, steps)
	}

	times = make([]float64, steps)
	mrna = make([]float64, steps)
	mrna[0] = float64(p.InitialMRNA)
	for i := 1; i < steps; i++ {
		prev := mrna[i-1]
		mrna[i] = prev + p.ProductionRate*dt - p.DegradationRate*prev*dt
		times[i] = times[i-1] + dt
	}

	return times, mrna, nil
}

// SteadyState returns the deterministic fixed point r/γ (+Inf when γ = 0).
func SteadyState(p Params) float64 {
	if p.DegradationRate == 0 {
		return math.Inf(1)
	}

	return p.ProductionRate / p.DegradationRate
}

// Summarize computes the mean and sample variance of the final molecule counts
// and the mean trajectory duration.
func Summarize(trajs []Trajectory) (Summary, error) {
	if len(trajs) == 0 {
		return Summary{}, ErrNoSimulations
	}

	finals := make([]float64, len(trajs))
	durations := make([]float64, len(trajs))
	for i, tr := range trajs {
		finals[i] = float64(tr.Final())
		durations[i] = tr.Duration()
	}

	s := Summary{
		Simulations:  len(trajs),
		MeanFinal:    stat.Mean(finals, nil),
		MeanDuration: stat.Mean(durations, nil),
	}
	if len(trajs) > 1 {
		s.VarianceFinal = stat.Variance(finals, nil)
	}

	return s, nil
}

// MeanAt returns the ensemble mean molecule count at each requested time.
func MeanAt(trajs []Trajectory, times []float64) ([]float64, error) {
	if len(trajs) == 0 {
		return nil, ErrNoSimulations
	}

	out := make([]float64, len(times))
	vals := make([]float64, len(trajs))
	for j, t := range times {
		for i, tr := range trajs {
			vals[i] = float64(tr.At(t))
		}
		out[j] = stat.Mean(vals, nil)
	}

	return out, nil
}
