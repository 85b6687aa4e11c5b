// SPDX-License-Identifier: MIT

package posterior

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/stochlab/special"
)

// Estimate computes the prior and posterior curves of a coin bias over grid.
//
// Algorithm:
//  1. For each grid point p: logPost(p) = LogLikelihood(n, N, p) + LogPrior(p).
//  2. Normalize with log-sum-exp: logZ = max + ln Σ exp(logPost − max).
//  3. Rescale posterior and prior each by their own maximum, into [0,1].
//
// The returned curves are a display transform: they share a peak height of
// one so they can be overlaid, and neither integrates to one. Use Infer for
// the normalized probabilities.
//
// Errors (all wrap ErrInvalidInput):
//   - ErrEmptyGrid, ErrBiasOutOfRange, ErrGridNotIncreasing — grid.
//   - ErrBadObservation — negative counts or heads > flips.
//   - ErrBadPrior       — sigma <= 0, non-finite parameters, or a mean so
//     far from the grid that the log-prior is −Inf at every point.
//
// Complexity: O(len(grid)) time and memory.
func Estimate(grid BiasGrid, obs Observation, prior Prior, opts ...Option) (PriorCurve, PosteriorCurve, error) {
	if err := validateInputs(grid, obs, prior); err != nil {
		return nil, nil, posteriorErrorf(opEstimate, err)
	}
	r, err := infer(grid, obs, prior, gatherOptions(opts...))
	if err != nil {
		return nil, nil, posteriorErrorf(opEstimate, err)
	}

	return r.Prior, r.Posterior, nil
}

// Infer runs the same computation as Estimate and returns the full Result.
func Infer(grid BiasGrid, obs Observation, prior Prior, opts ...Option) (*Result, error) {
	if err := validateInputs(grid, obs, prior); err != nil {
		return nil, posteriorErrorf(opInfer, err)
	}

	r, err := infer(grid, obs, prior, gatherOptions(opts...))
	if err != nil {
		return nil, posteriorErrorf(opInfer, err)
	}

	return r, nil
}

// infer assumes validated inputs. It still rejects a prior whose log-density
// is not finite anywhere on the grid, before any curve is built.
func infer(grid BiasGrid, obs Observation, prior Prior, o Options) (*Result, error) {
	n := grid.Len()
	logPri := make([]float64, n)
	logPost := make([]float64, n)

	// the binomial coefficient does not depend on p
	lnC := special.LnBinomial(obs.Flips, obs.Heads)
	for i, p := range grid.p {
		logPri[i] = o.logPrior(p, prior)
	}
	if err := validateLogPrior(logPri, prior); err != nil {
		return nil, err
	}
	for i, p := range grid.p {
		logPost[i] = binomialKernel(lnC, obs.Heads, obs.Flips, p) + logPri[i]
	}

	logZ := floats.LogSumExp(logPost)
	probs := make([]float64, n)
	for i, lp := range logPost {
		probs[i] = math.Exp(lp - logZ)
	}
	// keep Σ probs == 1 up to one rounding
	floats.Scale(1/floats.Sum(probs), probs)

	return &Result{
		Grid:          grid,
		Prior:         rescaleLog(logPri),
		Posterior:     rescaleLog(logPost),
		Probabilities: probs,
		LogNormalizer: logZ,
		MAP:           grid.p[floats.MaxIdx(probs)],
		Mean:          floats.Dot(grid.p, probs),
	}, nil
}

// rescaleLog returns exp(v − max v) for every v, so the peak is exactly 1.
//
// For the posterior this equals P(p)/max P: with P = exp(logPost − logZ) the
// normalizer cancels in the ratio. Working from the log values keeps the
// prior curve finite even when exp(logPrior) would underflow everywhere.
func rescaleLog(logs []float64) Curve {
	peak := floats.Max(logs)
	out := make(Curve, len(logs))
	for i, v := range logs {
		out[i] = math.Exp(v - peak)
	}

	return out
}
