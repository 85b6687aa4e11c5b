// SPDX-License-Identifier: MIT

// Package posterior estimates the bias of a coin from observed flips using
// Bayes' rule evaluated on a discrete grid of candidate biases.
//
// 🚀 What does it compute?
//
//	Given n heads out of N flips, a grid of candidate biases p ∈ (0,1) and a
//	Gaussian prior N(μ, σ²) over p, the posterior at every grid point is
//
//	  log P(p | n, N) = log L(n | N, p) + log π(p) − log Z
//
//	where L is the Binomial likelihood and Z the normalizer over the grid.
//	Everything is evaluated in log-space: the binomial coefficient through
//	lnΓ (special.LnGamma) and Z through log-sum-exp, so N up to 10^6 never
//	overflows or underflows.
//
// ✨ Key features:
//   - Estimate: the (PriorCurve, PosteriorCurve) pair, each rescaled by its
//     own maximum into [0,1] for overlay display.
//   - Infer: the full Result including normalized probabilities, MAP and mean.
//   - FWHM / CredibleInterval: width summaries of a curve or posterior.
//   - Options: prior formulation (WithPriorForm) and flat prior (WithFlatPrior).
//
// ⚠️ The curves are a display transform, not densities: dividing by the
// maximum discards the normalization. Use Result.Probabilities for anything
// that must sum to one.
//
// ⚙️ Usage:
//
//	grid := posterior.DefaultGrid() // 500 points over [0.001, 0.999]
//	obs := posterior.Observation{Heads: 50, Flips: 100}
//	pri := posterior.Prior{Mu: 0.5, Sigma: 0.1}
//
//	priorCurve, postCurve, err := posterior.Estimate(grid, obs, pri)
//
// Errors:
//
//	Every rejection wraps ErrInvalidInput; match with errors.Is.
//
// Complexity:
//
//	Time O(len(grid)), Memory O(len(grid)). No shared state; safe for
//	concurrent use.
package posterior
