// SPDX-License-Identifier: MIT

package posterior

import (
	"math"

	"github.com/katalvlaran/stochlab/special"
)

// LogLikelihood returns the Binomial log-likelihood of heads successes in
// flips trials with success probability p:
//
//	lnΓ(N+1) − lnΓ(n+1) − lnΓ(N−n+1) + n·ln p + (N−n)·ln(1−p)
//
// The result is NaN when the counts are invalid or p is outside (0,1).
// With flips == 0 the likelihood is identically 1 and 0 is returned exactly.
func LogLikelihood(heads, flips int, p float64) float64 {
	if heads < 0 || heads > flips || !inOpenUnit(p) {
		return math.NaN()
	}

	return binomialKernel(special.LnBinomial(flips, heads), heads, flips, p)
}

// binomialKernel adds the p-dependent part of the Binomial log-likelihood to
// a precomputed log coefficient. Estimate hoists lnC out of the grid loop.
func binomialKernel(lnC float64, heads, flips int, p float64) float64 {
	if flips == 0 {
		return 0
	}

	return lnC + float64(heads)*math.Log(p) + float64(flips-heads)*math.Log1p(-p)
}

// LogPrior returns the Gaussian log-prior of bias p under prior, using the
// requested formulation (see PriorForm). It does not validate prior.
func LogPrior(p float64, prior Prior, form PriorForm) float64 {
	variance := prior.Sigma * prior.Sigma
	d := p - prior.Mu

	if form == GaussianLegacy {
		return -0.5*math.Log(math.Sqrt(2*math.Pi*variance)) - d*d/variance
	}

	// −0.5·ln(2πσ²) = −0.5·ln(2π) − ln σ
	return -special.HalfLn2Pi - math.Log(prior.Sigma) - d*d/(2*variance)
}
