// SPDX-License-Identifier: MIT

// Package stochlab is a small laboratory of probabilistic models: Bayesian
// inference of a coin's bias and two stochastic simulations.
//
// 🚀 What is inside?
//
//	special/    — log-gamma (Lanczos) and log-binomial coefficients
//	posterior/  — grid posterior over a coin's bias in log space
//	coin/       — reproducible runs of coin flips and their prefixes
//	gillespie/  — SSA for constitutive mRNA production and degradation
//	randomwalk/ — 2D unit-step random walks and mean squared displacement
//	cmd/stochlab — command-line front end for all of the above
//
// ✨ Design:
//
//   - Numerically stable: every likelihood is evaluated in log space, so
//     a million flips never overflow or underflow.
//   - Reproducible: randomness always comes from an explicit rand.Source.
//   - Libraries never log; errors are package sentinels matched with errors.Is.
//
// Quick example:
//
//	run, _ := coin.Flip(0.7, coin.DefaultFlips, rand.NewPCG(1, 2))
//	obs, _ := run.Observe(1000)
//	priorCurve, postCurve, _ := posterior.Estimate(posterior.DefaultGrid(), obs, posterior.DefaultPrior())
//	_ = priorCurve
//	fmt.Printf("peak at %.3f\n", posterior.DefaultGrid().At(postCurve.ArgMax()))
package stochlab
