// SPDX-License-Identifier: MIT

// Package special provides the special functions the stochastic models need
// in log-space: the log-gamma function and the log binomial coefficient.
//
// 🚀 Why log-space?
//
//	Binomial coefficients C(N, n) overflow float64 long before N reaches the
//	sample sizes used in coin-flip inference (N up to 10^6). Working with
//	lnΓ keeps every intermediate value finite:
//
//	  ln C(N, n) = lnΓ(N+1) − lnΓ(n+1) − lnΓ(N−n+1)
//
// ✨ Key features:
//   - LnGamma: Lanczos rational approximation (g = 607/128, 15 terms),
//     double-precision accurate for every z ≥ 0.
//   - LnBinomial: log binomial coefficient built on LnGamma.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stochlab/special"
//
//	lc := special.LnBinomial(100, 50) // ≈ 66.78
//
// Performance:
//
//   - Time:   O(len(lanczosCoefficients)) per call
//   - Memory: O(1)
package special
