// SPDX-License-Identifier: MIT

// Package gillespie runs the Gillespie stochastic simulation algorithm (SSA)
// for a constitutive promoter: mRNA is produced at a constant rate r and each
// molecule degrades independently at rate γ.
//
// 🚀 The algorithm, one event at a time:
//
//	a_prod = r            propensity of production
//	a_deg  = γ·m          propensity of degradation with m molecules
//	a0     = a_prod + a_deg
//	Δt     ~ Exp(a0)      waiting time to the next event
//	u      ~ U[0,1)       u < a_prod/a0 ⇒ m+1, else m−1
//
// ✨ Key features:
//   - Simulate: one trajectory from an explicit rand.Source.
//   - Ensemble: many trajectories in parallel (errgroup), deterministic for a
//     given seed regardless of worker count or scheduling.
//   - Theory: forward-Euler solution of dm/dt = r − γm for comparison.
//   - Summarize / MeanAt: ensemble statistics via gonum/stat.
//
// Note: a trajectory of k events changes m by ±1 each step, so the final count
// always has the parity of m0 + k. Sample at fixed times (MeanAt) rather than
// at a fixed event count when comparing against the deterministic theory.
package gillespie
