// SPDX-License-Identifier: MIT

// Package coin simulates a run of coin flips and turns prefixes of that run
// into posterior.Observation values.
//
// The interactive coin-flipper always draws one million flips up front and
// then lets the viewer reveal the first ⌊10^x⌋ of them for x ∈ [0, 6]. This
// package keeps that shape: Flip draws the whole run once, Observe answers
// any prefix in O(1) from cumulative head counts, and DisplayCount maps the
// log-scale viewer position to a prefix length.
//
// Randomness comes from an explicit math/rand/v2 Source so runs are
// reproducible; pass a seeded rand.NewPCG in tests.
package coin
