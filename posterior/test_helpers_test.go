// SPDX-License-Identifier: MIT
// Package posterior_test contains shared fixtures.

package posterior_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochlab/posterior"
)

// mustLinspace builds a grid or fails the test.
func mustLinspace(t testing.TB, lo, hi float64, n int) posterior.BiasGrid {
	t.Helper()

	g, err := posterior.Linspace(lo, hi, n)
	require.NoError(t, err)

	return g
}

// requireUnitCurve asserts len(c) == n and every value finite in [0,1] with a peak of 1.
func requireUnitCurve(t *testing.T, c posterior.Curve, n int) {
	t.Helper()

	require.Len(t, c, n)
	for i, v := range c {
		require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "c[%d]=%g not finite", i, v)
		require.GreaterOrEqualf(t, v, 0.0, "c[%d]", i)
		require.LessOrEqualf(t, v, 1.0, "c[%d]", i)
	}
	require.Equal(t, 1.0, c.Max(), "rescaled peak must be exactly 1")
}

// peakBias returns the grid value at the curve maximum.
func peakBias(g posterior.BiasGrid, c posterior.Curve) float64 {
	return g.At(c.ArgMax())
}
