// SPDX-License-Identifier: MIT

package randomwalk_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochlab/randomwalk"
)

// TestWalk_UnitSteps checks the origin and that every step has length one.
func TestWalk_UnitSteps(t *testing.T) {
	t.Parallel()

	p, err := randomwalk.Walk(1000, rand.NewPCG(3, 4))
	require.NoError(t, err)
	require.Equal(t, 1000, p.Len())
	require.Len(t, p.Y, 1000)

	assert.Equal(t, 0.0, p.X[0])
	assert.Equal(t, 0.0, p.Y[0])
	for i := 1; i < p.Len(); i++ {
		step := math.Hypot(p.X[i]-p.X[i-1], p.Y[i]-p.Y[i-1])
		require.InDelta(t, 1.0, step, 1e-9, "step %d", i)
	}
	assert.InDelta(t, 1.0, p.Displacement(1), 1e-12)
}

// TestWalk_Deterministic: same source, same path.
func TestWalk_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := randomwalk.Walk(500, rand.NewPCG(8, 8))
	require.NoError(t, err)
	b, err := randomwalk.Walk(500, rand.NewPCG(8, 8))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := randomwalk.Walk(500, rand.NewPCG(8, 9))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestWalk_Invalid rejects non-positive step counts.
func TestWalk_Invalid(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -5} {
		_, err := randomwalk.Walk(n, nil)
		assert.ErrorIs(t, err, randomwalk.ErrInvalidSteps)
	}
	one, err := randomwalk.Walk(1, nil)
	require.NoError(t, err)
	x, y := one.Last()
	assert.Equal(t, [2]float64{0, 0}, [2]float64{x, y})
}

// TestPath_Window clamps end and width.
func TestPath_Window(t *testing.T) {
	t.Parallel()

	p := randomwalk.Path{X: []float64{0, 1, 2, 3, 4}, Y: []float64{0, -1, -2, -3, -4}}

	w := p.Window(3, 2)
	assert.Equal(t, []float64{2, 3}, w.X)
	assert.Equal(t, []float64{-2, -3}, w.Y)

	assert.Equal(t, []float64{0, 1, 2, 3, 4}, p.Window(100, 100).X)
	assert.Equal(t, []float64{0}, p.Window(-3, 4).X)
	assert.Equal(t, 0, p.Window(2, 0).Len())
	assert.Equal(t, 0, randomwalk.Path{}.Window(0, 5).Len())

	w.X[0] = 99
	assert.Equal(t, 2.0, p.X[2], "window is a copy")

	x, y := p.Last()
	assert.Equal(t, 4.0, x)
	assert.Equal(t, -4.0, y)
	assert.True(t, math.IsNaN(p.Displacement(5)))
	assert.True(t, math.IsNaN(p.Displacement(-1)))
}

// TestMSD_Linear: the mean squared displacement grows like the step index.
func TestMSD_Linear(t *testing.T) {
	t.Parallel()

	const walkers, steps = 2000, 101
	paths := make([]randomwalk.Path, walkers)
	for i := range paths {
		p, err := randomwalk.Walk(steps, rand.NewPCG(2024, uint64(i)))
		require.NoError(t, err)
		paths[i] = p
	}

	msd, err := randomwalk.MSD(paths)
	require.NoError(t, err)
	require.Len(t, msd, steps)
	assert.Equal(t, 0.0, msd[0])
	assert.InDelta(t, 1.0, msd[1], 1e-9)
	assert.InDelta(t, 50.0, msd[50], 6)
	assert.InDelta(t, 100.0, msd[100], 12)
}

// TestMSD_Errors covers empty and ragged ensembles.
func TestMSD_Errors(t *testing.T) {
	t.Parallel()

	_, err := randomwalk.MSD(nil)
	assert.ErrorIs(t, err, randomwalk.ErrNoPaths)

	a := randomwalk.Path{X: []float64{0, 1}, Y: []float64{0, 0}}
	b := randomwalk.Path{X: []float64{0}, Y: []float64{0}}
	_, err = randomwalk.MSD([]randomwalk.Path{a, b})
	assert.ErrorIs(t, err, randomwalk.ErrLengthMismatch)
}
