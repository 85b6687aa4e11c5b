// SPDX-License-Identifier: MIT

package gillespie_test

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochlab/gillespie"
)

// TestSimulate_Invariants checks shape, monotone time and unit steps.
func TestSimulate_Invariants(t *testing.T) {
	t.Parallel()

	p := gillespie.Params{ProductionRate: 10, DegradationRate: 1.0 / 3, InitialMRNA: 5, Events: 400}
	tr, err := gillespie.Simulate(p, rand.NewPCG(42, 0))
	require.NoError(t, err)

	require.Equal(t, p.Events+1, tr.Len())
	require.Len(t, tr.MRNA, p.Events+1)
	assert.Equal(t, 0.0, tr.Times[0])
	assert.Equal(t, 5, tr.MRNA[0])
	for i := 1; i < tr.Len(); i++ {
		require.Greater(t, tr.Times[i], tr.Times[i-1], "time must advance")
		require.GreaterOrEqual(t, tr.MRNA[i], 0, "count must stay non-negative")
		d := tr.MRNA[i] - tr.MRNA[i-1]
		require.True(t, d == 1 || d == -1, "each event changes m by one")
	}
}

// TestSimulate_Parity: the final count always has the parity of m0 + events.
func TestSimulate_Parity(t *testing.T) {
	t.Parallel()

	for seed := uint64(0); seed < 50; seed++ {
		p := gillespie.Params{ProductionRate: 3, DegradationRate: 0.5, InitialMRNA: int(seed % 3), Events: 101 + int(seed)}
		tr, err := gillespie.Simulate(p, rand.NewPCG(seed, 9))
		require.NoError(t, err)
		assert.Equal(t, (p.InitialMRNA+p.Events)%2, tr.Final()%2)
	}
}

// TestSimulate_PureProduction: with γ = 0 every event is a production.
func TestSimulate_PureProduction(t *testing.T) {
	t.Parallel()

	p := gillespie.Params{ProductionRate: 2, DegradationRate: 0, InitialMRNA: 1, Events: 50}
	tr, err := gillespie.Simulate(p, rand.NewPCG(1, 1))
	require.NoError(t, err)
	for i, m := range tr.MRNA {
		require.Equal(t, 1+i, m)
	}
	assert.True(t, math.IsInf(gillespie.SteadyState(p), 1))
}

// TestSimulate_Deterministic: same source, same trajectory.
func TestSimulate_Deterministic(t *testing.T) {
	t.Parallel()

	p := gillespie.DefaultParams()
	a, err := gillespie.Simulate(p, rand.NewPCG(5, 6))
	require.NoError(t, err)
	b, err := gillespie.Simulate(p, rand.NewPCG(5, 6))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestParams_Validate covers each rejected field.
func TestParams_Validate(t *testing.T) {
	t.Parallel()

	ok := gillespie.DefaultParams()
	require.NoError(t, ok.Validate())

	mutate := []func(*gillespie.Params){
		func(p *gillespie.Params) { p.ProductionRate = 0 },
		func(p *gillespie.Params) { p.ProductionRate = math.NaN() },
		func(p *gillespie.Params) { p.ProductionRate = math.Inf(1) },
		func(p *gillespie.Params) { p.DegradationRate = -1 },
		func(p *gillespie.Params) { p.DegradationRate = math.NaN() },
		func(p *gillespie.Params) { p.InitialMRNA = -1 },
		func(p *gillespie.Params) { p.Events = 0 },
	}
	for i, m := range mutate {
		p := ok
		m(&p)
		assert.ErrorIsf(t, p.Validate(), gillespie.ErrInvalidParams, "case %d", i)
		_, err := gillespie.Simulate(p, nil)
		assert.ErrorIsf(t, err, gillespie.ErrInvalidParams, "case %d", i)
	}
}

// TestEnsemble_IndependentOfWorkers: output depends only on the seed.
func TestEnsemble_IndependentOfWorkers(t *testing.T) {
	t.Parallel()

	p := gillespie.Params{ProductionRate: 10, DegradationRate: 1.0 / 3, Events: 200}
	one, err := gillespie.Ensemble(context.Background(), p, 24, 77, gillespie.WithWorkers(1))
	require.NoError(t, err)
	many, err := gillespie.Ensemble(context.Background(), p, 24, 77, gillespie.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, one, many)

	tr, err := gillespie.Simulate(p, rand.NewPCG(77, 5))
	require.NoError(t, err)
	assert.Equal(t, tr, one[5], "trajectory i uses PCG(seed, i)")
}

// TestEnsemble_MatchesTheory: the ensemble mean tracks r/γ·(1 − e^{−γt}).
func TestEnsemble_MatchesTheory(t *testing.T) {
	t.Parallel()

	p := gillespie.Params{ProductionRate: 10, DegradationRate: 1.0 / 3, Events: 500}
	trajs, err := gillespie.Ensemble(context.Background(), p, 400, 2019)
	require.NoError(t, err)

	times := []float64{1, 3, 15}
	means, err := gillespie.MeanAt(trajs, times)
	require.NoError(t, err)
	for j, tm := range times {
		want := gillespie.SteadyState(p) * (1 - math.Exp(-p.DegradationRate*tm))
		// ~6 standard errors of a Poisson mean over 400 samples
		assert.InDeltaf(t, want, means[j], 6*math.Sqrt(want/400)+0.1, "t=%g", tm)
	}
}

// TestEnsemble_Errors covers sims, params and cancellation.
func TestEnsemble_Errors(t *testing.T) {
	t.Parallel()

	p := gillespie.DefaultParams()

	_, err := gillespie.Ensemble(context.Background(), p, 0, 1)
	assert.ErrorIs(t, err, gillespie.ErrNoSimulations)

	bad := p
	bad.Events = 0
	_, err = gillespie.Ensemble(context.Background(), bad, 3, 1)
	assert.ErrorIs(t, err, gillespie.ErrInvalidParams)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := gillespie.Ensemble(ctx, p, 100, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

// TestWithWorkers_Panics on a non-positive bound.
func TestWithWorkers_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { gillespie.WithWorkers(0) })
}
