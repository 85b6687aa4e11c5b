// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stochlab/internal/config"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := newRootCmd(&out, &errb)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errb.String(), err
}

func TestPosterior_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "posterior", "--json", "--bias", "0.7", "--log10-flips", "4", "--seed", "3")
	require.NoError(t, err)

	var r posteriorReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 10_000, r.Observation.Flips)
	assert.Len(t, r.Grid, 500)
	assert.Len(t, r.PosteriorCurve, 500)
	assert.InDelta(t, 0.7, r.MAP, 0.03)
	assert.Less(t, r.CredibleInterval[0], r.MAP)
	assert.Greater(t, r.CredibleInterval[1], r.MAP)
	assert.Equal(t, "standard", r.PriorForm)
}

func TestPosterior_Text(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "posterior", "--log10-flips", "3", "--flat")
	require.NoError(t, err)
	assert.Contains(t, out, "flips=1000 ")
	assert.Contains(t, out, "MAP=")
	assert.Contains(t, out, "95% credible interval=")
}

func TestPosterior_DefaultFlips(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "posterior")
	require.NoError(t, err)
	assert.Contains(t, out, "flips=10 ")
}

func TestPosterior_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "posterior", "--bias", "2")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "posterior", "--prior-form", "cauchy")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "posterior", "extra")
	assert.Error(t, err)
}

func TestGillespie_JSON(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "gillespie", "--json", "--sims", "10", "--events", "100", "--workers", "2")
	require.NoError(t, err)

	var r gillespieReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 10, r.Summary.Simulations)
	require.NotNil(t, r.SteadyState)
	assert.InDelta(t, 30.0, *r.SteadyState, 1e-9)
	assert.Len(t, r.TheoryMRNA, 200)
	assert.Empty(t, r.Trajectories)

	out, _, err = execute(t, "gillespie", "--json", "--sims", "2", "--events", "5", "--gamma", "0", "--trajectories")
	require.NoError(t, err)
	r = gillespieReport{}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Nil(t, r.SteadyState)
	require.Len(t, r.Trajectories, 2)
	assert.Equal(t, 5, r.Trajectories[0].Final())
}

func TestWalk_ConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte("walk:\n  steps: 50\n  window: 10\n"), 0o600))

	out, _, err := execute(t, "walk", "--config", path, "--json")
	require.NoError(t, err)
	var r walkReport
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 50, r.Steps)
	assert.Equal(t, 10, r.Window.Len())

	out, _, err = execute(t, "walk", "--config", path, "--window", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "steps=50 ")
	assert.Contains(t, out, "window=3")
}

func TestLogging_JSONToStderr(t *testing.T) {
	t.Parallel()

	out, errOut, err := execute(t, "walk", "--steps", "10", "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"configuration loaded"`)
	assert.Contains(t, errOut, `"msg":"walk complete"`)
	assert.NotContains(t, out, "msg")

	_, _, err = execute(t, "walk", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
