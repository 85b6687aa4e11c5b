// SPDX-License-Identifier: MIT
// Package: posterior
//
// Purpose:
//   - Single source of truth for input validation.
//   - Each validator returns a sentinel (wrapping ErrInvalidInput) with the
//     offending field attached; call sites add the operation name.
//
// Order:
//   - Composite validation is grid → observation → prior, so the first
//     reported violation is deterministic.

package posterior

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// inOpenUnit reports whether 0 < v < 1. NaN is rejected.
func inOpenUnit(v float64) bool {
	return v > 0 && v < 1
}

// ValidateGrid ensures g is non-empty, strictly increasing and inside (0,1).
// Complexity: O(len(g)).
func ValidateGrid(g BiasGrid) error {
	return validateValues(g.p)
}

func validateValues(p []float64) error {
	if len(p) == 0 {
		return ErrEmptyGrid
	}
	for i, v := range p {
		if !inOpenUnit(v) {
			return fmt.Errorf("%w: grid[%d]=%g", ErrBiasOutOfRange, i, v)
		}
		if i > 0 && v <= p[i-1] {
			return fmt.Errorf("%w: grid[%d]=%g after %g", ErrGridNotIncreasing, i, v, p[i-1])
		}
	}

	return nil
}

// Validate checks 0 <= Heads <= Flips.
func (o Observation) Validate() error {
	if o.Flips < 0 || o.Heads < 0 || o.Heads > o.Flips {
		return fmt.Errorf("%w: heads=%d flips=%d", ErrBadObservation, o.Heads, o.Flips)
	}

	return nil
}

// Fraction returns Heads/Flips, or NaN when no flips were observed.
func (o Observation) Fraction() float64 {
	if o.Flips == 0 {
		return math.NaN()
	}

	return float64(o.Heads) / float64(o.Flips)
}

// Validate checks that Mu is finite and Sigma is finite and > 0, with a
// variance σ² that neither underflows to zero nor overflows.
func (p Prior) Validate() error {
	variance := p.Sigma * p.Sigma
	if !isFinite(p.Mu) || !isFinite(p.Sigma) || p.Sigma <= 0 || variance == 0 || math.IsInf(variance, 0) {
		return fmt.Errorf("%w: mu=%g sigma=%g", ErrBadPrior, p.Mu, p.Sigma)
	}

	return nil
}

// validateLogPrior rejects a log-prior whose maximum over the grid is not
// finite; rescaling it would yield NaN curves. A finite Mu far outside (0,1)
// overflows (p−μ)² and lands here.
func validateLogPrior(logPri []float64, prior Prior) error {
	if peak := floats.Max(logPri); !isFinite(peak) {
		return fmt.Errorf("%w: mu=%g sigma=%g gives log-prior %g on the grid", ErrBadPrior, prior.Mu, prior.Sigma, peak)
	}

	return nil
}

// validateInputs runs the composite grid → observation → prior check.
func validateInputs(g BiasGrid, obs Observation, prior Prior) error {
	if err := ValidateGrid(g); err != nil {
		return err
	}
	if err := obs.Validate(); err != nil {
		return err
	}

	return prior.Validate()
}
