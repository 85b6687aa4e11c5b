// SPDX-License-Identifier: MIT

package posterior

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// NewBiasGrid copies values into an immutable BiasGrid.
// Returns ErrEmptyGrid, ErrBiasOutOfRange or ErrGridNotIncreasing.
func NewBiasGrid(values []float64) (BiasGrid, error) {
	if err := validateValues(values); err != nil {
		return BiasGrid{}, posteriorErrorf(opNewBiasGrid, err)
	}
	p := make([]float64, len(values))
	copy(p, values)

	return BiasGrid{p: p}, nil
}

// Linspace returns n evenly spaced biases from lo to hi inclusive.
// Requires 0 < lo < hi < 1 and n >= 2.
func Linspace(lo, hi float64, n int) (BiasGrid, error) {
	if n < 2 {
		return BiasGrid{}, posteriorErrorf(opLinspace, fmt.Errorf("%w: n=%d", ErrGridTooSmall, n))
	}
	if !inOpenUnit(lo) || !inOpenUnit(hi) || lo >= hi {
		return BiasGrid{}, posteriorErrorf(opLinspace, fmt.Errorf("%w: lo=%g hi=%g", ErrBiasOutOfRange, lo, hi))
	}

	p := floats.Span(make([]float64, n), lo, hi)

	return BiasGrid{p: p}, nil
}

// DefaultGrid returns DefaultGridPoints biases over [DefaultGridLow, DefaultGridHigh].
func DefaultGrid() BiasGrid {
	g, err := Linspace(DefaultGridLow, DefaultGridHigh, DefaultGridPoints)
	if err != nil {
		// defaults are constants; reaching this is a programming error
		panic(err)
	}

	return g
}

// Len returns the number of grid points.
func (g BiasGrid) Len() int { return len(g.p) }

// At returns the i-th bias. Panics when i is out of range, like a slice index.
func (g BiasGrid) At(i int) float64 { return g.p[i] }

// Values returns a copy of the grid values.
func (g BiasGrid) Values() []float64 {
	out := make([]float64, len(g.p))
	copy(out, g.p)

	return out
}

// Step returns the mean spacing between consecutive points (0 for fewer than two).
func (g BiasGrid) Step() float64 {
	if len(g.p) < 2 {
		return 0
	}

	return (g.p[len(g.p)-1] - g.p[0]) / float64(len(g.p)-1)
}
