// SPDX-License-Identifier: MIT

package posterior

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Max returns the largest value of c. Panics on an empty curve.
func (c Curve) Max() float64 { return floats.Max(c) }

// ArgMax returns the index of the first largest value. Panics on an empty curve.
func (c Curve) ArgMax() int { return floats.MaxIdx(c) }

// FWHM returns the full width at half maximum of c over grid.
//
// Implementation:
//   - Stage 1: locate the peak and half its height.
//   - Stage 2: walk outward from the peak to the first sample below half on
//     each side and interpolate the crossing linearly between neighbours.
//   - Stage 3: a side that never drops below half is clamped to the grid edge.
//
// Errors:
//   - ErrEmptyGrid when the grid is empty.
//   - ErrCurveMismatch when len(c) != grid.Len() or the peak is not positive.
func FWHM(grid BiasGrid, c Curve) (float64, error) {
	n := grid.Len()
	if n == 0 {
		return 0, posteriorErrorf(opFWHM, ErrEmptyGrid)
	}
	if len(c) != n {
		return 0, posteriorErrorf(opFWHM, fmt.Errorf("%w: curve=%d grid=%d", ErrCurveMismatch, len(c), n))
	}
	k := c.ArgMax()
	if !(c[k] > 0) {
		return 0, posteriorErrorf(opFWHM, fmt.Errorf("%w: non-positive peak %g", ErrCurveMismatch, c[k]))
	}
	half := c[k] / 2
	x := grid.p

	left := x[0]
	for i := k - 1; i >= 0; i-- {
		if c[i] < half {
			left = crossing(x[i], x[i+1], c[i], c[i+1], half)
			break
		}
	}
	right := x[n-1]
	for i := k + 1; i < n; i++ {
		if c[i] < half {
			right = crossing(x[i-1], x[i], c[i-1], c[i], half)
			break
		}
	}

	return right - left, nil
}

// crossing interpolates the abscissa where the segment (x0,y0)-(x1,y1) meets level.
func crossing(x0, x1, y0, y1, level float64) float64 {
	if y1 == y0 {
		return x0
	}

	return x0 + (level-y0)*(x1-x0)/(y1-y0)
}

// CredibleInterval returns the equal-tailed interval holding mass of the
// posterior probability: lo is the first grid value whose cumulative
// probability reaches (1−mass)/2, hi the first reaching 1−(1−mass)/2.
// No interpolation is done, so the bounds are grid values.
func CredibleInterval(r *Result, mass float64) (lo, hi float64, err error) {
	if !(mass > 0 && mass < 1) {
		return 0, 0, posteriorErrorf(opCredibleInterval, fmt.Errorf("%w: mass=%g", ErrBadMass, mass))
	}
	if r == nil || r.Grid.Len() == 0 {
		return 0, 0, posteriorErrorf(opCredibleInterval, ErrEmptyGrid)
	}
	if len(r.Probabilities) != r.Grid.Len() {
		return 0, 0, posteriorErrorf(opCredibleInterval, ErrCurveMismatch)
	}

	tail := (1 - mass) / 2
	cdf := floats.CumSum(make([]float64, len(r.Probabilities)), r.Probabilities)
	x := r.Grid.p
	lo, hi = x[0], x[len(x)-1]
	foundLo := false
	for i, v := range cdf {
		if !foundLo && v >= tail {
			lo, foundLo = x[i], true
		}
		if v >= 1-tail {
			hi = x[i]
			break
		}
	}

	return lo, hi, nil
}
