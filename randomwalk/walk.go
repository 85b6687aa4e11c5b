// SPDX-License-Identifier: MIT

package randomwalk

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// DefaultSteps is the length of the viewer's walk.
	DefaultSteps = 100_000

	// DefaultWindow is the width of the zoomed inset.
	DefaultWindow = 5000
)

// Path holds walker positions; (X[i], Y[i]) is the position after i steps.
type Path struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Walk returns a path of steps positions starting at the origin.
// A nil src uses the global math/rand/v2 source.
func Walk(steps int, src rand.Source) (Path, error) {
	if steps < 1 {
		return Path{}, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}

	angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	x := make([]float64, steps)
	y := make([]float64, steps)
	for i := 1; i < steps; i++ {
		s, c := math.Sincos(angle.Rand())
		x[i] = x[i-1] + c
		y[i] = y[i-1] + s
	}

	return Path{X: x, Y: y}, nil
}

// Len returns the number of positions.
func (p Path) Len() int { return len(p.X) }

// Last returns the current position, or the origin for an empty path.
func (p Path) Last() (x, y float64) {
	if len(p.X) == 0 {
		return 0, 0
	}

	return p.X[len(p.X)-1], p.Y[len(p.Y)-1]
}

// Displacement returns the distance from the origin after i steps.
// Out-of-range i yields NaN.
func (p Path) Displacement(i int) float64 {
	if i < 0 || i >= len(p.X) {
		return math.NaN()
	}

	return math.Hypot(p.X[i], p.Y[i])
}

// Window copies the last width positions ending at index end. end is clamped
// to the path; a non-positive width returns an empty Path.
func (p Path) Window(end, width int) Path {
	n := len(p.X)
	if n == 0 || width < 1 {
		return Path{}
	}
	end = min(max(end, 0), n-1)
	start := max(end-width+1, 0)

	return Path{
		X: append([]float64(nil), p.X[start:end+1]...),
		Y: append([]float64(nil), p.Y[start:end+1]...),
	}
}

// MSD returns the mean squared displacement at each step index over an
// ensemble of equal-length paths.
func MSD(paths []Path) ([]float64, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	n := paths[0].Len()
	for i, p := range paths {
		if p.Len() != n || len(p.Y) != n {
			return nil, fmt.Errorf("%w: path %d has %d positions, want %d", ErrLengthMismatch, i, p.Len(), n)
		}
	}

	out := make([]float64, n)
	for _, p := range paths {
		for i := range out {
			out[i] += p.X[i]*p.X[i] + p.Y[i]*p.Y[i]
		}
	}
	floats.Scale(1/float64(len(paths)), out)

	return out, nil
}
