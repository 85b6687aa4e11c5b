// SPDX-License-Identifier: MIT

package coin

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/stochlab/posterior"
)

const (
	// DefaultFlips is the size of the run the viewer reveals prefixes of.
	DefaultFlips = 1_000_000

	// MaxLog10Flips is the upper end of the log-scale viewer.
	MaxLog10Flips = 6.0

	// DefaultLog10Flips is the viewer's starting position: 10 flips revealed.
	DefaultLog10Flips = 1.0
)

// Flips is an immutable run of coin flips stored as cumulative head counts:
// heads[k] is the number of heads among the first k flips.
type Flips struct {
	bias  float64
	heads []int
}

// Flip draws n independent flips of a coin landing heads with probability
// bias. A nil src falls back to the global math/rand/v2 source, which is
// not reproducible.
//
// Errors: ErrInvalidBias, ErrInvalidCount.
func Flip(bias float64, n int, src rand.Source) (Flips, error) {
	if !(bias >= 0 && bias <= 1) {
		return Flips{}, fmt.Errorf("%w: bias=%g", ErrInvalidBias, bias)
	}
	if n < 0 {
		return Flips{}, fmt.Errorf("%w: n=%d", ErrInvalidCount, n)
	}

	d := distuv.Bernoulli{P: bias, Src: src}
	heads := make([]int, n+1)
	for i := 1; i <= n; i++ {
		heads[i] = heads[i-1] + int(d.Rand())
	}

	return Flips{bias: bias, heads: heads}, nil
}

// Len returns the number of flips in the run.
func (f Flips) Len() int {
	if len(f.heads) == 0 {
		return 0
	}

	return len(f.heads) - 1
}

// Bias returns the probability the run was drawn with.
func (f Flips) Bias() float64 { return f.bias }

// Heads returns the total number of heads in the run.
func (f Flips) Heads() int {
	if len(f.heads) == 0 {
		return 0
	}

	return f.heads[len(f.heads)-1]
}

// At reports whether flip i (0-based) landed heads. Panics when out of range.
func (f Flips) At(i int) bool {
	return f.heads[i+1]-f.heads[i] == 1
}

// Observe returns the observation made of the first k flips. A k larger than
// the run is clamped to Len.
func (f Flips) Observe(k int) (posterior.Observation, error) {
	if k < 0 {
		return posterior.Observation{}, fmt.Errorf("%w: k=%d", ErrInvalidCount, k)
	}
	if k > f.Len() {
		k = f.Len()
	}
	if k == 0 {
		return posterior.Observation{}, nil
	}

	return posterior.Observation{Heads: f.heads[k], Flips: k}, nil
}

// DisplayCount maps a log-scale viewer position x to ⌊10^x⌋ flips.
// x is clamped to [0, MaxLog10Flips]; NaN maps to 1.
func DisplayCount(x float64) int {
	if math.IsNaN(x) || x < 0 {
		x = 0
	}
	if x > MaxLog10Flips {
		x = MaxLog10Flips
	}

	return int(math.Floor(math.Pow(10, x)))
}
