// SPDX-License-Identifier: MIT

package posterior

// Grid defaults mirror the interactive coin-flipper this package grew out of.
const (
	// DefaultGridPoints is the number of candidate biases in DefaultGrid.
	DefaultGridPoints = 500

	// DefaultGridLow is the smallest candidate bias in DefaultGrid.
	DefaultGridLow = 0.001

	// DefaultGridHigh is the largest candidate bias in DefaultGrid.
	DefaultGridHigh = 0.999
)

// Prior defaults.
const (
	// DefaultPriorMu centers the prior on a fair coin.
	DefaultPriorMu = 0.5

	// DefaultPriorSigma is the prior standard deviation.
	DefaultPriorSigma = 0.1
)

// BiasGrid is an immutable, strictly increasing sequence of candidate coin
// biases, each strictly inside (0,1). The zero value is an empty grid and is
// rejected by every operation.
type BiasGrid struct {
	p []float64
}

// Observation is the outcome of a run of coin flips: Heads successes out of
// Flips trials. Valid observations satisfy 0 <= Heads <= Flips.
type Observation struct {
	Heads int `json:"heads" yaml:"heads"`
	Flips int `json:"flips" yaml:"flips"`
}

// Prior is a Gaussian belief over the coin bias, N(Mu, Sigma²). Sigma must be
// strictly positive. The density is not truncated to (0,1); only its shape on
// the grid matters.
type Prior struct {
	Mu    float64 `json:"mu" yaml:"mu"`
	Sigma float64 `json:"sigma" yaml:"sigma"`
}

// DefaultPrior returns N(0.5, 0.1²).
func DefaultPrior() Prior {
	return Prior{Mu: DefaultPriorMu, Sigma: DefaultPriorSigma}
}

// Curve is a sequence of values aligned index-by-index with a BiasGrid.
type Curve []float64

// PriorCurve is the prior evaluated on the grid and rescaled so its maximum is 1.
type PriorCurve = Curve

// PosteriorCurve is the posterior evaluated on the grid and rescaled so its
// maximum is 1. It is a relative plausibility, not a normalized density.
type PosteriorCurve = Curve

// Result is the complete output of Infer.
//
// Fields:
//   - Grid          — the grid the curves are aligned with.
//   - Prior         — prior rescaled to max 1.
//   - Posterior     — posterior rescaled to max 1.
//   - Probabilities — posterior mass per grid point; sums to 1.
//   - LogNormalizer — log Σ exp(logPosterior), the log-sum-exp normalizer.
//   - MAP           — grid value with the largest posterior mass.
//   - Mean          — Σ p·P(p) over the grid.
type Result struct {
	Grid          BiasGrid
	Prior         PriorCurve
	Posterior     PosteriorCurve
	Probabilities []float64
	LogNormalizer float64
	MAP           float64
	Mean          float64
}

// PriorForm selects the log-density used for the Gaussian prior.
//
//   - GaussianStandard — −0.5·ln(2πσ²) − (p−μ)²/(2σ²), the textbook log-density.
//   - GaussianLegacy   — −0.5·ln(√(2πσ²)) − (p−μ)²/σ², the formulation of the
//     interactive coin-flip viewer. Its exponent lacks the factor 2, so the
//     curve is as narrow as a standard prior with σ/√2.
type PriorForm int

const (
	// GaussianStandard is the textbook Gaussian log-density.
	GaussianStandard PriorForm = iota

	// GaussianLegacy reproduces the interactive viewer's prior curves.
	GaussianLegacy
)

// String implements fmt.Stringer.
func (f PriorForm) String() string {
	switch f {
	case GaussianStandard:
		return "standard"
	case GaussianLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParsePriorForm maps "standard" or "legacy" to a PriorForm.
func ParsePriorForm(s string) (PriorForm, bool) {
	switch s {
	case "standard", "":
		return GaussianStandard, true
	case "legacy":
		return GaussianLegacy, true
	default:
		return 0, false
	}
}
