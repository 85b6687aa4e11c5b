// SPDX-License-Identifier: MIT

package special

import "math"

// lanczosG is the free parameter g of the Lanczos approximation the
// coefficient table below was fitted for.
const lanczosG = 607.0 / 128.0

// HalfLn2Pi is 0.5·ln(2π), the normalizing term of Stirling-type series and
// of the Gaussian log-density.
const HalfLn2Pi = 0.918938533204672741780329736405617639861397473637783412817151540

// lanczosCoefficients are the 15 Lanczos series coefficients for g = 607/128.
// Index 0 is the constant term; index i ≥ 1 divides (z + i).
var lanczosCoefficients = [15]float64{
	0.99999999999999709182,
	57.156235665862923517,
	-59.597960355475491248,
	14.136097974741747174,
	-0.49191381609762019978,
	0.33994649984811888699e-4,
	0.46523628927048575665e-4,
	-0.98374475304879564677e-4,
	0.15808870322491248884e-3,
	-0.21026444172410488319e-3,
	0.21743961811521264320e-3,
	-0.16431810653676389022e-3,
	0.84418223983852743293e-4,
	-0.26190838401581408670e-4,
	0.36899182659531622704e-5,
}

// LnGamma returns ln Γ(z) for z ≥ 0.
//
// Algorithm:
//  1. x = c₀ + Σ_{i=1..14} cᵢ/(z+i), summed from the smallest term up.
//  2. t = z + g + 0.5.
//  3. lnΓ(z) = 0.5·ln(2π) + (z+0.5)·ln t − t + ln x − ln z.
//
// Edge cases:
//   - z < 0 or NaN → NaN (the approximation is not defined there).
//   - z == 0       → +Inf (pole of Γ).
//   - z == +Inf    → +Inf.
//
// Accuracy: relative error below 1e-8 against math.Lgamma over [1e-3, 1e6];
// absolute error below 1e-8 around the zeros at z = 1 and z = 2.
func LnGamma(z float64) float64 {
	if math.IsNaN(z) || z < 0 {
		return math.NaN()
	}
	if z == 0 || math.IsInf(z, 1) {
		return math.Inf(1)
	}

	x := lanczosCoefficients[0]
	for i := len(lanczosCoefficients) - 1; i > 0; i-- {
		x += lanczosCoefficients[i] / (z + float64(i))
	}
	t := z + lanczosG + 0.5

	return HalfLn2Pi + (z+0.5)*math.Log(t) - t + math.Log(x) - math.Log(z)
}

// LnBinomial returns ln C(n, k) = lnΓ(n+1) − lnΓ(k+1) − lnΓ(n−k+1).
// It returns NaN when n < 0, k < 0 or k > n.
func LnBinomial(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return math.NaN()
	}

	return LnGamma(float64(n)+1) - LnGamma(float64(k)+1) - LnGamma(float64(n-k)+1)
}
