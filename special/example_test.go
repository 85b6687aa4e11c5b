// SPDX-License-Identifier: MIT

package special_test

import (
	"fmt"

	"github.com/katalvlaran/stochlab/special"
)

// ExampleLnGamma shows that lnΓ(n+1) is ln n!.
func ExampleLnGamma() {
	fmt.Printf("lnΓ(6)=%.6f\n", special.LnGamma(6)) // ln 120
	// Output:
	// lnΓ(6)=4.787492
}

// ExampleLnBinomial evaluates a coefficient far beyond float64 factorial range.
func ExampleLnBinomial() {
	fmt.Printf("ln C(1e6, 5e5)=%.3f\n", special.LnBinomial(1_000_000, 500_000))
	// Output:
	// ln C(1e6, 5e5)=693140.047
}
