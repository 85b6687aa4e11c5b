// SPDX-License-Identifier: MIT

package coin

import "errors"

var (
	// ErrInvalidBias indicates a bias outside [0,1] or NaN.
	ErrInvalidBias = errors.New("coin: bias must lie in [0,1]")

	// ErrInvalidCount indicates a negative number of flips or prefix length.
	ErrInvalidCount = errors.New("coin: count must be non-negative")
)
