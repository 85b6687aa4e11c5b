// SPDX-License-Identifier: MIT

package randomwalk

import "errors"

var (
	// ErrInvalidSteps indicates a non-positive step count.
	ErrInvalidSteps = errors.New("randomwalk: steps must be >= 1")

	// ErrNoPaths indicates an empty ensemble.
	ErrNoPaths = errors.New("randomwalk: no paths")

	// ErrLengthMismatch indicates ensemble paths of different lengths.
	ErrLengthMismatch = errors.New("randomwalk: path lengths differ")
)
