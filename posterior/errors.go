// SPDX-License-Identifier: MIT
// Package posterior: sentinel error set.
// Every input rejection is an ErrInvalidInput; the finer sentinels below wrap
// it so callers may match either the kind or the specific cause via errors.Is.

package posterior

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the single error kind of this package: the caller
	// violated the input contract. It is never transient.
	ErrInvalidInput = errors.New("posterior: invalid input")

	// ErrEmptyGrid indicates a zero-length (or zero-value) BiasGrid.
	ErrEmptyGrid = fmt.Errorf("%w: empty bias grid", ErrInvalidInput)

	// ErrBiasOutOfRange indicates a grid value outside the open interval (0,1)
	// or a non-finite grid bound.
	ErrBiasOutOfRange = fmt.Errorf("%w: bias must lie strictly inside (0,1)", ErrInvalidInput)

	// ErrGridNotIncreasing indicates grid values that are not strictly increasing.
	ErrGridNotIncreasing = fmt.Errorf("%w: bias grid must be strictly increasing", ErrInvalidInput)

	// ErrGridTooSmall indicates a Linspace request with fewer than two points.
	ErrGridTooSmall = fmt.Errorf("%w: bias grid needs at least 2 points", ErrInvalidInput)

	// ErrBadObservation indicates negative counts or heads exceeding flips.
	ErrBadObservation = fmt.Errorf("%w: observation requires 0 <= heads <= flips", ErrInvalidInput)

	// ErrBadPrior indicates sigma <= 0 or a non-finite prior parameter.
	ErrBadPrior = fmt.Errorf("%w: prior requires finite mu and sigma > 0", ErrInvalidInput)

	// ErrCurveMismatch indicates a curve whose length differs from its grid.
	ErrCurveMismatch = fmt.Errorf("%w: curve and grid lengths differ", ErrInvalidInput)

	// ErrBadMass indicates a credible mass outside (0,1).
	ErrBadMass = fmt.Errorf("%w: credible mass must lie in (0,1)", ErrInvalidInput)
)

// Operation names used when wrapping errors.
const (
	opEstimate         = "Estimate"
	opInfer            = "Infer"
	opNewBiasGrid      = "NewBiasGrid"
	opLinspace         = "Linspace"
	opFWHM             = "FWHM"
	opCredibleInterval = "CredibleInterval"
)

// posteriorErrorf tags err with the operation that rejected the input.
func posteriorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
