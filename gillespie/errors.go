// SPDX-License-Identifier: MIT

package gillespie

import "errors"

var (
	// ErrInvalidParams indicates a rate, count or step outside its domain.
	ErrInvalidParams = errors.New("gillespie: invalid parameters")

	// ErrNoSimulations indicates an empty ensemble.
	ErrNoSimulations = errors.New("gillespie: no simulations")
)
