// SPDX-License-Identifier: MIT

package gillespie

import "sort"

// Defaults of the interactive simulator.
const (
	// DefaultProductionRate is r, in molecules per minute.
	DefaultProductionRate = 10.0

	// DefaultDegradationRate is γ, per molecule per minute.
	DefaultDegradationRate = 1.0 / 3.0

	// DefaultEvents is the number of reaction events per trajectory.
	DefaultEvents = 500

	// DefaultSimulations is the ensemble size.
	DefaultSimulations = 100

	// DefaultTheoryStep is the Euler step (minutes) of Theory.
	DefaultTheoryStep = 1.0 / 30.0
)

// Params configures a constitutive-promoter simulation.
//
// Fields:
//   - ProductionRate  — r > 0.
//   - DegradationRate — γ >= 0.
//   - InitialMRNA     — m0 >= 0.
//   - Events          — number of reaction events per trajectory, >= 1.
type Params struct {
	ProductionRate  float64 `json:"production_rate" yaml:"production_rate"`
	DegradationRate float64 `json:"degradation_rate" yaml:"degradation_rate"`
	InitialMRNA     int     `json:"initial_mrna" yaml:"initial_mrna"`
	Events          int     `json:"events" yaml:"events"`
}

// DefaultParams returns the interactive simulator's starting values.
func DefaultParams() Params {
	return Params{
		ProductionRate:  DefaultProductionRate,
		DegradationRate: DefaultDegradationRate,
		InitialMRNA:     0,
		Events:          DefaultEvents,
	}
}

// Trajectory is one realization: MRNA[i] molecules from Times[i] until
// Times[i+1]. Both slices have Events+1 entries and start at (0, m0).
type Trajectory struct {
	Times []float64 `json:"times"`
	MRNA  []int     `json:"mrna"`
}

// Len returns the number of recorded states.
func (tr Trajectory) Len() int { return len(tr.Times) }

// Final returns the last recorded molecule count (0 for an empty trajectory).
func (tr Trajectory) Final() int {
	if len(tr.MRNA) == 0 {
		return 0
	}

	return tr.MRNA[len(tr.MRNA)-1]
}

// Duration returns the time of the last event.
func (tr Trajectory) Duration() float64 {
	if len(tr.Times) == 0 {
		return 0
	}

	return tr.Times[len(tr.Times)-1]
}

// At returns the molecule count at time t. Before 0 it is the initial count;
// past the last event the last state is held.
func (tr Trajectory) At(t float64) int {
	if len(tr.Times) == 0 {
		return 0
	}
	// first index with Times[i] > t, minus one
	i := sort.Search(len(tr.Times), func(i int) bool { return tr.Times[i] > t }) - 1
	if i < 0 {
		i = 0
	}

	return tr.MRNA[i]
}

// Summary aggregates an ensemble.
type Summary struct {
	Simulations   int     `json:"simulations"`
	MeanFinal     float64 `json:"mean_final"`
	VarianceFinal float64 `json:"variance_final"`
	MeanDuration  float64 `json:"mean_duration"`
}
