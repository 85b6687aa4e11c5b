// SPDX-License-Identifier: MIT

// Package randomwalk generates two-dimensional random walks with unit steps
// in uniformly random directions.
//
// Each step draws θ ~ U[0, 2π) and moves by (cos θ, sin θ). After i steps the
// expected squared distance from the origin is i, which MSD checks over an
// ensemble. Window extracts the recent tail of a long path, mirroring the
// zoomed inset of the interactive viewer.
package randomwalk
