// SPDX-License-Identifier: MIT

// Package posterior: functional configuration for Estimate and Infer.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package posterior

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPriorForm is the prior formulation used when none is given.
	DefaultPriorForm = GaussianStandard

	// DefaultFlatPrior disables the Gaussian prior when true.
	DefaultFlatPrior = false
)

const panicPriorFormInvalid = "posterior: WithPriorForm: unknown prior form"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	priorForm PriorForm // DefaultPriorForm
	flatPrior bool      // DefaultFlatPrior
}

// WithPriorForm selects the Gaussian prior log-density.
// Panics on a PriorForm outside the declared constants.
func WithPriorForm(f PriorForm) Option {
	if f != GaussianStandard && f != GaussianLegacy {
		panic(panicPriorFormInvalid)
	}

	return func(o *Options) { o.priorForm = f }
}

// WithFlatPrior replaces the Gaussian prior by a uniform one over the grid
// (log-prior ≡ 0). The Prior argument is still validated.
func WithFlatPrior() Option {
	return func(o *Options) { o.flatPrior = true }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		priorForm: DefaultPriorForm,
		flatPrior: DefaultFlatPrior,
	}
}

// gatherOptions applies opts in order over the defaults; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// logPrior evaluates the configured prior at p.
func (o Options) logPrior(p float64, prior Prior) float64 {
	if o.flatPrior {
		return 0
	}

	return LogPrior(p, prior, o.priorForm)
}
