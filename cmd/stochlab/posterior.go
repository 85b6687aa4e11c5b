// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochlab/coin"
	"github.com/katalvlaran/stochlab/posterior"
)

type posteriorFlags struct {
	bias       float64
	log10Flips float64
	mu         float64
	sigma      float64
	points     int
	priorForm  string
	flat       bool
	mass       float64
}

// posteriorReport is the JSON shape of the posterior command.
type posteriorReport struct {
	Bias             float64               `json:"bias"`
	Observation      posterior.Observation `json:"observation"`
	Prior            posterior.Prior       `json:"prior"`
	PriorForm        string                `json:"prior_form"`
	FlatPrior        bool                  `json:"flat_prior"`
	Grid             []float64             `json:"grid"`
	PriorCurve       []float64             `json:"prior_curve"`
	PosteriorCurve   []float64             `json:"posterior_curve"`
	MAP              float64               `json:"map"`
	Mean             float64               `json:"mean"`
	FWHM             float64               `json:"fwhm"`
	CredibleMass     float64               `json:"credible_mass"`
	CredibleInterval [2]float64            `json:"credible_interval"`
}

func newPosteriorCmd(a *app) *cobra.Command {
	var f posteriorFlags
	cmd := &cobra.Command{
		Use:   "posterior",
		Short: "Flip a biased coin and infer its bias on a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPosterior(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.Float64Var(&f.bias, "bias", 0.5, "true probability of heads")
	fl.Float64Var(&f.log10Flips, "log10-flips", coin.DefaultLog10Flips, "observe the first 10^x flips, x in [0,6]")
	fl.Float64Var(&f.mu, "mu", posterior.DefaultPriorMu, "prior mean")
	fl.Float64Var(&f.sigma, "sigma", posterior.DefaultPriorSigma, "prior standard deviation")
	fl.IntVar(&f.points, "points", posterior.DefaultGridPoints, "grid points in [0.001, 0.999]")
	fl.StringVar(&f.priorForm, "prior-form", posterior.DefaultPriorForm.String(), "standard or legacy")
	fl.BoolVar(&f.flat, "flat", posterior.DefaultFlatPrior, "use a flat prior")
	fl.Float64Var(&f.mass, "mass", 0.95, "credible interval mass")

	return cmd
}

func (a *app) runPosterior(cmd *cobra.Command, f posteriorFlags) error {
	c := a.cfg.Posterior
	setIf(cmd, "bias", &c.Bias, f.bias)
	setIf(cmd, "log10-flips", &c.Log10Flips, f.log10Flips)
	setIf(cmd, "mu", &c.Mu, f.mu)
	setIf(cmd, "sigma", &c.Sigma, f.sigma)
	setIf(cmd, "points", &c.Points, f.points)
	setIf(cmd, "prior-form", &c.PriorForm, f.priorForm)
	setIf(cmd, "flat", &c.FlatPrior, f.flat)
	setIf(cmd, "mass", &c.Mass, f.mass)
	cfg := a.cfg
	cfg.Posterior = c
	if err := cfg.Validate(); err != nil {
		return err
	}

	run, err := coin.Flip(c.Bias, coin.DefaultFlips, rand.NewPCG(cfg.Seed, 0))
	if err != nil {
		return err
	}
	obs, err := run.Observe(coin.DisplayCount(c.Log10Flips))
	if err != nil {
		return err
	}
	grid, err := posterior.Linspace(posterior.DefaultGridLow, posterior.DefaultGridHigh, c.Points)
	if err != nil {
		return err
	}
	res, err := posterior.Infer(grid, obs, c.Prior(), c.Options()...)
	if err != nil {
		return err
	}
	width, err := posterior.FWHM(grid, res.Posterior)
	if err != nil {
		return err
	}
	lo, hi, err := posterior.CredibleInterval(res, c.Mass)
	if err != nil {
		return err
	}
	a.logger.Info("posterior computed",
		"flips", obs.Flips, "heads", obs.Heads, "map", res.MAP, "fwhm", width)

	report := posteriorReport{
		Bias:             c.Bias,
		Observation:      obs,
		Prior:            c.Prior(),
		PriorForm:        c.PriorForm,
		FlatPrior:        c.FlatPrior,
		Grid:             grid.Values(),
		PriorCurve:       res.Prior,
		PosteriorCurve:   res.Posterior,
		MAP:              res.MAP,
		Mean:             res.Mean,
		FWHM:             width,
		CredibleMass:     c.Mass,
		CredibleInterval: [2]float64{lo, hi},
	}

	return a.emit(report, func(w io.Writer) error {
		_, err := fmt.Fprintf(w,
			"flips=%d heads=%d\nMAP=%.4f mean=%.4f FWHM=%.4f\n%.0f%% credible interval=[%.4f, %.4f]\n",
			obs.Flips, obs.Heads, res.MAP, res.Mean, width, 100*c.Mass, lo, hi)

		return err
	})
}
