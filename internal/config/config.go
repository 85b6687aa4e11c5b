// SPDX-License-Identifier: MIT

// Package config loads stochlab scenario files.
//
// A scenario is a YAML document with one section per model plus logging
// settings. Missing keys keep their DefaultConfig values; the merged result
// is checked with struct-tag validation before use.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stochlab/coin"
	"github.com/katalvlaran/stochlab/gillespie"
	"github.com/katalvlaran/stochlab/posterior"
	"github.com/katalvlaran/stochlab/randomwalk"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is a complete scenario.
type Config struct {
	Seed      uint64          `yaml:"seed"`
	Log       LogConfig       `yaml:"log"`
	Posterior PosteriorConfig `yaml:"posterior"`
	Gillespie GillespieConfig `yaml:"gillespie"`
	Walk      WalkConfig      `yaml:"walk"`
}

// LogConfig selects the CLI log handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// PosteriorConfig drives the coin-flip inference.
type PosteriorConfig struct {
	Bias       float64 `yaml:"bias" validate:"gte=0,lte=1"`
	Log10Flips float64 `yaml:"log10_flips" validate:"gte=0,lte=6"`
	Mu         float64 `yaml:"mu" validate:"gte=0,lte=1"`
	Sigma      float64 `yaml:"sigma" validate:"gt=0"`
	Points     int     `yaml:"points" validate:"gte=2,lte=100000"`
	PriorForm  string  `yaml:"prior_form" validate:"oneof=standard legacy"`
	FlatPrior  bool    `yaml:"flat_prior"`
	Mass       float64 `yaml:"credible_mass" validate:"gt=0,lt=1"`
}

// GillespieConfig drives the SSA ensemble.
type GillespieConfig struct {
	ProductionRate  float64 `yaml:"production_rate" validate:"gt=0"`
	DegradationRate float64 `yaml:"degradation_rate" validate:"gte=0"`
	InitialMRNA     int     `yaml:"initial_mrna" validate:"gte=0"`
	Events          int     `yaml:"events" validate:"gte=1"`
	Simulations     int     `yaml:"simulations" validate:"gte=1"`
	Workers         int     `yaml:"workers" validate:"gte=0"`
}

// WalkConfig drives the random walk.
type WalkConfig struct {
	Steps  int `yaml:"steps" validate:"gte=1"`
	Window int `yaml:"window" validate:"gte=1"`
}

// DefaultConfig returns the interactive defaults of every model.
func DefaultConfig() Config {
	prior := posterior.DefaultPrior()
	gp := gillespie.DefaultParams()

	return Config{
		Seed: 1,
		Log:  LogConfig{Level: "info", Format: "text"},
		Posterior: PosteriorConfig{
			Bias:       0.5,
			Log10Flips: coin.DefaultLog10Flips,
			Mu:         prior.Mu,
			Sigma:      prior.Sigma,
			Points:     posterior.DefaultGridPoints,
			PriorForm:  posterior.DefaultPriorForm.String(),
			Mass:       0.95,
		},
		Gillespie: GillespieConfig{
			ProductionRate:  gp.ProductionRate,
			DegradationRate: gp.DegradationRate,
			InitialMRNA:     gp.InitialMRNA,
			Events:          gp.Events,
			Simulations:     gillespie.DefaultSimulations,
		},
		Walk: WalkConfig{
			Steps:  randomwalk.DefaultSteps,
			Window: randomwalk.DefaultWindow,
		},
	}
}

// Load reads a scenario file over DefaultConfig and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// GillespieParams converts the section to simulator parameters.
func (c GillespieConfig) GillespieParams() gillespie.Params {
	return gillespie.Params{
		ProductionRate:  c.ProductionRate,
		DegradationRate: c.DegradationRate,
		InitialMRNA:     c.InitialMRNA,
		Events:          c.Events,
	}
}

// Prior converts the section to a posterior.Prior.
func (c PosteriorConfig) Prior() posterior.Prior {
	return posterior.Prior{Mu: c.Mu, Sigma: c.Sigma}
}

// Options converts the section to posterior options.
func (c PosteriorConfig) Options() []posterior.Option {
	form, _ := posterior.ParsePriorForm(c.PriorForm)
	opts := []posterior.Option{posterior.WithPriorForm(form)}
	if c.FlatPrior {
		opts = append(opts, posterior.WithFlatPrior())
	}

	return opts
}
