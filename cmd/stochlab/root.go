// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochlab/internal/config"
)

// app carries state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgPath   string
	logLevel  string
	logFormat string
	jsonOut   bool
	seed      uint64

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "stochlab",
		Short:         "Bayesian coin-flip inference and stochastic simulations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML scenario file")
	pf.StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "text or json")
	pf.BoolVar(&a.jsonOut, "json", false, "write results as JSON")
	pf.Uint64Var(&a.seed, "seed", 1, "random seed")

	root.AddCommand(
		newPosteriorCmd(a),
		newGillespieCmd(a),
		newWalkCmd(a),
	)

	return root
}

// setup loads the scenario, applies root flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(a.stderr, cfg.Log)
	a.logger.Debug("configuration loaded", "path", a.cfgPath, "seed", cfg.Seed)

	return nil
}

func newLogger(w io.Writer, c config.LogConfig) *slog.Logger {
	var level slog.Level
	// validated upstream; UnmarshalText accepts every oneof value
	_ = level.UnmarshalText([]byte(c.Level))
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// emit writes v as indented JSON, or calls text otherwise.
func (a *app) emit(v any, text func(io.Writer) error) error {
	if !a.jsonOut {
		return text(a.stdout)
	}
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}

// setIf copies v into dst when the named flag was given explicitly.
func setIf[T any](cmd *cobra.Command, name string, dst *T, v T) {
	if cmd.Flags().Changed(name) {
		*dst = v
	}
}
