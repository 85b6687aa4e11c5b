// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stochlab/randomwalk"
)

// walkReport is the JSON shape of the walk command.
type walkReport struct {
	Steps        int             `json:"steps"`
	Seed         uint64          `json:"seed"`
	Final        [2]float64      `json:"final"`
	Displacement float64         `json:"displacement"`
	Window       randomwalk.Path `json:"window"`
}

func newWalkCmd(a *app) *cobra.Command {
	var steps, window int
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Generate a 2D unit-step random walk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg.Walk
			setIf(cmd, "steps", &c.Steps, steps)
			setIf(cmd, "window", &c.Window, window)
			cfg := a.cfg
			cfg.Walk = c
			if err := cfg.Validate(); err != nil {
				return err
			}

			path, err := randomwalk.Walk(c.Steps, rand.NewPCG(cfg.Seed, 0))
			if err != nil {
				return err
			}
			x, y := path.Last()
			end := path.Len() - 1
			report := walkReport{
				Steps:        c.Steps,
				Seed:         cfg.Seed,
				Final:        [2]float64{x, y},
				Displacement: path.Displacement(end),
				Window:       path.Window(end, c.Window),
			}
			a.logger.Info("walk complete", "steps", c.Steps, "displacement", report.Displacement)

			return a.emit(report, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "steps=%d final=(%.3f, %.3f) displacement=%.3f window=%d\n",
					c.Steps, x, y, report.Displacement, report.Window.Len())

				return err
			})
		},
	}
	cmd.Flags().IntVar(&steps, "steps", randomwalk.DefaultSteps, "number of positions")
	cmd.Flags().IntVar(&window, "window", randomwalk.DefaultWindow, "positions in the zoomed inset")

	return cmd
}
