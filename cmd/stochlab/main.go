// SPDX-License-Identifier: MIT

// Command stochlab runs the coin-flip posterior, Gillespie and random-walk
// models from the command line.
//
//	stochlab posterior --bias 0.7 --log10-flips 3
//	stochlab gillespie --sims 200 --json
//	stochlab walk --steps 100000 --window 5000
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "stochlab:", err)
		stop()
		os.Exit(1)
	}
}
