// Package main provides the CLI entrypoint for the knapsack command-line
// tool.
//
// solve.go implements the "solve" command: read an instance file, run the
// Balknap engine, print the resulting packing and bounds.
//
// generate.go implements the "generate" command: write a random instance
// file in the standard format, for feeding back into solve/bench.
//
// bench.go implements the "bench" command: solve every instance file in a
// directory and print a comparison table of profit, bounds, and timing.
//
// inspect.go implements the "inspect" command: report an instance's shape
// (item count, capacity, break item, Dantzig bound) without running the
// full DP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "knapsack",
		Usage: "solve, generate, and benchmark 0-1 knapsack instances with the Balknap engine",
		Commands: []*cli.Command{
			solveCommand,
			generateCommand,
			benchCommand,
			inspectCommand,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "knapsack:", err)
		os.Exit(1)
	}
}
