package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

// solveCommand reads an instance file and runs the Balknap engine to
// optimality (or until the time limit elapses), printing the resulting
// packing and bounds.
var solveCommand = &cli.Command{
	Name:      "solve",
	Usage:     "solve a 0-1 knapsack instance",
	ArgsUsage: "<instance-file>",
	Flags: flagsSlice("format", "time-limit", "greedy", "surrogate-relax", "greedynlogn", "ub-moving", "partsol-size", "dpprofits-threshold", "workers", "trace-file"),
	Action: solveAction,
}

func solveAction(ctx context.Context, c *cli.Command) error {
	ins, parsed, err := loadInstanceFromFlags(c)
	if err != nil {
		return err
	}

	cfg := engineConfigFromFlags(c)
	res, err := runSolve(ins, cfg)
	if err != nil {
		return err
	}

	renderSolveSummary(os.Stdout, c.Args().First(), parsed.Items, res)
	return nil
}
