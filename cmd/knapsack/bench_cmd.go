package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kbench "github.com/fontanf/knapsack-go/internal/bench"
	"github.com/urfave/cli/v3"
)

// benchCommand solves every instance file in a directory and prints a
// comparison table of profit, bounds, timing, and peak RSS per run.
var benchCommand = &cli.Command{
	Name:      "bench",
	Usage:     "solve every instance file in a directory and compare results",
	ArgsUsage: "<directory>",
	Flags: append(flagsSlice("format", "time-limit", "greedy", "surrogate-relax", "greedynlogn", "ub-moving", "partsol-size", "dpprofits-threshold", "workers"),
		&cli.StringFlag{Name: "glob", Usage: "glob pattern matched against each file name", Value: "*"},
	),
	Action: benchAction,
}

func benchAction(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("need a directory of instance files")
	}
	dir := c.Args().First()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %q: %w", dir, err)
	}

	pattern := c.String("glob")
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return fmt.Errorf("no files in %q matched %q", dir, pattern)
	}

	cfg := engineConfigFromFlags(c)
	workers := c.Int("workers")

	results, err := kbench.RunBatch(ctx, paths, c.String("format"), cfg, workers)
	if err != nil {
		return err
	}

	renderBenchTable(os.Stdout, results)
	return nil
}
