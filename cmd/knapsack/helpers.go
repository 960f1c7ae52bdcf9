package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fontanf/knapsack-go/internal/knapsack"
	"github.com/fontanf/knapsack-go/internal/parse"
	"github.com/urfave/cli/v3"
)

// engineConfigFromFlags builds an EngineConfig from CLI flags, the same
// FromFlags-constructor idiom as the layout optimizer's
// NewTargetLoadsFromFile: start from the defaults, then override whatever
// the user set.
func engineConfigFromFlags(c *cli.Command) knapsack.EngineConfig {
	cfg := knapsack.DefaultEngineConfig()
	cfg.PartialSolutionSize = c.Int("partsol-size")
	cfg.Greedy = c.Bool("greedy")
	cfg.SurrogateRelax = c.Int("surrogate-relax")
	cfg.GreedyNLogN = c.Int("greedynlogn")
	cfg.DPProfitsThreshold = c.Int64("dpprofits-threshold")
	cfg.TimeLimit = c.Duration("time-limit")
	if c.Bool("ub-moving") {
		cfg.UB = knapsack.UBPolicyMoving
	} else {
		cfg.UB = knapsack.UBPolicyBreak
	}
	if w := c.Int("workers"); w > 0 {
		cfg.Workers = w
	}
	if trace := c.String("trace-file"); trace != "" {
		f, err := os.OpenFile(trace, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			cfg.Logger = knapsack.NewEngineLogger(nil, f)
		}
	}
	return cfg
}

// loadInstanceFromFlags reads the instance file named by the first
// positional argument, using the --format flag to select the parser.
func loadInstanceFromFlags(c *cli.Command) (*knapsack.Instance, *parse.Instance, error) {
	if c.NArg() < 1 {
		return nil, nil, fmt.Errorf("need an instance file path")
	}
	path := c.Args().First()
	format := c.String("format")

	parsed, err := parse.ReadFile(path, format)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %q: %w", path, err)
	}
	ins, err := knapsack.NewInstance(parsed.Capacity, parsed.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("building instance from %q: %w", path, err)
	}
	return ins, parsed, nil
}

// runSolve wraps knapsack.Solve with the start/end log events the engine
// itself does not emit (LogIteration/LogAuxBound/LogRecursion are emitted
// from inside the DP loop; start/end belong to the caller that knows the
// instance shape and the final wall-clock outcome).
func runSolve(ins *knapsack.Instance, cfg knapsack.EngineConfig) (knapsack.Result, error) {
	if cfg.Logger != nil {
		cfg.Logger.LogStart(ins.ItemCount(), ins.Capacity(), 0, 0)
	}
	res, err := knapsack.Solve(ins, cfg)
	if cfg.Logger != nil {
		cfg.Logger.LogEnd(res.LowerBound, res.UpperBound, res.RecursiveCalls)
	}
	return res, err
}

// printf is a tiny MustFprintf-style wrapper for CLI output, matching the
// "log and keep going" discipline the engine's own logger uses rather than
// silently swallowing a write error.
func printf(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		fmt.Fprintln(os.Stderr, "knapsack: write error:", err)
	}
}
