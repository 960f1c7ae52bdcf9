package main

import (
	"fmt"

	"github.com/urfave/cli/v3"
)

// appFlagsMap centralizes flag definitions shared across subcommands, the
// same way cmd/keycraft's appFlagsMap lets each command opt into only the
// flags it needs via flagsSlice.
var appFlagsMap = map[string]cli.Flag{
	"format": &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "instance file format: standard, pisinger, or subsetsum_standard",
		Value:   "standard",
	},
	"time-limit": &cli.DurationFlag{
		Name:  "time-limit",
		Usage: "wall-clock budget for the solve; 0 means unbounded",
	},
	"greedy": &cli.BoolFlag{
		Name:  "greedy",
		Usage: "seed the lower bound with the greedy heuristic before the DP",
		Value: true,
	},
	"surrogate-relax": &cli.IntFlag{
		Name:  "surrogate-relax",
		Usage: "state-map-size threshold that fires the surrogate-relaxation bound task; negative disables it",
		Value: 1000,
	},
	"greedynlogn": &cli.IntFlag{
		Name:  "greedynlogn",
		Usage: "state-map-size threshold that fires the evolutionary greedy lower-bound task; negative disables it",
		Value: -1,
	},
	"ub-moving": &cli.BoolFlag{
		Name:  "ub-moving",
		Usage: "bound against the moving item instead of always the break item",
		Value: true,
	},
	"partsol-size": &cli.IntFlag{
		Name:  "partsol-size",
		Usage: "partial-solution bitset width, in [1, 64]",
		Value: 64,
	},
	"dpprofits-threshold": &cli.IntFlag{
		Name:  "dpprofits-threshold",
		Usage: "total profit at or below which the profit-indexed DP fallback is used instead of Balknap",
		Value: 100000,
	},
	"workers": &cli.IntFlag{
		Name:  "workers",
		Usage: "maximum concurrent batch runs for bench, 0 meaning unbounded; also copied into the engine config's Workers field, which Solve does not read",
	},
	"trace-file": &cli.StringFlag{
		Name:  "trace-file",
		Usage: "JSONL file to append structured solve trace events to",
	},
	"seed": &cli.Int64Flag{
		Name:  "seed",
		Usage: "deterministic random seed for generate / partial-sort pivots",
	},
}

// flagsSlice returns the named flags from appFlagsMap, panicking on an
// unknown name: a programmer error, not a user-facing one, so it is caught
// at command-construction time rather than laundered into a runtime error.
func flagsSlice(names ...string) []cli.Flag {
	out := make([]cli.Flag, 0, len(names))
	for _, name := range names {
		f, ok := appFlagsMap[name]
		if !ok {
			panic(fmt.Sprintf("knapsack: unknown flag %q in flagsSlice", name))
		}
		out = append(out, f)
	}
	return out
}
