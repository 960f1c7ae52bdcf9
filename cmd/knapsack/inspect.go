package main

import (
	"context"
	"os"

	"github.com/fontanf/knapsack-go/internal/knapsack"
	"github.com/urfave/cli/v3"
)

// inspectCommand reports an instance's shape without running the DP: item
// count, capacity, break item, and the LP-relaxation (Dantzig) bound —
// useful for sizing a run before committing to a full solve.
var inspectCommand = &cli.Command{
	Name:      "inspect",
	Usage:     "report an instance's shape without solving it",
	ArgsUsage: "<instance-file>",
	Flags:     flagsSlice("format"),
	Action:    inspectAction,
}

func inspectAction(ctx context.Context, c *cli.Command) error {
	ins, parsed, err := loadInstanceFromFlags(c)
	if err != nil {
		return err
	}

	ins.SortPartially(128)
	dantzig := knapsack.DantzigBound(ins)

	renderInspectSummary(os.Stdout, c.Args().First(), len(parsed.Items), parsed.Capacity, ins.BreakItem(), dantzig)
	return nil
}
