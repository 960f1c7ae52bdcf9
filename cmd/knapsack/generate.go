package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/fontanf/knapsack-go/internal/parse"
	"github.com/urfave/cli/v3"
)

// generateCommand writes a random instance file in the standard format,
// using the same math/rand/v2 seeded-source idiom generator.go uses for
// reproducible random layouts.
var generateCommand = &cli.Command{
	Name:      "generate",
	Usage:     "write a random instance file",
	ArgsUsage: "<output-file>",
	Flags: append(flagsSlice("seed"), []cli.Flag{
		&cli.IntFlag{Name: "n", Usage: "number of items", Value: 100},
		&cli.Int64Flag{Name: "max-weight", Usage: "maximum item weight", Value: 1000},
		&cli.Int64Flag{Name: "max-profit", Usage: "maximum item profit", Value: 1000},
		&cli.Float64Flag{Name: "capacity-ratio", Usage: "capacity as a fraction of the total item weight", Value: 0.5},
	}...),
	Action: generateAction,
}

func generateAction(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("need an output file path")
	}
	path := c.Args().First()

	n := c.Int("n")
	maxW := c.Int64("max-weight")
	maxP := c.Int64("max-profit")
	ratio := c.Float64("capacity-ratio")

	seed := c.Int64("seed")
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	items := make([][2]int64, n)
	var totalWeight int64
	for i := range items {
		w := rng.Int64N(maxW) + 1
		p := rng.Int64N(maxP) + 1
		items[i] = [2]int64{w, p}
		totalWeight += w
	}
	capacity := int64(float64(totalWeight) * ratio)

	if err := parse.WriteStandard(path, capacity, items); err != nil {
		return err
	}
	printf(c.Root().Writer, "wrote %d items, capacity %d, to %s\n", n, capacity, path)
	return nil
}
