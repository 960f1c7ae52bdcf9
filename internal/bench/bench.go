// Package bench runs the Balknap engine over a batch of instance files and
// collects per-run timing, bound, and (best-effort) peak-memory statistics,
// the way a benchmark harness compares solver configurations across a
// corpus. It is a supplement used by cmd/knapsack's `bench` subcommand;
// internal/knapsack itself has no notion of a "batch".
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/fontanf/knapsack-go/internal/knapsack"
	"github.com/fontanf/knapsack-go/internal/parse"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RunResult is one instance file's solve outcome plus run metadata.
type RunResult struct {
	RunID      string
	Path       string
	Items      int
	Profit     int64
	LowerBound int64
	UpperBound int64
	Elapsed    time.Duration
	PeakRSSKB  int64 // -1 when not available on this platform
	Err        error
}

// RunBatch solves every path in paths against the given format and engine
// config, at most `workers` concurrent (0 means unbounded, mirroring
// errgroup.Group's default). Each run gets its own uuid and its own cloned
// EngineConfig (so a shared EndFlag isn't accidentally reused across runs).
// Mirrors the teacher's parallel-batch idiom (bls.go's steepestDescentParallel)
// but built on errgroup rather than a raw WaitGroup + channel, since results
// need to be collected in input order and a single run's error should not
// cancel the others.
func RunBatch(ctx context.Context, paths []string, format string, cfg knapsack.EngineConfig, workers int) ([]RunResult, error) {
	results := make([]RunResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = RunResult{Path: path, Err: gctx.Err()}
				return nil
			default:
			}
			results[i] = runOne(path, format, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("bench: batch run: %w", err)
	}
	return results, nil
}

func runOne(path, format string, cfg knapsack.EngineConfig) RunResult {
	runID := uuid.NewString()

	parsed, err := parse.ReadFile(path, format)
	if err != nil {
		return RunResult{RunID: runID, Path: path, Err: err}
	}

	ins, err := knapsack.NewInstance(parsed.Capacity, parsed.Items)
	if err != nil {
		return RunResult{RunID: runID, Path: path, Err: err}
	}

	runCfg := cfg
	runCfg.EndFlag = nil // each batch entry gets its own cancellation scope

	startRSS := peakRSSKB()
	start := time.Now()
	res, err := knapsack.Solve(ins, runCfg)
	elapsed := time.Since(start)
	endRSS := peakRSSKB()

	peak := int64(-1)
	if startRSS >= 0 && endRSS >= 0 {
		peak = endRSS
		_ = startRSS // peak RSS is monotonic across a process, so only the end reading matters
	}

	if err != nil {
		return RunResult{RunID: runID, Path: path, Err: err, Elapsed: elapsed}
	}
	return RunResult{
		RunID:      runID,
		Path:       path,
		Items:      len(parsed.Items),
		Profit:     res.Profit,
		LowerBound: res.LowerBound,
		UpperBound: res.UpperBound,
		Elapsed:    elapsed,
		PeakRSSKB:  peak,
	}
}
