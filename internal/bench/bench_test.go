package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fontanf/knapsack-go/internal/knapsack"
	"github.com/fontanf/knapsack-go/internal/parse"
	"github.com/stretchr/testify/require"
)

func writeInstanceFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunBatchSolvesEveryFileAndAssignsUniqueRunIDs(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeInstanceFile(t, dir, "a.txt", "4 5\n2 3\n3 4\n4 5\n5 6\n"),
		writeInstanceFile(t, dir, "b.txt", "3 6\n1 100\n2 100\n3 100\n"),
	}

	cfg := knapsack.DefaultEngineConfig()
	cfg.DPProfitsThreshold = 0

	results, err := RunBatch(context.Background(), paths, parse.FormatStandard, cfg, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	seen := make(map[string]bool)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.False(t, seen[r.RunID], "run IDs must be unique per batch entry")
		seen[r.RunID] = true
	}

	require.EqualValues(t, 7, results[0].Profit)
	require.EqualValues(t, 300, results[1].Profit)
}

func TestRunBatchIsolatesPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeInstanceFile(t, dir, "good.txt", "1 5\n2 3\n"),
		filepath.Join(dir, "missing.txt"),
	}

	cfg := knapsack.DefaultEngineConfig()
	results, err := RunBatch(context.Background(), paths, parse.FormatStandard, cfg, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
}

func TestRunBatchEachRunGetsItsOwnEndFlagScope(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeInstanceFile(t, dir, "one.txt", "1 5\n2 3\n")}

	cfg := knapsack.DefaultEngineConfig()
	cfg.EndFlag = &knapsack.EndFlag{}
	cfg.EndFlag.Set() // pre-set; runOne must not reuse this flag for its own run

	results, err := RunBatch(context.Background(), paths, parse.FormatStandard, cfg, 1)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	require.EqualValues(t, 3, results[0].Profit)
}
