package main

import (
	"io"
	"strconv"
	"time"

	"github.com/fontanf/knapsack-go/internal/bench"
	"github.com/fontanf/knapsack-go/internal/knapsack"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderSolveSummary prints the result of a solve call: item count,
// profit, bounds, and a per-item inclusion table, the way
// cmd/keycraft/render.go renders a layout comparison table.
func renderSolveSummary(w io.Writer, path string, items [][2]int64, res knapsack.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Instance", "Items", "Profit", "Lower bound", "Upper bound", "Recursive calls"})
	t.AppendRow(table.Row{path, len(items), res.Profit, res.LowerBound, res.UpperBound, res.RecursiveCalls})
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatTitle
	t.Render()

	included := make(map[int64]bool, len(res.Items))
	for _, j := range res.Items {
		included[j] = true
	}

	it := table.NewWriter()
	it.SetOutputMirror(w)
	it.AppendHeader(table.Row{"Item", "Weight", "Profit", "Included"})
	for j, wp := range items {
		it.AppendRow(table.Row{j, wp[0], wp[1], included[int64(j)]})
	}
	it.SetStyle(table.StyleLight)
	it.Render()
}

// renderInspectSummary prints an instance's shape without running the DP.
func renderInspectSummary(w io.Writer, path string, n int, capacity int64, breakItem int, dantzig int64) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Instance", "Items", "Capacity", "Break item", "Dantzig bound"})
	t.AppendRow(table.Row{path, n, capacity, breakItem, dantzig})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// renderBenchTable prints one row per batch-run result, sorted by input
// order, mirroring the layout rank command's comparison table.
func renderBenchTable(w io.Writer, results []bench.RunResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Run", "Instance", "Items", "Profit", "Lower bound", "Upper bound", "Elapsed", "Peak RSS (KB)", "Error"})
	for _, r := range results {
		errStr := ""
		if r.Err != nil {
			errStr = r.Err.Error()
		}
		rss := "n/a"
		if r.PeakRSSKB >= 0 {
			rss = strconv.FormatInt(r.PeakRSSKB, 10)
		}
		t.AppendRow(table.Row{
			r.RunID[:8], r.Path, r.Items, r.Profit, r.LowerBound, r.UpperBound,
			r.Elapsed.Round(time.Millisecond), rss, errStr,
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
