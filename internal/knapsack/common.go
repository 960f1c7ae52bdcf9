// Package knapsack implements the balanced primal-dual dynamic programming
// algorithm for the 0-1 knapsack problem (the "Balknap" approach), together
// with its supporting machinery: instance reduction, partial sorting around
// a break item, Dantzig/Dembo bounds, and surrogate relaxation.
package knapsack

import (
	"fmt"
	"io"
	"log"
	"sort"
)

// sortSliceStable is a tiny shim over sort.SliceStable kept in its own
// named wrapper so call sites (instance.go's stableSortItems) read as
// domain operations rather than raw stdlib calls.
func sortSliceStable(items []Item, less func(i, j int) bool) {
	sort.SliceStable(items, less)
}

// sortIntsStable is the same shim for plain int position slices, used by
// the surrogate relaxation's maxCard/minCard quickselect-free sorts.
func sortIntsStable(xs []int, less func(i, j int) bool) {
	sort.SliceStable(xs, less)
}

// sort64 ascending-sorts a slice of int64 original item indices, used when
// assembling a Result's Items list.
func sort64(xs []int64) {
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
}

// MustFprintf writes a formatted string to the given writer, logging and exiting
// on error.
func MustFprintf(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		log.Fatalf("Fprintf failed: %v", err)
	}
}
