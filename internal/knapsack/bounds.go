package knapsack

// Bound Calculators (spec.md §4.2): pure integer-arithmetic functions
// computing the Dantzig and Dembo upper bounds from a partial state.
// None of these mutate the instance; they only read the break item and a
// caller-supplied (profit, residual-capacity) pair.

// ubDantzig returns the LP-relaxation upper bound: the reduced profit plus
// the break solution's profit plus the fractional contribution of the
// break item filling the remaining break capacity. When no break item
// exists (b > l) it returns the break solution's profit alone. Mirrors
// ub_dantzig in the upstream solver.
// DantzigBound is the exported entry point to ubDantzig for callers outside
// the package (the `inspect` CLI subcommand reports it without running the
// full DP).
func DantzigBound(ins *Instance) int64 { return ubDantzig(ins) }

func ubDantzig(ins *Instance) int64 {
	p := ins.ReducedProfit() + ins.BreakProfit()
	b := ins.BreakItem()
	if b > ins.LastItem() {
		return p
	}
	r := ins.BreakCapacity()
	item := ins.Item(b)
	if r > 0 {
		p += (r * item.P) / item.W
	}
	return p
}

// ubDembo returns a localized Dantzig-style bound: cumulative profit pi
// plus the fractional fill of remaining capacity r (r >= 0) using the
// reference item's efficiency as the relaxation slope. Mirrors
// ub_trivial_from / ub_dantzig_from for the feasible (mu <= C) half-plane.
func ubDembo(ref Item, pi, r int64) int64 {
	return pi + (r*ref.P)/ref.W
}

// ubDemboRev mirrors ubDembo for the overfull half-plane (r < 0): it
// computes the bound as if items were being stripped from the reference
// item backwards, using ceiling division via the (x+1)/w - 1 trick to
// keep the comparison exact for negative residual capacity. Mirrors
// ub_trivial_from_rev.
func ubDemboRev(ref Item, pi, r int64) int64 {
	return pi + (r*ref.P+1)/ref.W - 1
}
