package knapsack

// Greedy produces an initial feasible lower bound from a partially- or
// fully-sorted instance with a known break item: break solution, then the
// better of a backward swap or a forward add. Mirrors sol_greedy in the
// upstream solver (spec.md §4.4).
//
// Returns the chosen verdict as a per-position bool slice (true = included)
// covering the full item range [0, n), and its profit.
func Greedy(ins *Instance) ([]bool, int64) {
	sol := ins.ReducedIncluded()

	b := ins.BreakItem()
	n := len(sol)
	// Break solution: reduced solution (tracked separately by the caller
	// via ins.ReducedProfit/Weight) plus items [f, b).
	for j := ins.FirstItem(); j < b && j < n; j++ {
		sol[j] = true
	}
	profit := ins.BreakSolutionProfit()

	if b > ins.LastItem() {
		return sol, profit // all items fit; nothing to improve
	}

	bestGain := int64(0)
	bestJ := -1 // -1 = keep the break solution as-is

	// Backward phase: removing i in [f, b] frees capacity to admit b.
	rb := ins.BreakCapacity() - ins.Item(b).W
	for i := ins.FirstItem(); i <= b; i++ {
		gain := ins.Item(b).P - ins.Item(i).P
		if rb+ins.Item(i).W >= 0 && gain > bestGain {
			bestGain = gain
			bestJ = i
		}
	}

	// Forward phase: adding i in (b, l] fits in the remaining capacity.
	rf := ins.BreakCapacity()
	for i := b + 1; i <= ins.LastItem(); i++ {
		if ins.Item(i).W <= rf && ins.Item(i).P > bestGain {
			bestGain = ins.Item(i).P
			bestJ = i
		}
	}

	switch {
	case bestJ == -1:
		// keep break solution
	case bestJ <= b:
		sol[b] = true
		sol[bestJ] = false
		profit += ins.Item(b).P - ins.Item(bestJ).P
	default:
		sol[bestJ] = true
		profit += ins.Item(bestJ).P
	}

	return sol, profit
}
