package knapsack

// SolveDPProfits is a classic profit-indexed dynamic program: dp[p] holds
// the minimum weight needed to reach profit exactly p using a prefix of
// the active-window items, updated in descending profit order (0/1
// knapsack). It is a supplement (not a spec.md module) used automatically
// by Solve for small total-profit instances, grounded on
// opt_dpprofits/dpprofits.hpp's documented role as a fallback alternative
// to Balknap when the profit sum is small enough that a profit-indexed
// table beats a weight-indexed or state-map approach.
func SolveDPProfits(ins *Instance) Result {
	f, l := ins.FirstItem(), ins.LastItem()
	reducedProfit := ins.ReducedProfit()
	reducedCap := ins.ReducedCapacity()

	n := l - f + 1
	if n <= 0 || reducedCap < 0 {
		return assembleDPProfitsResult(ins, nil, reducedProfit)
	}

	maxP := int64(0)
	for j := f; j <= l; j++ {
		maxP += ins.Item(j).P
	}

	const unreachable = int64(-1)
	dp := make([]int64, maxP+1)
	for i := range dp {
		dp[i] = unreachable
	}
	dp[0] = 0
	// take[pos][p] tracks whether item at pos was used to reach profit p,
	// recorded as we go so the best packing can be reconstructed.
	take := make([][]bool, n)
	for i := range take {
		take[i] = make([]bool, maxP+1)
	}

	for idx := 0; idx < n; idx++ {
		pos := f + idx
		w, p := ins.Item(pos).W, ins.Item(pos).P
		for pr := maxP; pr >= p; pr-- {
			if dp[pr-p] == unreachable {
				continue
			}
			cand := dp[pr-p] + w
			if cand <= reducedCap && (dp[pr] == unreachable || cand < dp[pr]) {
				dp[pr] = cand
				take[idx][pr] = true
			}
		}
	}

	best := int64(0)
	for pr := maxP; pr >= 0; pr-- {
		if dp[pr] != unreachable {
			best = pr
			break
		}
	}

	incl := make([]bool, n)
	pr := best
	for idx := n - 1; idx >= 0; idx-- {
		if take[idx][pr] {
			incl[idx] = true
			pr -= ins.Item(f + idx).P
		}
	}

	return assembleDPProfitsResult(ins, incl, reducedProfit+best)
}

func assembleDPProfitsResult(ins *Instance, incl []bool, profit int64) Result {
	items := make([]int64, 0)
	for pos, in := range ins.ReducedIncluded() {
		if in {
			items = append(items, ins.items[pos].J)
		}
	}
	for idx, in := range incl {
		if in {
			items = append(items, ins.items[ins.FirstItem()+idx].J)
		}
	}
	sortInt64sAsc(items)
	return Result{
		Items:      items,
		Profit:     profit,
		LowerBound: profit,
		UpperBound: profit,
	}
}

func sortInt64sAsc(xs []int64) {
	sort64(xs)
}
