package knapsack

import "math"

// SurrogateResult carries the tightened bound produced by surrogate
// relaxation, plus enough to report which multiplier produced it.
type SurrogateResult struct {
	UB         int64
	Multiplier int64
	Cardinality int
}

// maxCard returns the number of items a greedy-by-weight fill would admit
// (the cardinality the break solution would reach if items were ordered by
// increasing weight instead of efficiency). Mirrors max_card.
func maxCard(ins *Instance) int {
	if ins.ReducedItemCount() <= 1 {
		return 1
	}
	order := make([]int, 0, ins.ReducedItemCount())
	for j := ins.FirstItem(); j <= ins.LastItem(); j++ {
		order = append(order, j)
	}
	sortIntsByKey(order, func(pos int) int64 { return ins.Item(pos).W })

	k := ins.ReducedItemCount()
	r := ins.Capacity()
	count := 0
	for _, pos := range order {
		if ins.Item(pos).W > r {
			return count
		}
		r -= ins.Item(pos).W
		count++
	}
	return k
}

// minCard returns the smallest cardinality a greedy-by-profit fill needs
// to exceed lb (relative to the reduced solution). Mirrors min_card.
func minCard(ins *Instance, lb int64) int {
	lb -= ins.ReducedProfit()
	if ins.ReducedItemCount() <= 1 {
		if ins.ReducedItemCount() == 0 {
			return 0
		}
		if ins.Item(ins.FirstItem()).P <= lb {
			return 1
		}
		return 0
	}
	order := make([]int, 0, ins.ReducedItemCount())
	for j := ins.FirstItem(); j <= ins.LastItem(); j++ {
		order = append(order, j)
	}
	sortIntsByKeyDesc(order, func(pos int) int64 { return ins.Item(pos).P })

	z := int64(0)
	for i, pos := range order {
		if z+ins.Item(pos).P > lb {
			return i + 1
		}
		z += ins.Item(pos).P
	}
	return len(order)
}

func sortIntsByKey(xs []int, key func(int) int64) {
	sortIntsStable(xs, func(i, j int) bool { return key(xs[i]) < key(xs[j]) })
}

func sortIntsByKeyDesc(xs []int, key func(int) int64) {
	sortIntsStable(xs, func(i, j int) bool { return key(xs[i]) > key(xs[j]) })
}

// surrogateSolve binary-searches the multiplier s in [sMin, sMax] for a
// target cardinality, mirroring ub_surrogate_solve. It mutates and then
// restores the working instance's weights/capacity via Surrogate.
func surrogateSolve(ins *Instance, card int, sMin, sMax int64) SurrogateResult {
	out := SurrogateResult{UB: math.MaxInt64, Cardinality: card}
	first := ins.FirstItem()
	applied := int64(0) // cumulative weight perturbation currently applied

	wMax, wMin, pMax := ins.Item(ins.FirstItem()).W, ins.Item(ins.FirstItem()).W, ins.Item(ins.FirstItem()).P
	for j := ins.FirstItem() + 1; j <= ins.LastItem(); j++ {
		if ins.Item(j).W > wMax {
			wMax = ins.Item(j).W
		}
		if ins.Item(j).W < wMin {
			wMin = ins.Item(j).W
		}
		if ins.Item(j).P > pMax {
			pMax = ins.Item(j).P
		}
	}
	if pMax == 0 {
		pMax = 1
	}
	wLim := math.MaxInt64 / pMax

	s1, s2 := sMin, sMax
	for s1 <= s2 {
		s := s1 + (s2-s1)/2

		// Overflow guard (spec.md §4.5): shrink the interval rather than
		// risk wrapping arithmetic in Surrogate/ubDantzig.
		if sMin == 0 && s != 0 {
			n := int64(ins.ReducedItemCount())
			if math.MaxInt64/s < int64(card) ||
				ins.Capacity() > math.MaxInt64-s*int64(card) ||
				(n > 0 && math.MaxInt64/n < wMax+s) ||
				wMax+s > wLim {
				s2 = s - 1
				continue
			}
		}
		if sMax == 0 && s != 0 {
			wAbs := wMax + s
			if -wMin+s > wAbs {
				wAbs = -wMin + s
			}
			n := int64(ins.ReducedItemCount())
			if math.MaxInt64/(-s) < int64(card) ||
				(n > 0 && math.MaxInt64/n < wAbs) ||
				wAbs > wLim {
				s1 = s + 1
				continue
			}
		}

		ins.Surrogate(s-applied, card, first)
		applied = s
		p := ubDantzig(ins)
		b := ins.BreakItem()

		if p < out.UB {
			out.UB = p
			out.Multiplier = s
		}

		if b == card && ins.BreakCapacity() == 0 {
			break
		}

		if b >= card {
			s1 = s + 1
		} else {
			s2 = s - 1
		}
	}
	ins.Surrogate(-applied, card, first)
	return out
}

// SurrogateUB computes a tightened upper bound via surrogate relaxation:
// determine a target cardinality (b if greedy-by-weight admits exactly b
// items, b+1 if greedy-by-profit needs exactly b+1, or both), binary
// search the multiplier, and reverse the perturbation before returning.
// Mirrors ub_surrogate (spec.md §4.5).
func SurrogateUB(instance *Instance, lb int64) SurrogateResult {
	ins := instance.Clone()
	ins.SortPartially(128)
	b := ins.BreakItem()

	out := SurrogateResult{UB: ubDantzig(ins)}
	if ins.ReducedItemCount() == 0 || ins.BreakCapacity() == 0 || b > ins.LastItem() {
		return out
	}

	wMax, pMax := ins.Item(ins.FirstItem()).W, ins.Item(ins.FirstItem()).P
	for j := ins.FirstItem() + 1; j <= ins.LastItem(); j++ {
		if ins.Item(j).W > wMax {
			wMax = ins.Item(j).W
		}
		if ins.Item(j).P > pMax {
			pMax = ins.Item(j).P
		}
	}
	if pMax == 0 {
		pMax = 1
	}
	var sMax, sMin int64
	if math.MaxInt64/pMax > wMax {
		sMax = pMax * wMax
		sMin = -sMax
	} else {
		sMax = math.MaxInt64
		sMin = -math.MaxInt64
	}

	switch {
	case maxCard(ins) == b:
		out = surrogateSolve(ins, b, 0, sMax)
	case minCard(ins, lb) == b+1:
		out = surrogateSolve(ins, b+1, sMin, 0)
		if out.UB < lb {
			out.UB = lb
		}
	default:
		out1 := surrogateSolve(ins, b, 0, sMax)
		out2 := surrogateSolve(ins, b+1, sMin, 0)
		if out2.UB < lb {
			out2.UB = lb
		}
		out = out1
		if out2.UB > out.UB {
			out = out2
		}
	}
	return out
}
