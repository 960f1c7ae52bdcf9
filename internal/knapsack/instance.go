package knapsack

import (
	"math/rand"
)

// sortState tracks how much of the active window has been ordered by
// efficiency.
type sortState int

const (
	unsorted sortState = iota
	partiallySorted
	fullySorted
)

// interval is a contiguous run of items (inclusive bounds, positions into
// Instance.items) whose relative efficiency order is still a coarse band,
// awaiting on-demand refinement by sortLeft/sortRight.
type interval struct {
	f, l int
}

// partialSolution is an accumulator of items fixed into (or temporarily
// assumed part of) a solution: its weight, profit, and which positions are
// included. It is owned by value by Instance, never shared by reference.
type partialSolution struct {
	included []bool
	weight   int64
	profit   int64
}

func newPartialSolution(n int) partialSolution {
	return partialSolution{included: make([]bool, n)}
}

func (s partialSolution) clone() partialSolution {
	out := partialSolution{
		included: append([]bool(nil), s.included...),
		weight:   s.weight,
		profit:   s.profit,
	}
	return out
}

func (s *partialSolution) set(items []Item, pos int, in bool) {
	if s.included[pos] == in {
		return
	}
	s.included[pos] = in
	if in {
		s.weight += items[pos].W
		s.profit += items[pos].P
	} else {
		s.weight -= items[pos].W
		s.profit -= items[pos].P
	}
}

func (s partialSolution) remainingCapacity(c int64) int64 {
	return c - s.weight
}

// Instance is the mutable container of items plus a reorderable "view"
// (first/last indices, reduction state, sort state). It implements the
// Instance Store component: add_item, sort_fully, sort_partially, the two
// reduction variants, fix, and surrogate perturbation, all preserving the
// invariants documented in spec.md §3.
type Instance struct {
	items    []Item
	capacity int64

	f, l int // inclusive bounds of the active window; l == f-1 means empty
	b    int // break item position, b in [f, l+1]

	reduced partialSolution // items permanently fixed to 1
	brk     partialSolution // reduced plus items [f, b-1]

	sort sortState

	intLeft, intRight []interval

	sPrime, tPrime, sInit, tInit int

	rng *rand.Rand
}

// NewInstance builds an Instance from a capacity and a list of (weight,
// profit) pairs. Negative weights, profits, or capacity are a domain
// violation and are reported rather than silently clamped.
func NewInstance(capacity int64, wp [][2]int64) (*Instance, error) {
	if capacity < 0 {
		return nil, newDomainError("capacity", capacity, "must be non-negative")
	}
	items := make([]Item, 0, len(wp))
	for j, pair := range wp {
		w, p := pair[0], pair[1]
		if w < 0 {
			return nil, newDomainError("weight", w, "item weights must be non-negative")
		}
		if p < 0 {
			return nil, newDomainError("profit", p, "item profits must be non-negative")
		}
		items = append(items, Item{J: int64(j), W: w, P: p})
	}
	ins := &Instance{
		items:    items,
		capacity: capacity,
		f:        0,
		l:        len(items) - 1,
		reduced:  newPartialSolution(len(items)),
		brk:      newPartialSolution(len(items)),
		b:        -1,
		rng:      rand.New(rand.NewSource(0)),
	}
	return ins, nil
}

// AddItem appends an item and invalidates sort state, mirroring
// Instance::add_item in the upstream solver.
func (ins *Instance) AddItem(w, p int64) error {
	if w < 0 {
		return newDomainError("weight", w, "item weights must be non-negative")
	}
	if p < 0 {
		return newDomainError("profit", p, "item profits must be non-negative")
	}
	j := int64(len(ins.items))
	ins.items = append(ins.items, Item{J: j, W: w, P: p})
	ins.reduced.included = append(ins.reduced.included, false)
	ins.brk.included = append(ins.brk.included, false)
	ins.l = len(ins.items) - 1
	ins.sort = unsorted
	return nil
}

// ItemCount returns the total number of items ever added (including ones
// fixed out of the active window).
func (ins *Instance) ItemCount() int { return len(ins.items) }

// Capacity returns the (possibly surrogate-perturbed) total capacity.
func (ins *Instance) Capacity() int64 { return ins.capacity }

// FirstItem and LastItem return the inclusive bounds of the active window.
func (ins *Instance) FirstItem() int { return ins.f }
func (ins *Instance) LastItem() int  { return ins.l }

// ReducedItemCount is the number of items still undecided (in the active window).
func (ins *Instance) ReducedItemCount() int { return ins.l - ins.f + 1 }

// Item returns the item currently at the given position.
func (ins *Instance) Item(pos int) Item { return ins.items[pos] }

// ReducedCapacity is the capacity left after the reduced solution's weight.
func (ins *Instance) ReducedCapacity() int64 { return ins.reduced.remainingCapacity(ins.capacity) }

// ReducedProfit is the accumulated profit of items permanently fixed to 1.
func (ins *Instance) ReducedProfit() int64 { return ins.reduced.profit }

// ReducedIncluded returns a copy of the per-position inclusion flags for
// the permanently-fixed-to-1 items (positions outside the active window
// contribute true; everything else is false until fixed).
func (ins *Instance) ReducedIncluded() []bool {
	out := make([]bool, len(ins.reduced.included))
	copy(out, ins.reduced.included)
	return out
}

// OriginalIndex returns the original input index j of the item currently
// at position pos, stable across reordering.
func (ins *Instance) OriginalIndex(pos int) int64 { return ins.items[pos].J }

// ReducedWeight is the accumulated weight of items permanently fixed to 1.
func (ins *Instance) ReducedWeight() int64 { return ins.reduced.weight }

// BreakItem is the smallest index such that greedy-by-efficiency fill
// overflows; always in [f, l+1].
func (ins *Instance) BreakItem() int { return ins.b }

// BreakProfit/BreakWeight/BreakCapacity describe the break solution
// (reduced solution plus items [f, b-1]) relative to the reduced one.
func (ins *Instance) BreakProfit() int64    { return ins.brk.profit - ins.reduced.profit }
func (ins *Instance) BreakWeight() int64    { return ins.brk.weight - ins.reduced.weight }
func (ins *Instance) BreakCapacity() int64  { return ins.brk.remainingCapacity(ins.capacity) }
func (ins *Instance) BreakSolutionProfit() int64 { return ins.brk.profit }
func (ins *Instance) BreakSolutionWeight() int64 { return ins.brk.weight }

// SortType reports how much of the active window is ordered by efficiency.
func (ins *Instance) SortType() string {
	switch ins.sort {
	case fullySorted:
		return "fully_sorted"
	case partiallySorted:
		return "partially_sorted"
	default:
		return "unsorted"
	}
}

// IsFeasible reports whether the reduced solution alone already exceeds
// capacity, i.e. the instance is infeasible under the current reduction.
func (ins *Instance) IsFeasible() bool { return ins.ReducedCapacity() >= 0 }

// computeBreakItem recomputes the break solution and break item by
// greedily filling the active window in its current (efficiency) order.
// Mirrors Instance::compute_break_item.
func (ins *Instance) computeBreakItem() {
	ins.brk = ins.reduced.clone()
	b := ins.f
	for ; b <= ins.l; b++ {
		if ins.items[b].W > ins.brk.remainingCapacity(ins.capacity) {
			break
		}
		ins.brk.set(ins.items, b, true)
	}
	ins.b = b
}

// SortFully stable-sorts the active window by strict efficiency (descending)
// and recomputes the break item. Mirrors Instance::sort.
func (ins *Instance) SortFully() {
	if ins.sort == fullySorted {
		return
	}
	if ins.l > ins.f {
		sortItemsByEfficiency(ins.items[ins.f : ins.l+1])
	}
	ins.sort = fullySorted
	ins.computeBreakItem()
}

func sortItemsByEfficiency(items []Item) {
	// Stable insertion-free sort via the standard library, grounded on the
	// upstream's std::sort with the same strict comparator.
	less := func(i, j int) bool { return effGreater(items[i], items[j]) }
	stableSortItems(items, less)
}

// stableSortItems is a tiny shim kept separate so it can be swapped for a
// specialized sort without touching call sites; it just defers to
// sort.SliceStable.
func stableSortItems(items []Item, less func(i, j int) bool) {
	sortSliceStable(items, less)
}

// partition is the quickselect-style partitioning step used by
// SortPartially: it moves items greater than the pivot's efficiency to the
// left of the returned range and items smaller to the right, leaving a
// middle band equal to the pivot. Mirrors Instance::partition.
func (ins *Instance) partition(f, l int) (int, int) {
	pivot := f + 1 + ins.rng.Intn(l-f)
	w := ins.items[pivot].W
	p := ins.items[pivot].P
	ins.swap(pivot, l)
	j := f
	for j <= l {
		if ins.items[j].P*w > p*ins.items[j].W {
			ins.swap(j, f)
			f++
			j++
		} else if ins.items[j].P*w < p*ins.items[j].W {
			ins.swap(j, l)
			l--
		} else {
			j++
		}
	}
	return f, l
}

func (ins *Instance) swap(i, j int) {
	ins.items[i], ins.items[j] = ins.items[j], ins.items[i]
}

// SortPartially partitions the active window around a random pivot,
// expected O(n), stopping early once the break item's position is known.
// Sub-ranges below limit items fall through to a full sort. Mirrors
// Instance::sort_partially.
func (ins *Instance) SortPartially(limit int) {
	if ins.sort != unsorted {
		return
	}
	ins.intRight = ins.intRight[:0]
	ins.intLeft = ins.intLeft[:0]

	f, l := ins.f, ins.l
	c := ins.ReducedCapacity()
	for f < l {
		if l-f < limit {
			sortItemsByEfficiency(ins.items[f : l+1])
			break
		}

		pf, pl := ins.partition(f, l)
		var w int64
		for k := f; k < pf; k++ {
			w += ins.items[k].W
		}

		if w > c {
			if pl+1 <= l {
				ins.intRight = append(ins.intRight, interval{pl + 1, l})
			}
			ins.intRight = append(ins.intRight, interval{pf, pl})
			l = pf - 1
			continue
		}

		for k := pf; k <= pl; k++ {
			w += ins.items[k].W
		}
		if w > c {
			break
		}
		c -= w
		if f <= pf-1 {
			ins.intLeft = append(ins.intLeft, interval{f, pf - 1})
		}
		ins.intLeft = append(ins.intLeft, interval{pf, pl})
		f = pl + 1
	}

	ins.sort = partiallySorted
	ins.computeBreakItem()

	if f < ins.b {
		ins.intLeft = append(ins.intLeft, interval{f, ins.b - 1})
	}
	if ins.b < l {
		ins.intRight = append(ins.intRight, interval{ins.b + 1, l})
	}
	ins.sPrime, ins.tPrime = ins.b, ins.b
	ins.sInit, ins.tInit = ins.b, ins.b
}

// SortRight pops one interval from int_right, fixes items that cannot beat
// lb to 0, sorts the rest into the growing sorted core, and advances t'.
// Mirrors Instance::sort_right.
func (ins *Instance) SortRight(lb int64) {
	n := len(ins.intRight)
	in := ins.intRight[n-1]
	ins.intRight = ins.intRight[:n-1]
	k := ins.tPrime
	for j := in.f; j <= in.l; j++ {
		p := ins.brk.profit + ins.items[ins.b].P + ins.items[j].P
		r := ins.BreakCapacity() - ins.items[ins.b].W - ins.items[j].W
		ub := ubDemboRev(ins.items[ins.b], p, r)
		if ins.items[j].W <= ins.ReducedCapacity() && ub > lb {
			k++
			ins.swap(k, j)
		}
	}
	sortItemsByEfficiency(ins.items[ins.tPrime+1 : k+1])
	ins.tPrime = k
	if len(ins.intRight) == 0 {
		ins.l = ins.tPrime
	}
	if ins.f >= ins.sPrime && ins.l <= ins.tPrime {
		if ins.sInit == ins.tInit {
			ins.sort = fullySorted
		} else {
			ins.sort = unsorted
		}
	}
}

// SortLeft is the mirror of SortRight for the left interval stack. Items
// that cannot beat lb are fixed to 1 (into the reduced solution). Mirrors
// Instance::sort_left.
func (ins *Instance) SortLeft(lb int64) {
	n := len(ins.intLeft)
	in := ins.intLeft[n-1]
	ins.intLeft = ins.intLeft[:n-1]
	k := ins.sPrime
	for j := in.l; j >= in.f; j-- {
		p := ins.brk.profit - ins.items[j].P
		r := ins.BreakCapacity() + ins.items[j].W
		ub := ubDembo(ins.items[ins.b], p, r)
		if ins.items[j].W <= ins.ReducedCapacity() && ub > lb {
			k--
			ins.swap(k, j)
		} else {
			ins.reduced.set(ins.items, j, true)
		}
	}
	sortItemsByEfficiency(ins.items[k:ins.sPrime])
	ins.sPrime = k
	if len(ins.intLeft) == 0 {
		ins.f = ins.sPrime
	}
	if ins.f >= ins.sPrime && ins.l <= ins.tPrime {
		if ins.sInit == ins.tInit {
			ins.sort = fullySorted
		} else {
			ins.sort = unsorted
		}
	}
}

// BoundItemLeft repeatedly invokes SortLeft until position s lies within
// the sorted core, then reports its clamped position. Mirrors
// Instance::bound_item_left.
func (ins *Instance) BoundItemLeft(s int, lb int64) int {
	for s < ins.sPrime && len(ins.intLeft) > 0 {
		ins.SortLeft(lb)
	}
	switch {
	case s < ins.f:
		return ins.f - 1
	case s >= ins.sInit:
		return ins.b
	default:
		return s
	}
}

// BoundItemRight mirrors BoundItemLeft for the right side.
func (ins *Instance) BoundItemRight(t int, lb int64) int {
	for t > ins.tPrime && len(ins.intRight) > 0 {
		ins.SortRight(lb)
	}
	switch {
	case t >= ins.l+1:
		return ins.l + 1
	case t <= ins.tInit:
		return ins.b
	default:
		return t
	}
}

// removeBigItems banishes any active item whose weight exceeds the
// residual capacity, the way Instance::remove_big_items does.
func (ins *Instance) removeBigItems() {
	if ins.b != -1 && ins.b <= ins.l && ins.items[ins.b].W > ins.ReducedCapacity() {
		ins.b = -1
	}

	if ins.sort == fullySorted {
		notFixed := make([]Item, 0, ins.ReducedItemCount())
		fixed0 := make([]Item, 0)
		for j := ins.f; j <= ins.l; j++ {
			if ins.items[j].W > ins.ReducedCapacity() {
				fixed0 = append(fixed0, ins.items[j])
			} else {
				notFixed = append(notFixed, ins.items[j])
			}
		}
		if len(fixed0) != 0 {
			j := len(notFixed)
			copy(ins.items[ins.f:], notFixed)
			copy(ins.items[ins.f+j:], fixed0)
			ins.l = ins.f + j - 1
		}
		if ins.b == -1 {
			ins.computeBreakItem()
		}
	} else {
		j := ins.f
		for j <= ins.l {
			if ins.items[j].W > ins.ReducedCapacity() {
				ins.swap(j, ins.l)
				ins.l--
			} else {
				j++
			}
		}
		ins.sort = unsorted
		ins.SortPartially(128)
	}
}

// Reduce1 fixes items whose Dantzig-style upper bound (computed relative to
// the break item) cannot exceed lb: items before b to 1, items after b to
// 0. Mirrors Instance::reduce1. Only valid once the instance is at least
// partially sorted, since it needs a break item; when every item of the
// window fits (b > l) it returns without changing anything.
func (ins *Instance) Reduce1(lb int64) {
	if ins.b > ins.l {
		return
	}
	wb, pb := ins.items[ins.b].W, ins.items[ins.b].P
	for j := ins.f; j < ins.b; {
		ub := ins.reduced.profit + ins.BreakProfit() - ins.items[j].P +
			(ins.BreakCapacity()+ins.items[j].W)*pb/wb
		if ub <= lb {
			if j != ins.f {
				ins.swap(j, ins.f)
			}
			ins.reduced.set(ins.items, ins.f, true)
			ins.f++
			if ins.ReducedCapacity() < 0 {
				return
			}
		}
		j++
	}
	for j := ins.l; j > ins.b; {
		ub := ins.reduced.profit + ins.BreakProfit() + ins.items[j].P +
			(ins.BreakCapacity()-ins.items[j].W)*pb/wb
		if ub <= lb {
			if j != ins.l {
				ins.swap(j, ins.l)
			}
			ins.l--
		}
		j--
	}
	ins.removeBigItems()
}

// isum returns prefix sums (Σw<j, Σp<j) over [0, n], valid only once fully
// sorted. Mirrors Instance::get_isum.
func (ins *Instance) isum() []Item {
	n := len(ins.items)
	out := make([]Item, 0, n+1)
	out = append(out, Item{})
	for j := 1; j <= n; j++ {
		prev := out[j-1]
		it := ins.items[j-1]
		out = append(out, Item{J: int64(j), W: prev.W + it.W, P: prev.P + it.P})
	}
	return out
}

// ubItemAt binary-searches isum for the would-be break position when
// capacity targetW is available, mirroring Instance::ub_item.
func (ins *Instance) ubItemAt(isum []Item, targetW int64) int {
	lo, hi := ins.f, ins.l+1
	for lo < hi {
		mid := (lo + hi) / 2
		if isum[mid].W <= targetW {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == ins.l+1 {
		return ins.l + 1
	}
	return lo - 1
}

// Reduce2 is the sharper reduction variant requiring a full efficiency
// sort: it uses the prefix-sum array and two Dantzig-style expressions
// (forward and reverse fractional) to bound each item's in/out status.
// Mirrors Instance::reduce2.
func (ins *Instance) Reduce2(lb int64) {
	isum := ins.isum()
	n := len(ins.items)

	notFixed := make([]Item, 0)
	fixed1 := make([]Item, 0)
	fixed0 := make([]Item, 0)

	for j := ins.f; j <= ins.b; j++ {
		bb := ins.ubItemAt(isum, ins.capacity+ins.items[j].W)
		var ub int64
		switch {
		case bb == n:
			ub = isum[n].P - ins.items[j].P
		case bb == ins.l:
			ub1 := isum[bb].P - ins.items[j].P
			ub2 := isum[bb+1].P - ins.items[j].P +
				divFloorish((ins.capacity+ins.items[j].W-isum[bb+1].W)*ins.items[bb-1].P+1, ins.items[bb-1].W) - 1
			ub = maxInt64(ub1, ub2)
		default:
			ub1 := isum[bb].P - ins.items[j].P +
				(ins.capacity+ins.items[j].W-isum[bb].W)*ins.items[bb+1].P/ins.items[bb+1].W
			ub2 := isum[bb+1].P - ins.items[j].P +
				divFloorish((ins.capacity+ins.items[j].W-isum[bb+1].W)*ins.items[bb-1].P+1, ins.items[bb-1].W) - 1
			ub = maxInt64(ub1, ub2)
		}
		if ub <= lb {
			ins.reduced.set(ins.items, j, true)
			fixed1 = append(fixed1, ins.items[j])
			if ins.ReducedCapacity() < 0 {
				return
			}
		} else if j != ins.b {
			notFixed = append(notFixed, ins.items[j])
		}
	}
	for j := ins.b; j <= ins.l; j++ {
		if j == ins.b && len(fixed1) != 0 && fixed1[len(fixed1)-1].J == ins.items[ins.b].J {
			continue
		}
		bb := ins.ubItemAt(isum, ins.capacity-ins.items[j].W)
		if bb < 0 { // item j alone exceeds the capacity
			fixed0 = append(fixed0, ins.items[j])
			continue
		}
		var ub int64
		switch {
		case bb == n:
			ub = isum[n].P + ins.items[j].P
		case bb == ins.l:
			ub1 := isum[bb].P + ins.items[j].P
			ub2 := isum[bb+1].P + ins.items[j].P +
				divFloorish((ins.capacity-ins.items[j].W-isum[bb+1].W)*ins.items[bb-1].P+1, ins.items[bb-1].W) - 1
			ub = maxInt64(ub1, ub2)
		case bb == 0:
			ub = (ins.capacity + ins.items[j].W) * ins.items[bb].P / ins.items[bb].W
		default:
			ub1 := isum[bb].P + ins.items[j].P +
				(ins.capacity-ins.items[j].W-isum[bb].W)*ins.items[bb+1].P/ins.items[bb+1].W
			ub2 := isum[bb+1].P + ins.items[j].P +
				divFloorish((ins.capacity-ins.items[j].W-isum[bb+1].W)*ins.items[bb-1].P+1, ins.items[bb-1].W) - 1
			ub = maxInt64(ub1, ub2)
		}
		if ub <= lb {
			fixed0 = append(fixed0, ins.items[j])
		} else {
			notFixed = append(notFixed, ins.items[j])
		}
	}

	j1, j0 := len(fixed1), len(fixed0)
	copy(ins.items[ins.f:], fixed1)
	copy(ins.items[ins.f+j1:], notFixed)
	copy(ins.items[ins.f+j1+len(notFixed):], fixed0)
	for k := ins.f; k <= ins.l; k++ {
		ins.reduced.included[k] = k < ins.f+j1
	}
	ins.f += j1
	ins.l -= j0

	ins.removeBigItems()
	ins.computeBreakItem()
}

func divFloorish(num, den int64) int64 {
	// integer division truncating toward zero, matching C++'s `/` for the
	// signs that appear in these bound expressions (den > 0 here).
	return num / den
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// SetFirstItem narrows the active window's left bound, fixing the stripped
// prefix [f, k) into the reduced solution. Mirrors Instance::set_first_item.
func (ins *Instance) SetFirstItem(k int) {
	for j := ins.f; j < k; j++ {
		ins.reduced.set(ins.items, j, true)
	}
	ins.f = k
}

// SetLastItem narrows the active window's right bound. Items [k+1, l] are
// left untouched (permanently excluded by convention of the caller).
func (ins *Instance) SetLastItem(k int) {
	ins.l = k
}

// Fix applies an externally supplied per-item verdict in {-1, 0, +1} over
// the active window, rearranging items into [fixed-1 | undecided |
// fixed-0] and advancing f / retreating l. Mirrors Instance::fix.
func (ins *Instance) Fix(vec []int8) {
	notFixed := make([]Item, 0)
	fixed1 := make([]Item, 0)
	fixed0 := make([]Item, 0)
	for j := ins.f; j <= ins.l; j++ {
		switch vec[j] {
		case 0:
			notFixed = append(notFixed, ins.items[j])
		case 1:
			fixed1 = append(fixed1, ins.items[j])
			ins.reduced.set(ins.items, j, true)
		default:
			fixed0 = append(fixed0, ins.items[j])
		}
	}

	j1, j0 := len(fixed1), len(fixed0)
	copy(ins.items[ins.f:], fixed1)
	copy(ins.items[ins.f+j1:], notFixed)
	copy(ins.items[ins.f+j1+len(notFixed):], fixed0)
	for k := ins.f; k <= ins.l; k++ {
		ins.reduced.included[k] = k < ins.f+j1
	}
	ins.f += j1
	ins.l -= j0

	ins.removeBigItems()

	if ins.sort == partiallySorted {
		ins.sort = unsorted
		ins.SortPartially(128)
	} else {
		ins.computeBreakItem()
	}
}

// Surrogate resets break/optimal caches, adds multiplier to every active
// item's weight (augmenting capacity by multiplier*cardBound), fixes
// newly non-positive-weight items to 1, then re-runs partial sort. Mirrors
// Instance::surrogate.
func (ins *Instance) Surrogate(multiplier int64, cardBound int, first int) {
	ins.f = first
	for j := ins.f; j <= ins.l; j++ {
		ins.reduced.set(ins.items, j, false)
	}
	bound := int64(cardBound) - int64(countTrue(ins.reduced.included))
	for j := ins.f; j <= ins.l; j++ {
		ins.items[j].W += multiplier
		if ins.items[j].W <= 0 {
			ins.reduced.set(ins.items, j, true)
			ins.swap(j, ins.f)
			ins.f++
		}
	}
	ins.capacity += multiplier * bound
	if ins.capacity <= ins.reduced.weight {
		ins.capacity = ins.reduced.weight
	}

	ins.sort = unsorted
	ins.SortPartially(128)
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

// Reset returns a value-copy of the instance whose active window is the
// full item range and whose reduction state is cleared. The upstream C++
// helper of the same name has an aliasing bug (it returns its argument
// rather than the freshly built copy); this implementation intentionally
// does not replicate that anomaly (spec.md §9, Open Question).
func (ins *Instance) Reset() *Instance {
	items := append([]Item(nil), ins.items...)
	return &Instance{
		items:    items,
		capacity: ins.capacity,
		f:        0,
		l:        len(items) - 1,
		b:        -1,
		reduced:  newPartialSolution(len(items)),
		brk:      newPartialSolution(len(items)),
		rng:      rand.New(rand.NewSource(ins.rng.Int63())),
	}
}

// Clone deep-copies the instance so an auxiliary task (surrogate
// relaxation, greedynlogn) can mutate its own copy without racing the
// caller's main-loop instance.
func (ins *Instance) Clone() *Instance {
	return &Instance{
		items:    append([]Item(nil), ins.items...),
		capacity: ins.capacity,
		f:        ins.f,
		l:        ins.l,
		b:        ins.b,
		reduced:  ins.reduced.clone(),
		brk:      ins.brk.clone(),
		sort:     ins.sort,
		intLeft:  append([]interval(nil), ins.intLeft...),
		intRight: append([]interval(nil), ins.intRight...),
		sPrime:   ins.sPrime,
		tPrime:   ins.tPrime,
		sInit:    ins.sInit,
		tInit:    ins.tInit,
		rng:      rand.New(rand.NewSource(ins.rng.Int63())),
	}
}
