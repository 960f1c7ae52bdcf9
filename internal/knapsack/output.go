package knapsack

import "sync"

// Output is the shared best-known result, written with a last-writer-wins
// discipline guarded by a mutex. Updates are monotone: LowerBound only
// increases, UpperBound only decreases, and Solution is only replaced by a
// strictly better one. Monotonicity is what makes a simple lock (rather
// than a lock-free CAS scheme) safe here: a racing writer can never regress
// the shared state, so the order in which writers acquire the lock does
// not change the final answer (spec.md §5, §9).
type Output struct {
	mu sync.Mutex

	lowerBound int64
	upperBound int64
	solution   []int8 // per-item verdict, -1/0/1; nil until a feasible solution is known
}

// NewOutput seeds the shared record with an initial feasible LB and a
// Dantzig-style UB.
func NewOutput(lb, ub int64) *Output {
	return &Output{lowerBound: lb, upperBound: ub}
}

// Bounds returns the current (lowerBound, upperBound) pair under lock.
func (o *Output) Bounds() (int64, int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lowerBound, o.upperBound
}

// UpdateLowerBound writes lb and sol only if lb improves on the current
// value. Returns whether the write happened.
func (o *Output) UpdateLowerBound(lb int64, sol []int8) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if lb <= o.lowerBound {
		return false
	}
	o.lowerBound = lb
	o.solution = sol
	return true
}

// UpdateUpperBound writes ub only if it tightens (lowers) the current
// value. Returns whether the write happened. This is the contract the
// surrelax and greedynlogn auxiliary tasks use: "writer holds the Output
// lock for the read of the current bound and the write of an improved
// one" (spec.md §9, Open Question) — there is no lock-free path.
func (o *Output) UpdateUpperBound(ub int64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if ub >= o.upperBound {
		return false
	}
	o.upperBound = ub
	return true
}

// Solution returns a copy of the best known per-item verdict vector, or
// nil if none has been recorded yet.
func (o *Output) Solution() []int8 {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.solution == nil {
		return nil
	}
	out := make([]int8, len(o.solution))
	copy(out, o.solution)
	return out
}

// Converged reports whether lowerBound and upperBound have met.
func (o *Output) Converged() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lowerBound == o.upperBound
}
