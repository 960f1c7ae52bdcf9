package knapsack

import (
	"math/rand"

	"github.com/MaxHalford/eaopt"
)

// ResidualGenome wraps the unfixed item window of an Instance as an
// eaopt.Genome so the optional `greedynlogn` auxiliary lower-bound task
// (spec.md §6, §9) can run a cheap evolutionary search for a better
// feasible packing, the same way SplitLayout wraps a keyboard layout for
// simulated annealing in the layout optimizer's Optimise.
type ResidualGenome struct {
	ins  *Instance
	incl []bool // per-position inclusion flag, only [f, l] is free to mutate
}

// newResidualGenome seeds the genome from the instance's current break
// solution: a reasonable starting point for the local search.
func newResidualGenome(ins *Instance) *ResidualGenome {
	incl := ins.ReducedIncluded()
	for j := ins.FirstItem(); j < ins.BreakItem() && j <= ins.LastItem(); j++ {
		incl[j] = true
	}
	return &ResidualGenome{ins: ins, incl: incl}
}

// Evaluate returns the negative profit of a feasible packing (eaopt
// minimizes), or zero fitness penalty pushed to +Inf-ish via a large
// penalty when the packing overflows capacity.
func (g *ResidualGenome) Evaluate() (float64, error) {
	var w, p int64
	for j := g.ins.FirstItem(); j <= g.ins.LastItem(); j++ {
		if g.incl[j] {
			w += g.ins.Item(j).W
			p += g.ins.Item(j).P
		}
	}
	if w > g.ins.ReducedCapacity() {
		over := float64(w - g.ins.ReducedCapacity())
		return over * 1e6, nil // infeasible: penalize proportional to overflow
	}
	return -float64(p + g.ins.ReducedProfit()), nil
}

// Mutate flips a random item's in/out decision within the active window.
func (g *ResidualGenome) Mutate(rng *rand.Rand) {
	n := g.ins.LastItem() - g.ins.FirstItem() + 1
	if n <= 0 {
		return
	}
	pos := g.ins.FirstItem() + rng.Intn(n)
	g.incl[pos] = !g.incl[pos]
}

// Crossover does nothing; defined only to satisfy eaopt.Genome.
func (g *ResidualGenome) Crossover(_ eaopt.Genome, _ *rand.Rand) {}

// Clone returns a deep copy of the genome.
func (g *ResidualGenome) Clone() eaopt.Genome {
	incl := make([]bool, len(g.incl))
	copy(incl, g.incl)
	return &ResidualGenome{ins: g.ins, incl: incl}
}

// GreedyNLogN runs a small evolutionary search over the residual (unfixed)
// window to find a feasible packing better than the break solution,
// filling the role spec.md §6 calls the `greedynlogn` auxiliary LB task.
// Per spec.md §9's Open Question, the contract is "writer holds the
// Output lock for both the read of the current LB and the write of an
// improved one" — enforced by the caller (engine.go) via Output.UpdateLowerBound,
// never by this function touching Output directly.
func GreedyNLogN(ins *Instance) ([]bool, int64) {
	if ins.ReducedItemCount() <= 0 {
		return ins.ReducedIncluded(), ins.ReducedProfit()
	}

	cfg := eaopt.NewDefaultGAConfig()
	cfg.NGenerations = 30
	cfg.PopSize = 20
	cfg.Model = eaopt.ModSimulatedAnnealing{
		Accept: func(g, ng uint, e0, e1 float64) float64 {
			if e1 <= e0 {
				return 1.0
			}
			return 0.1
		},
	}

	ga, err := cfg.NewGA()
	if err != nil {
		sol, profit := Greedy(ins)
		return sol, profit
	}

	seed := newResidualGenome(ins)
	newGenome := func(rng *rand.Rand) eaopt.Genome { return seed.Clone() }
	if err := ga.Minimize(newGenome); err != nil {
		sol, profit := Greedy(ins)
		return sol, profit
	}

	best := ga.HallOfFame[0].Genome.(*ResidualGenome)
	var w, p int64
	for j := ins.FirstItem(); j <= ins.LastItem(); j++ {
		if best.incl[j] {
			w += ins.Item(j).W
			p += ins.Item(j).P
		}
	}
	if w > ins.ReducedCapacity() {
		return Greedy(ins)
	}
	return best.incl, p + ins.ReducedProfit()
}
