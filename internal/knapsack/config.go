package knapsack

import (
	"runtime"
	"sync/atomic"
	"time"
)

// UBPolicy selects the reference item used by the Dembo bounds inside the
// DP's prune phase: always the break item, or the moving item t (spec.md
// §4.6, §9 "tagged cases in the DP"). A sum type with two variants would
// be more ceremony than two small constants buy here, given the DP's inner
// loop branches on this at most once per state.
type UBPolicy int

const (
	// UBPolicyBreak always bounds against the break item b.
	UBPolicyBreak UBPolicy = iota
	// UBPolicyMoving bounds against the moving item t (or state.a when
	// infeasible), tightening the bound as the window advances.
	UBPolicyMoving
)

// EngineConfig holds every recognized Balknap option from spec.md §6.
type EngineConfig struct {
	// PartialSolutionSize is the bitset window width, in [1, 64].
	PartialSolutionSize int
	// Greedy enables seeding the lower bound with the greedy heuristic.
	Greedy bool
	// GreedyNLogN is the state-map-size threshold that fires the
	// O(n log n) greedy auxiliary task; -1 disables it.
	GreedyNLogN int
	// SurrogateRelax is the state-map-size threshold that fires the
	// surrogate-relaxation upper-bound auxiliary task; -1 disables it.
	SurrogateRelax int
	// UB selects the Dembo-bound reference item policy.
	UB UBPolicy
	// TimeLimit bounds wall-clock time; zero means unbounded.
	TimeLimit time.Duration
	// EndFlag is an optional shared cancellation flag; if nil, the
	// engine allocates its own.
	EndFlag *EndFlag
	// StopIfEnd makes Solve stop at the next iteration boundary once
	// EndFlag is set and return the best solution found so far; when
	// false, EndFlag is ignored.
	StopIfEnd bool
	// SetEnd writes true to EndFlag when this call completes, so
	// sibling calls (e.g. a batch runner) can cancel cooperatively.
	SetEnd bool
	// Workers is not read by Solve: each pass launches at most one
	// surrogate-relaxation task and one greedynlogn task whatever its
	// value. DefaultEngineConfig sets it to runtime.NumCPU().
	Workers int
	// DPProfitsThreshold: when the instance's total profit sum is at
	// most this, Solve dispatches to the profit-indexed DP fallback
	// instead of Balknap (supplement, see DESIGN.md).
	DPProfitsThreshold int64
	// Logger, if non-nil, receives structured trace events.
	Logger *EngineLogger
}

// DefaultEngineConfig returns recommended Balknap parameters, mirroring
// DefaultBLSParams's role for the layout optimizer: a single constructor
// callers can start from and override selectively.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		PartialSolutionSize: 64,
		Greedy:              true,
		GreedyNLogN:         -1,
		SurrogateRelax:      1000,
		UB:                  UBPolicyMoving,
		TimeLimit:           0,
		StopIfEnd:           true,
		SetEnd:              true,
		Workers:             runtime.NumCPU(),
		DPProfitsThreshold:  100000,
	}
}

// EndFlag is the shared cooperative-cancellation flag polled by the main
// DP loop at every iteration boundary (spec.md §5); the auxiliary tasks do
// not read it.
type EndFlag struct {
	v atomic.Bool
}

// Set marks the flag as ended.
func (f *EndFlag) Set() { f.v.Store(true) }

// IsSet reports whether the flag has been set.
func (f *EndFlag) IsSet() bool { return f.v.Load() }
